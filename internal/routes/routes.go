package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "consultora-billing-backend/internal/handlers"
	"consultora-billing-backend/internal/repository"
	billing "consultora-billing-backend/internal/services/billing"
	importacion "consultora-billing-backend/internal/services/importacion"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sociedad string) {
	horasRepo := repository.NewHorasRepository(db)
	tarifaRepo := repository.NewTarifaRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proyectoRepo := repository.NewProyectoRepository(db)
	bancoRepo := repository.NewBancoRepository(db)

	billingService := billing.NewService(horasRepo, tarifaRepo, facturaRepo, empleadoRepo, sociedad)
	importService := importacion.NewService(db)

	facturaHandler := handler.NewFacturaHandler(billingService, facturaRepo)
	horasHandler := handler.NewHorasHandler(horasRepo, importService)
	tarifaHandler := handler.NewTarifaHandler(tarifaRepo)
	empleadoHandler := handler.NewEmpleadoHandler(empleadoRepo)
	clienteHandler := handler.NewClienteHandler(clienteRepo)
	proyectoHandler := handler.NewProyectoHandler(proyectoRepo)
	bancoHandler := handler.NewBancoHandler(bancoRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Invoicing core
	api.POST("/factura/preview", facturaHandler.Preview)
	api.POST("/factura/generar", facturaHandler.Generar)
	api.GET("/facturas", facturaHandler.Listar)
	api.GET("/facturas/:id", facturaHandler.Get)

	// Time entries
	horas := api.Group("/horas")
	horas.GET("", horasHandler.Listar)
	horas.GET("/empleado/:id_empleado", horasHandler.ListarPorEmpleado)
	horas.GET("/proyecto/:id_proyecto", horasHandler.ListarPorProyecto)
	horas.GET("/fecha/:fecha", horasHandler.ListarPorFecha)
	horas.POST("", horasHandler.Crear)
	horas.PUT("/:id", horasHandler.Editar)
	horas.PATCH("/:id/archivar", horasHandler.Archivar)
	horas.POST("/import", horasHandler.Import)
	horas.GET("/import/:batchId", horasHandler.GetImportProgress)

	// Rates
	api.GET("/tarifas", tarifaHandler.Listar)
	api.POST("/tarifas", tarifaHandler.Asignar)

	// Master data
	empleados := api.Group("/empleados")
	empleados.GET("", empleadoHandler.Listar)
	empleados.POST("", empleadoHandler.Crear)
	empleados.PUT("/:dni", empleadoHandler.Editar)
	empleados.PATCH("/:dni/archivar", empleadoHandler.Archivar)

	clientes := api.Group("/clientes")
	clientes.GET("", clienteHandler.Listar)
	clientes.POST("", clienteHandler.Crear)
	clientes.PUT("/:id", clienteHandler.Editar)
	clientes.PATCH("/:id/archivar", clienteHandler.Archivar)

	proyectos := api.Group("/proyectos")
	proyectos.GET("", proyectoHandler.Listar)
	proyectos.POST("", proyectoHandler.Crear)
	proyectos.PATCH("/:id/archivar", proyectoHandler.Archivar)

	bancos := api.Group("/bancos")
	bancos.GET("", bancoHandler.Listar)
	bancos.POST("", bancoHandler.Crear)
	bancos.PATCH("/:id/archivar", bancoHandler.Archivar)
}
