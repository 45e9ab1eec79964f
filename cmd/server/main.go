package main

import (
	"log"
	"os"
	"time"

	"consultora-billing-backend/internal/config"
	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	db := config.InitDB()

	db.AutoMigrate(
		&models.Cliente{},
		&models.Empleado{},
		&models.Proyecto{},
		&models.Banco{},
		&models.Tarifa{},
		&models.HoraTrabajada{},
		&models.Factura{},
		&models.FacturaLinea{},
		&models.ImportacionBatch{},
		&models.FacturaAuditLog{},
	)

	sociedad := os.Getenv("ID_SOCIEDAD")
	if sociedad == "" {
		sociedad = "01"
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, sociedad)

	r.Run(":8080")
}
