package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
)

type EmpleadoHandler struct {
	empleadoRepo *repository.EmpleadoRepository
}

func NewEmpleadoHandler(empleadoRepo *repository.EmpleadoRepository) *EmpleadoHandler {
	return &EmpleadoHandler{empleadoRepo: empleadoRepo}
}

func (h *EmpleadoHandler) Listar(c *gin.Context) {
	empleados, err := h.empleadoRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, empleados)
}

func (h *EmpleadoHandler) Crear(c *gin.Context) {
	var payload struct {
		DNI           string `json:"dni"`
		Nombre        string `json:"nombre"`
		Apellidos     string `json:"apellidos"`
		CodigoFichaje string `json:"codigo_fichaje"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}
	if payload.DNI == "" || payload.Nombre == "" || payload.CodigoFichaje == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dni, nombre y codigo_fichaje son obligatorios"})
		return
	}

	if existe, err := h.empleadoRepo.ExisteDNI(payload.DNI); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if existe {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un empleado con ese DNI/NIE"})
		return
	}

	if existe, err := h.empleadoRepo.ExisteCodigoFichaje(payload.CodigoFichaje); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if existe {
		c.JSON(http.StatusConflict, gin.H{"error": "Ese código de fichaje ya está asignado"})
		return
	}

	empleado := &models.Empleado{
		DNI:           payload.DNI,
		Nombre:        payload.Nombre,
		Apellidos:     payload.Apellidos,
		CodigoFichaje: payload.CodigoFichaje,
		Estado:        "Activo",
		CreatedAt:     time.Now(),
	}

	if err := h.empleadoRepo.Create(empleado); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, empleado)
}

func (h *EmpleadoHandler) Editar(c *gin.Context) {
	empleado, err := h.empleadoRepo.PorDNI(c.Param("dni"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if empleado == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
		return
	}

	var payload struct {
		Nombre        *string `json:"nombre"`
		Apellidos     *string `json:"apellidos"`
		CodigoFichaje *string `json:"codigo_fichaje"`
		Estado        *string `json:"estado"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	if payload.CodigoFichaje != nil && *payload.CodigoFichaje != empleado.CodigoFichaje {
		if existe, err := h.empleadoRepo.ExisteCodigoFichaje(*payload.CodigoFichaje); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		} else if existe {
			c.JSON(http.StatusConflict, gin.H{"error": "Ese código de fichaje ya pertenece a otro empleado"})
			return
		}
		empleado.CodigoFichaje = *payload.CodigoFichaje
	}
	if payload.Nombre != nil {
		empleado.Nombre = *payload.Nombre
	}
	if payload.Apellidos != nil {
		empleado.Apellidos = *payload.Apellidos
	}
	if payload.Estado != nil {
		empleado.Estado = *payload.Estado
	}

	if err := h.empleadoRepo.Update(empleado); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, empleado)
}

func (h *EmpleadoHandler) Archivar(c *gin.Context) {
	if err := h.empleadoRepo.Archivar(c.Param("dni")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Empleado archivado correctamente"})
}
