package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
)

type ProyectoHandler struct {
	proyectoRepo *repository.ProyectoRepository
}

func NewProyectoHandler(proyectoRepo *repository.ProyectoRepository) *ProyectoHandler {
	return &ProyectoHandler{proyectoRepo: proyectoRepo}
}

func (h *ProyectoHandler) Listar(c *gin.Context) {
	proyectos, err := h.proyectoRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proyectos)
}

func (h *ProyectoHandler) Crear(c *gin.Context) {
	var payload struct {
		IDProyecto            string  `json:"id_proyecto"`
		IDSociedad            string  `json:"id_sociedad"`
		IDCliente             string  `json:"id_cliente"`
		NombreProyecto        string  `json:"nombre_proyecto"`
		CodigoProyectoTracker string  `json:"codigo_proyecto_tracker"`
		TipoPago              string  `json:"tipo_pago"`
		Precio                float64 `json:"precio"`
		FecInicio             string  `json:"fec_inicio"` // "yyyy-mm-dd", optional
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}
	if payload.IDProyecto == "" || payload.NombreProyecto == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_proyecto y nombre_proyecto son obligatorios"})
		return
	}

	var fecInicio *time.Time
	if payload.FecInicio != "" {
		parsed, err := time.Parse("2006-01-02", payload.FecInicio)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fec_inicio inválida, formato yyyy-mm-dd"})
			return
		}
		fecInicio = &parsed
	}

	proyecto := &models.Proyecto{
		IDProyecto:            payload.IDProyecto,
		IDSociedad:            payload.IDSociedad,
		IDCliente:             payload.IDCliente,
		NombreProyecto:        payload.NombreProyecto,
		CodigoProyectoTracker: payload.CodigoProyectoTracker,
		TipoPago:              payload.TipoPago,
		Precio:                payload.Precio,
		FecInicio:             fecInicio,
		Activo:                true,
		CreatedAt:             time.Now(),
	}

	if err := h.proyectoRepo.Create(proyecto); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un proyecto con ese id"})
		return
	}

	c.JSON(http.StatusCreated, proyecto)
}

func (h *ProyectoHandler) Archivar(c *gin.Context) {
	if err := h.proyectoRepo.Archivar(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proyecto no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Proyecto archivado correctamente"})
}
