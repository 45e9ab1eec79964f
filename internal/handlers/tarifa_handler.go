package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
)

type TarifaHandler struct {
	tarifaRepo *repository.TarifaRepository
}

func NewTarifaHandler(tarifaRepo *repository.TarifaRepository) *TarifaHandler {
	return &TarifaHandler{tarifaRepo: tarifaRepo}
}

func (h *TarifaHandler) Listar(c *gin.Context) {
	tarifas, err := h.tarifaRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tarifas)
}

// Asignar creates a new rate assignment. Assignments are never edited in
// place: a newer fec_inicio supersedes older rows for the same pair.
func (h *TarifaHandler) Asignar(c *gin.Context) {
	var payload struct {
		IDSociedad string  `json:"id_sociedad"`
		IDEmpleado string  `json:"id_empleado"`
		IDCliente  string  `json:"id_cliente"`
		IDProyecto string  `json:"id_proyecto"`
		FecInicio  string  `json:"fec_inicio"` // "yyyy-mm-dd"
		Tarifa     float64 `json:"tarifa"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}
	if payload.IDEmpleado == "" || payload.IDProyecto == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empleado y proyecto son obligatorios"})
		return
	}
	if payload.Tarifa < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "la tarifa no puede ser negativa"})
		return
	}

	fecInicio, err := time.Parse("2006-01-02", payload.FecInicio)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fec_inicio inválida, formato yyyy-mm-dd"})
		return
	}

	tarifa := &models.Tarifa{
		IDSociedad: payload.IDSociedad,
		IDEmpleado: payload.IDEmpleado,
		IDCliente:  payload.IDCliente,
		IDProyecto: payload.IDProyecto,
		FecInicio:  fecInicio,
		Tarifa:     payload.Tarifa,
		Activo:     true,
		CreatedAt:  time.Now(),
	}

	if err := h.tarifaRepo.Create(tarifa); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Tarifa asignada correctamente", "tarifa": tarifa})
}
