package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"consultora-billing-backend/internal/repository"
	"consultora-billing-backend/internal/services/billing"
)

type FacturaHandler struct {
	service     *billing.Service
	facturaRepo *repository.FacturaRepository
}

func NewFacturaHandler(s *billing.Service, facturaRepo *repository.FacturaRepository) *FacturaHandler {
	return &FacturaHandler{service: s, facturaRepo: facturaRepo}
}

type facturaPayload struct {
	Anio      int    `json:"anio"`
	Mes       int    `json:"mes"`
	IDCliente string `json:"id_cliente"`
}

// validar reproduces the original range checks; returns false when a
// validation error was already written.
func (h *FacturaHandler) validar(c *gin.Context, p *facturaPayload) bool {
	if err := c.BindJSON(p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return false
	}
	if p.Mes < 1 || p.Mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido (1-12)"})
		return false
	}
	if p.Anio < 2000 || p.Anio > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
		return false
	}
	return true
}

// Preview computes the draft bill. Never mutates state.
func (h *FacturaHandler) Preview(c *gin.Context) {
	var payload facturaPayload
	if !h.validar(c, &payload) {
		return
	}

	preview, err := h.service.Preview(payload.IDCliente, payload.Anio, payload.Mes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, preview)
}

// Generar emits the invoice and locks the consumed hours.
func (h *FacturaHandler) Generar(c *gin.Context) {
	var payload facturaPayload
	if !h.validar(c, &payload) {
		return
	}

	factura, preview, err := h.service.Generar(payload.IDCliente, payload.Anio, payload.Mes)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrYaFacturado):
			c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una factura para ese cliente/mes/año"})
		case errors.Is(err, billing.ErrSinLineas):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "No se puede generar: no hay líneas facturables",
				"preview": preview,
			})
		case errors.Is(err, billing.ErrFaltanTarifas):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "No se puede generar: faltan tarifas",
				"preview": preview,
			})
		case errors.Is(err, repository.ErrHorasEnConflicto):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Factura generada y horas bloqueadas",
		"factura": factura,
	})
}

func (h *FacturaHandler) Listar(c *gin.Context) {
	facturas, err := h.facturaRepo.ListByCliente(c.Query("id_cliente"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, facturas)
}

func (h *FacturaHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de factura inválido"})
		return
	}

	factura, err := h.facturaRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Factura no encontrada"})
		return
	}
	c.JSON(http.StatusOK, factura)
}
