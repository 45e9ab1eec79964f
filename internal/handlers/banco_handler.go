package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
)

type BancoHandler struct {
	bancoRepo *repository.BancoRepository
}

func NewBancoHandler(bancoRepo *repository.BancoRepository) *BancoHandler {
	return &BancoHandler{bancoRepo: bancoRepo}
}

func (h *BancoHandler) Listar(c *gin.Context) {
	bancos, err := h.bancoRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bancos)
}

func (h *BancoHandler) Crear(c *gin.Context) {
	var payload struct {
		Entidad string `json:"entidad"`
		IBAN    string `json:"iban"`
		Estado  string `json:"estado"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}
	if payload.Entidad == "" || payload.IBAN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entidad e iban son obligatorios"})
		return
	}

	estado := payload.Estado
	if estado == "" {
		estado = "Principal"
	}

	banco := &models.Banco{
		Entidad:   payload.Entidad,
		IBAN:      payload.IBAN,
		Estado:    estado,
		CreatedAt: time.Now(),
	}

	if err := h.bancoRepo.Create(banco); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una cuenta con ese IBAN"})
		return
	}

	c.JSON(http.StatusCreated, banco)
}

func (h *BancoHandler) Archivar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	if err := h.bancoRepo.Archivar(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cuenta bancaria no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Cuenta bancaria archivada correctamente"})
}
