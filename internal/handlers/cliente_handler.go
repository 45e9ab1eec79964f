package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
)

type ClienteHandler struct {
	clienteRepo *repository.ClienteRepository
}

func NewClienteHandler(clienteRepo *repository.ClienteRepository) *ClienteHandler {
	return &ClienteHandler{clienteRepo: clienteRepo}
}

func (h *ClienteHandler) Listar(c *gin.Context) {
	clientes, err := h.clienteRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Crear(c *gin.Context) {
	var payload struct {
		IDCliente string `json:"id_cliente"`
		Nombre    string `json:"nombre"`
		CIF       string `json:"cif"`
		Contacto  string `json:"contacto"`
		Direccion string `json:"direccion"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}
	if payload.IDCliente == "" || payload.Nombre == "" || payload.CIF == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_cliente, nombre y cif son obligatorios"})
		return
	}

	cliente := &models.Cliente{
		IDCliente: payload.IDCliente,
		Nombre:    payload.Nombre,
		CIF:       payload.CIF,
		Contacto:  payload.Contacto,
		Direccion: payload.Direccion,
		Estado:    "Activo",
		CreatedAt: time.Now(),
	}

	if err := h.clienteRepo.Create(cliente); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un cliente con ese id o CIF"})
		return
	}

	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) Editar(c *gin.Context) {
	cliente, err := h.clienteRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		return
	}

	var payload struct {
		Nombre    *string `json:"nombre"`
		Contacto  *string `json:"contacto"`
		Direccion *string `json:"direccion"`
		Estado    *string `json:"estado"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	if payload.Nombre != nil {
		cliente.Nombre = *payload.Nombre
	}
	if payload.Contacto != nil {
		cliente.Contacto = *payload.Contacto
	}
	if payload.Direccion != nil {
		cliente.Direccion = *payload.Direccion
	}
	if payload.Estado != nil {
		cliente.Estado = *payload.Estado
	}

	if err := h.clienteRepo.Update(cliente); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Archivar(c *gin.Context) {
	if err := h.clienteRepo.Archivar(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Cliente archivado correctamente"})
}
