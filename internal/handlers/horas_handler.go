package handler

import (
	"encoding/csv"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
	importacion "consultora-billing-backend/internal/services/importacion"
)

type HorasHandler struct {
	horasRepo *repository.HorasRepository
	importSvc *importacion.Service
}

func NewHorasHandler(horasRepo *repository.HorasRepository, importSvc *importacion.Service) *HorasHandler {
	return &HorasHandler{horasRepo: horasRepo, importSvc: importSvc}
}

// Listar returns all active entries
func (h *HorasHandler) Listar(c *gin.Context) {
	horas, err := h.horasRepo.List("", "", nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, horas)
}

func (h *HorasHandler) ListarPorEmpleado(c *gin.Context) {
	horas, err := h.horasRepo.List(c.Param("id_empleado"), "", nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(horas) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No existen fichajes de este empleado"})
		return
	}
	c.JSON(http.StatusOK, horas)
}

func (h *HorasHandler) ListarPorProyecto(c *gin.Context) {
	horas, err := h.horasRepo.List("", c.Param("id_proyecto"), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(horas) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No existen fichajes con este proyecto"})
		return
	}
	c.JSON(http.StatusOK, horas)
}

func (h *HorasHandler) ListarPorFecha(c *gin.Context) {
	fecha, err := time.Parse("2006-01-02", c.Param("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha inválida, formato yyyy-mm-dd"})
		return
	}

	horas, err := h.horasRepo.List("", "", &fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(horas) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No han habido fichajes este dia"})
		return
	}
	c.JSON(http.StatusOK, horas)
}

// Crear registers a manual time entry.
func (h *HorasHandler) Crear(c *gin.Context) {
	var payload struct {
		IDSociedad string  `json:"id_sociedad"`
		Fecha      string  `json:"fecha"` // "yyyy-mm-dd"
		IDEmpleado string  `json:"id_empleado"`
		IDCliente  string  `json:"id_cliente"`
		IDProyecto string  `json:"id_proyecto"`
		Horas      float64 `json:"horas"`
		Tarea      string  `json:"tarea"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}
	if payload.IDEmpleado == "" || payload.IDCliente == "" || payload.IDProyecto == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empleado, cliente y proyecto son obligatorios"})
		return
	}
	if payload.Horas <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "las horas deben ser positivas"})
		return
	}

	fecha, err := time.Parse("2006-01-02", payload.Fecha)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha inválida, formato yyyy-mm-dd"})
		return
	}

	hora := &models.HoraTrabajada{
		ID:         uuid.New(),
		IDSociedad: payload.IDSociedad,
		Fecha:      fecha,
		IDEmpleado: payload.IDEmpleado,
		IDCliente:  payload.IDCliente,
		IDProyecto: payload.IDProyecto,
		Horas:      payload.Horas,
		Tarea:      payload.Tarea,
		Origen:     "manual",
		Estado:     "Registrado",
		Activo:     true,
		CreatedAt:  time.Now(),
	}

	if err := h.horasRepo.Create(hora); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Fichaje creado correctamente", "fichaje": hora})
}

// Editar updates the hours/task of an unbilled entry. Billed entries are
// immutable.
func (h *HorasHandler) Editar(c *gin.Context) {
	hora, err := h.horasRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fichaje no encontrado"})
		return
	}
	if hora.Facturada {
		c.JSON(http.StatusConflict, gin.H{"error": "No se puede editar un fichaje ya facturado"})
		return
	}

	var payload struct {
		Horas *float64 `json:"horas"`
		Tarea *string  `json:"tarea"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	if payload.Horas != nil {
		if *payload.Horas <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "las horas deben ser positivas"})
			return
		}
		hora.Horas = *payload.Horas
	}
	if payload.Tarea != nil {
		hora.Tarea = *payload.Tarea
	}

	if err := h.horasRepo.Update(hora); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Fichaje actualizado correctamente", "fichaje": hora})
}

func (h *HorasHandler) Archivar(c *gin.Context) {
	if err := h.horasRepo.Archivar(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fichaje no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Fichaje archivado correctamente"})
}

// Import handles CSV uploads, creates a batch, and processes in background.
// Expected columns: fecha, id_empleado, id_cliente, id_proyecto, horas, tarea
// (optional id_sociedad as 7th column).
func (h *HorasHandler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	batch := h.importSvc.CreateBatch(header.Filename)

	go h.processCSV(batch.ID, file)

	c.JSON(http.StatusAccepted, gin.H{
		"batch_id": batch.ID.String(),
		"status":   "processing",
	})
}

func (h *HorasHandler) processCSV(batchID uuid.UUID, reader io.Reader) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	// Skip header
	_, _ = csvReader.Read()

	processed := 0
	skipped := 0

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		if len(record) == 0 || strings.Join(record, "") == "" {
			continue
		}
		if len(record) < 5 {
			skipped++
			continue
		}

		fecha, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
		if err != nil {
			skipped++
			continue
		}

		horas, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil || horas <= 0 {
			skipped++
			continue
		}

		empleado := strings.TrimSpace(record[1])
		cliente := strings.TrimSpace(record[2])
		proyecto := strings.TrimSpace(record[3])
		if empleado == "" || cliente == "" || proyecto == "" {
			skipped++
			continue
		}

		tarea := ""
		if len(record) > 5 {
			tarea = strings.TrimSpace(record[5])
		}
		sociedad := "01"
		if len(record) > 6 && strings.TrimSpace(record[6]) != "" {
			sociedad = strings.TrimSpace(record[6])
		}

		h.importSvc.CreateFichaje(batchID, sociedad, empleado, cliente, proyecto, tarea, horas, fecha)
		processed++

		// Update progress every 100 rows
		if processed%100 == 0 {
			h.importSvc.UpdateBatchProgress(batchID, processed)
		}
	}

	if err := h.importSvc.MarkBatchCompleted(batchID, processed, skipped); err != nil {
		log.Println("mark batch completed:", err)
	}
}

func (h *HorasHandler) GetImportProgress(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("batchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}

	batch, err := h.importSvc.GetBatch(batchID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"processed_count": batch.ProcessedCount,
		"skipped_count":   batch.SkippedCount,
		"total":           batch.TotalFichajes,
		"status":          batch.Status,
	})
}
