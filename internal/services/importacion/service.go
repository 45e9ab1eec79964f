package importacion

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"consultora-billing-backend/internal/models"
)

// Service tracks CSV imports of time entries and inserts the parsed rows.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateBatch creates a new ImportacionBatch in DB
func (s *Service) CreateBatch(filename string) *models.ImportacionBatch {
	batch := &models.ImportacionBatch{
		ID:        uuid.New(),
		Filename:  filename,
		Status:    "processing",
		StartedAt: time.Now(),
		CreatedAt: time.Now(),
	}

	s.db.Create(batch)
	return batch
}

func (s *Service) GetBatch(batchID uuid.UUID) (*models.ImportacionBatch, error) {
	var batch models.ImportacionBatch
	if err := s.db.First(&batch, "id = ?", batchID).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// CreateFichaje inserts a single imported time entry row.
func (s *Service) CreateFichaje(batchID uuid.UUID, sociedad, empleado, cliente, proyecto, tarea string, horas float64, fecha time.Time) *models.HoraTrabajada {
	h := &models.HoraTrabajada{
		ID:          uuid.New(),
		IDSociedad:  sociedad,
		Fecha:       fecha,
		IDEmpleado:  empleado,
		IDCliente:   cliente,
		IDProyecto:  proyecto,
		Horas:       horas,
		Tarea:       tarea,
		Origen:      "importado",
		Estado:      "Registrado",
		BatchImport: &batchID,
		Activo:      true,
		CreatedAt:   time.Now(),
	}

	s.db.Create(h)
	return h
}

// UpdateBatchProgress updates the processed count in a batch
func (s *Service) UpdateBatchProgress(id uuid.UUID, count int) error {
	return s.db.Model(&models.ImportacionBatch{}).
		Where("id = ?", id).
		Update("processed_count", count).
		Error
}

// MarkBatchCompleted sets batch status to completed
func (s *Service) MarkBatchCompleted(batchID uuid.UUID, processed, skipped int) error {
	return s.db.Model(&models.ImportacionBatch{}).
		Where("id = ?", batchID).
		Updates(map[string]interface{}{
			"processed_count": processed,
			"skipped_count":   skipped,
			"total_fichajes":  processed + skipped,
			"status":          "completed",
			"completed_at":    time.Now(),
		}).Error
}
