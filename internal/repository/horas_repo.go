package repository

import (
	"time"

	"gorm.io/gorm"

	"consultora-billing-backend/internal/models"
)

type HorasRepository struct {
	db *gorm.DB
}

func NewHorasRepository(db *gorm.DB) *HorasRepository {
	return &HorasRepository{db: db}
}

// PendientesPorPeriodo returns unbilled active entries for a client/month.
// Ordered by (id_empleado, id_proyecto, fecha, id) so repeated calls against
// the same data always see the same sequence.
func (r *HorasRepository) PendientesPorPeriodo(idCliente string, anio, mes int) ([]models.HoraTrabajada, error) {
	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0)

	var horas []models.HoraTrabajada
	err := r.db.
		Where("id_cliente = ?", idCliente).
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Where("facturada = ?", false).
		Where("activo = ?", true).
		Order("id_empleado ASC, id_proyecto ASC, fecha ASC, id ASC").
		Find(&horas).Error
	return horas, err
}

func (r *HorasRepository) Create(h *models.HoraTrabajada) error {
	return r.db.Create(h).Error
}

func (r *HorasRepository) GetByID(id string) (*models.HoraTrabajada, error) {
	var h models.HoraTrabajada
	if err := r.db.First(&h, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// List returns entries with optional filters on empleado, proyecto and exact
// date. Empty filter values are ignored.
func (r *HorasRepository) List(idEmpleado, idProyecto string, fecha *time.Time) ([]models.HoraTrabajada, error) {
	query := r.db.Model(&models.HoraTrabajada{}).Where("activo = ?", true)

	if idEmpleado != "" {
		query = query.Where("id_empleado = ?", idEmpleado)
	}
	if idProyecto != "" {
		query = query.Where("id_proyecto = ?", idProyecto)
	}
	if fecha != nil {
		query = query.Where("fecha = ?", *fecha)
	}

	var horas []models.HoraTrabajada
	err := query.Order("fecha ASC, id ASC").Find(&horas).Error
	return horas, err
}

func (r *HorasRepository) Update(h *models.HoraTrabajada) error {
	return r.db.Save(h).Error
}

// Archivar soft-deletes an entry. Billed entries are append-only and cannot
// be archived.
func (r *HorasRepository) Archivar(id string) error {
	result := r.db.Model(&models.HoraTrabajada{}).
		Where("id = ? AND facturada = ?", id, false).
		Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
