package repository

import (
	"gorm.io/gorm"

	"consultora-billing-backend/internal/models"
)

type TarifaRepository struct {
	db *gorm.DB
}

func NewTarifaRepository(db *gorm.DB) *TarifaRepository {
	return &TarifaRepository{db: db}
}

// PorEmpleadoProyecto returns active assignments for the pair, newest
// effective date first. The resolver walks this list and takes the first row
// effective on or before the anchor date.
func (r *TarifaRepository) PorEmpleadoProyecto(idEmpleado, idProyecto string) ([]models.Tarifa, error) {
	var tarifas []models.Tarifa
	err := r.db.
		Where("id_empleado = ? AND id_proyecto = ?", idEmpleado, idProyecto).
		Where("activo = ?", true).
		Order("fec_inicio DESC, id DESC").
		Find(&tarifas).Error
	return tarifas, err
}

func (r *TarifaRepository) Create(t *models.Tarifa) error {
	return r.db.Create(t).Error
}

func (r *TarifaRepository) GetAll() ([]models.Tarifa, error) {
	var tarifas []models.Tarifa
	err := r.db.Order("id_empleado ASC, id_proyecto ASC, fec_inicio DESC").Find(&tarifas).Error
	return tarifas, err
}
