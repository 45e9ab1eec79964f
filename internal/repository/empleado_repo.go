package repository

import (
	"errors"

	"gorm.io/gorm"

	"consultora-billing-backend/internal/models"
)

type EmpleadoRepository struct {
	db *gorm.DB
}

func NewEmpleadoRepository(db *gorm.DB) *EmpleadoRepository {
	return &EmpleadoRepository{db: db}
}

// PorDNI returns nil, nil when no employee matches. The billing service
// falls back to the DNI as display name in that case.
func (r *EmpleadoRepository) PorDNI(dni string) (*models.Empleado, error) {
	var emp models.Empleado
	err := r.db.First(&emp, "dni = ?", dni).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmpleadoRepository) GetAll() ([]models.Empleado, error) {
	var empleados []models.Empleado
	err := r.db.Order("dni ASC").Find(&empleados).Error
	return empleados, err
}

func (r *EmpleadoRepository) Create(e *models.Empleado) error {
	return r.db.Create(e).Error
}

func (r *EmpleadoRepository) ExisteDNI(dni string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Empleado{}).Where("dni = ?", dni).Count(&count).Error
	return count > 0, err
}

func (r *EmpleadoRepository) ExisteCodigoFichaje(codigo string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Empleado{}).Where("codigo_fichaje = ?", codigo).Count(&count).Error
	return count > 0, err
}

func (r *EmpleadoRepository) Update(e *models.Empleado) error {
	return r.db.Save(e).Error
}

func (r *EmpleadoRepository) Archivar(dni string) error {
	result := r.db.Model(&models.Empleado{}).Where("dni = ?", dni).Update("estado", "Inactivo")
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
