package repository

import (
	"gorm.io/gorm"

	"consultora-billing-backend/internal/models"
)

type ProyectoRepository struct {
	db *gorm.DB
}

func NewProyectoRepository(db *gorm.DB) *ProyectoRepository {
	return &ProyectoRepository{db: db}
}

func (r *ProyectoRepository) GetAll() ([]models.Proyecto, error) {
	var proyectos []models.Proyecto
	err := r.db.Where("activo = ?", true).Order("id_proyecto ASC").Find(&proyectos).Error
	return proyectos, err
}

func (r *ProyectoRepository) GetByID(id string) (*models.Proyecto, error) {
	var proyecto models.Proyecto
	if err := r.db.First(&proyecto, "id_proyecto = ?", id).Error; err != nil {
		return nil, err
	}
	return &proyecto, nil
}

func (r *ProyectoRepository) Create(p *models.Proyecto) error {
	return r.db.Create(p).Error
}

func (r *ProyectoRepository) Archivar(id string) error {
	result := r.db.Model(&models.Proyecto{}).Where("id_proyecto = ?", id).Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
