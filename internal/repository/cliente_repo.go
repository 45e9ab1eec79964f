package repository

import (
	"gorm.io/gorm"

	"consultora-billing-backend/internal/models"
)

type ClienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *ClienteRepository {
	return &ClienteRepository{db: db}
}

func (r *ClienteRepository) GetAll() ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := r.db.Order("id_cliente ASC").Find(&clientes).Error
	return clientes, err
}

func (r *ClienteRepository) GetByID(id string) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := r.db.First(&cliente, "id_cliente = ?", id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *ClienteRepository) Create(c *models.Cliente) error {
	return r.db.Create(c).Error
}

func (r *ClienteRepository) Update(c *models.Cliente) error {
	return r.db.Save(c).Error
}

func (r *ClienteRepository) Archivar(id string) error {
	result := r.db.Model(&models.Cliente{}).Where("id_cliente = ?", id).Update("estado", "Inactivo")
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
