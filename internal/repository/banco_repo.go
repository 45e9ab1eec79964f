package repository

import (
	"gorm.io/gorm"

	"consultora-billing-backend/internal/models"
)

type BancoRepository struct {
	db *gorm.DB
}

func NewBancoRepository(db *gorm.DB) *BancoRepository {
	return &BancoRepository{db: db}
}

func (r *BancoRepository) GetAll() ([]models.Banco, error) {
	var bancos []models.Banco
	err := r.db.Order("id ASC").Find(&bancos).Error
	return bancos, err
}

func (r *BancoRepository) Create(b *models.Banco) error {
	return r.db.Create(b).Error
}

func (r *BancoRepository) Archivar(id uint) error {
	result := r.db.Model(&models.Banco{}).Where("id = ?", id).Update("estado", "Inactivo")
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
