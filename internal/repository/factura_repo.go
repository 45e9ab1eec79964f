package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"consultora-billing-backend/internal/models"
)

type FacturaRepository struct {
	db *gorm.DB
}

func NewFacturaRepository(db *gorm.DB) *FacturaRepository {
	return &FacturaRepository{db: db}
}

// Expose DB if needed
func (r *FacturaRepository) DB() *gorm.DB {
	return r.db
}

func (r *FacturaRepository) ExistePorPeriodo(idSociedad, idCliente string, anio, mes int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Factura{}).
		Where("id_sociedad = ? AND id_cliente = ? AND anio = ? AND mes = ?", idSociedad, idCliente, anio, mes).
		Count(&count).Error
	return count > 0, err
}

func (r *FacturaRepository) GetByID(id uint) (*models.Factura, error) {
	var factura models.Factura
	err := r.db.Preload("Lineas").First(&factura, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &factura, nil
}

func (r *FacturaRepository) ListByCliente(idCliente string) ([]models.Factura, error) {
	var facturas []models.Factura
	query := r.db.Preload("Lineas").Order("anio DESC, mes DESC")
	if idCliente != "" {
		query = query.Where("id_cliente = ?", idCliente)
	}
	err := query.Find(&facturas).Error
	return facturas, err
}

// Emitir persists the invoice (with lines, the id comes from the store
// sequence) and flags every consumed entry, all inside one transaction.
//
// The consumed rows are re-read FOR UPDATE and re-checked against the billed
// flag: if a concurrent generate already claimed any of them the transaction
// rolls back with ErrHorasEnConflicto. The composite unique index on the
// invoice period turns the race on the invoice row itself into
// ErrFacturaDuplicada for the loser.
func (r *FacturaRepository) Emitir(f *models.Factura, horaIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrFacturaDuplicada
			}
			return err
		}

		var horas []models.HoraTrabajada
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ? AND facturada = ?", horaIDs, false).
			Find(&horas).Error; err != nil {
			return err
		}
		if len(horas) != len(horaIDs) {
			return ErrHorasEnConflicto
		}

		if err := tx.Model(&models.HoraTrabajada{}).
			Where("id IN ?", horaIDs).
			Updates(map[string]interface{}{
				"facturada":  true,
				"factura_id": f.ID,
			}).Error; err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{
			"anio":          f.Anio,
			"mes":           f.Mes,
			"id_cliente":    f.IDCliente,
			"total_importe": f.TotalImporte,
			"lineas":        len(f.Lineas),
			"horas_bloqueadas": len(horaIDs),
		})

		audit := models.FacturaAuditLog{
			ID:          uuid.New(),
			FacturaID:   f.ID,
			Action:      "generar",
			PerformedBy: "api",
			Details:     details,
			CreatedAt:   time.Now(),
		}
		return tx.Create(&audit).Error
	})
}
