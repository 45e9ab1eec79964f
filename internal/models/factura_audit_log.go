package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FacturaAuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacturaID   uint      `gorm:"index"`
	Action      string
	PerformedBy string
	Details     datatypes.JSON
	CreatedAt   time.Time
}
