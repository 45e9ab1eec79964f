package models

import (
	"time"

	"github.com/google/uuid"
)

// ImportacionBatch tracks one CSV upload of time entries while it is
// processed in the background.
type ImportacionBatch struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Filename       string     `json:"filename"`
	TotalFichajes  int        `json:"total_fichajes"`
	ProcessedCount int        `json:"processed_count"`
	SkippedCount   int        `json:"skipped_count"`
	Status         string     `json:"status"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}
