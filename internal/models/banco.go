package models

import "time"

type Banco struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Entidad   string    `json:"entidad"`
	IBAN      string    `gorm:"uniqueIndex" json:"iban"`
	Estado    string    `gorm:"default:Principal" json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}
