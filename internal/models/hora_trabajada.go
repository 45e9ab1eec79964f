package models

import (
	"time"

	"github.com/google/uuid"
)

// HoraTrabajada is one employee's logged hours on one project for one
// client, on one calendar date. Once Facturada is set the row is locked to
// its invoice and is never deleted.
type HoraTrabajada struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	IDSociedad  string     `gorm:"index" json:"id_sociedad"`
	Fecha       time.Time  `gorm:"column:fecha;index" json:"fecha"`
	IDEmpleado  string     `gorm:"index" json:"id_empleado"`
	IDCliente   string     `gorm:"index" json:"id_cliente"`
	IDProyecto  string     `gorm:"index" json:"id_proyecto"`
	Horas       float64    `gorm:"type:numeric(6,2)" json:"horas"`
	Tarea       string     `json:"tarea"`
	Origen      string     `json:"origen"` // "manual" or "importado"
	Estado      string     `json:"estado"`
	Facturada   bool       `gorm:"index" json:"facturada"`
	FacturaID   *uint      `json:"factura_id"`
	BatchImport *uuid.UUID `gorm:"index" json:"batch_import,omitempty"`
	Activo      bool       `gorm:"default:true" json:"activo"`
	CreatedAt   time.Time  `json:"created_at"`
}
