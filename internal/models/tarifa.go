package models

import "time"

// Tarifa is the hourly rate negotiated for an (empleado, cliente, proyecto)
// tuple, effective from FecInicio. Rows are never updated in place: a newer
// FecInicio supersedes older assignments.
type Tarifa struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	IDSociedad string    `gorm:"index" json:"id_sociedad"`
	IDEmpleado string    `gorm:"index:idx_tarifa_emp_proy" json:"id_empleado"`
	IDCliente  string    `gorm:"index" json:"id_cliente"`
	IDProyecto string    `gorm:"index:idx_tarifa_emp_proy" json:"id_proyecto"`
	FecInicio  time.Time `gorm:"column:fec_inicio" json:"fec_inicio"`
	Tarifa     float64   `gorm:"type:numeric(10,2)" json:"tarifa"`
	Activo     bool      `gorm:"default:true" json:"activo"`
	CreatedAt  time.Time `json:"created_at"`
}
