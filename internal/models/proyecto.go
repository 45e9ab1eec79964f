package models

import "time"

type Proyecto struct {
	IDProyecto            string     `gorm:"primaryKey" json:"id_proyecto"`
	IDSociedad            string     `gorm:"index" json:"id_sociedad"`
	IDCliente             string     `gorm:"index" json:"id_cliente"`
	NombreProyecto        string     `json:"nombre_proyecto"`
	CodigoProyectoTracker string     `json:"codigo_proyecto_tracker"`
	TipoPago              string     `json:"tipo_pago"`
	Precio                float64    `gorm:"type:numeric(15,2)" json:"precio"`
	FecInicio             *time.Time `gorm:"column:fec_inicio" json:"fec_inicio"`
	Activo                bool       `gorm:"default:true" json:"activo"`
	CreatedAt             time.Time  `json:"created_at"`
}
