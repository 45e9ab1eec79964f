package models

import "time"

type Cliente struct {
	IDCliente string    `gorm:"primaryKey" json:"id_cliente"`
	Nombre    string    `json:"nombre"`
	CIF       string    `gorm:"uniqueIndex" json:"cif"`
	Contacto  string    `json:"contacto"`
	Direccion string    `json:"direccion"`
	Estado    string    `gorm:"default:Activo" json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}
