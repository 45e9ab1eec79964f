package models

import "time"

type Empleado struct {
	DNI           string    `gorm:"primaryKey" json:"dni"`
	Nombre        string    `json:"nombre"`
	Apellidos     string    `json:"apellidos"`
	CodigoFichaje string    `gorm:"uniqueIndex" json:"codigo_fichaje"`
	Estado        string    `gorm:"default:Activo" json:"estado"`
	CreatedAt     time.Time `json:"created_at"`
}

// NombreCompleto is the display name used on invoice lines.
func (e *Empleado) NombreCompleto() string {
	if e.Apellidos == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellidos
}
