package models

import "time"

// Factura is a generated bill for one client and one (anio, mes) period.
// Write-once: there is no update or delete path. The composite unique index
// is the store-level guarantee of one invoice per period, and the final
// arbiter between two concurrent generate calls.
type Factura struct {
	ID           uint           `gorm:"primaryKey" json:"id_factura"`
	IDSociedad   string         `gorm:"uniqueIndex:idx_factura_periodo" json:"id_sociedad"`
	IDCliente    string         `gorm:"uniqueIndex:idx_factura_periodo" json:"id_cliente"`
	Anio         int            `gorm:"uniqueIndex:idx_factura_periodo" json:"anio"`
	Mes          int            `gorm:"uniqueIndex:idx_factura_periodo" json:"mes"`
	TotalHoras   float64        `gorm:"type:numeric(10,2)" json:"total_horas"`
	TotalImporte float64        `gorm:"type:numeric(10,2)" json:"total_importe"`
	Lineas       []FacturaLinea `gorm:"foreignKey:FacturaID;constraint:OnDelete:CASCADE" json:"lineas"`
	CreatedAt    time.Time      `json:"created_at"`
}

// FacturaLinea is one priced row of an invoice: aggregated hours for an
// (empleado, proyecto) pair at the resolved rate.
type FacturaLinea struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	FacturaID   uint    `gorm:"index" json:"-"`
	EmpleadoDNI string  `json:"empleado_dni"`
	Empleado    string  `json:"empleado"`
	Proyecto    string  `json:"proyecto"`
	Horas       float64 `gorm:"type:numeric(10,2)" json:"horas"`
	TarifaHora  float64 `gorm:"type:numeric(10,2)" json:"tarifa_hora"`
	Subtotal    float64 `gorm:"type:numeric(10,2)" json:"subtotal"`
}
