package repository

import (
	"errors"

	"github.com/google/uuid"

	"consultora-billing-backend/internal/models"
)

var (
	// ErrFacturaDuplicada is returned when an invoice already exists for the
	// same (sociedad, cliente, anio, mes) key, including the case where a
	// concurrent generate won the race.
	ErrFacturaDuplicada = errors.New("ya existe una factura para ese periodo")

	// ErrHorasEnConflicto is returned when some of the time entries selected
	// for an invoice were billed by a concurrent writer between computation
	// and commit. The whole transaction is rolled back.
	ErrHorasEnConflicto = errors.New("horas ya facturadas por una operación concurrente")
)

// HorasStore is the time-entry store consumed by the billing service.
type HorasStore interface {
	// PendientesPorPeriodo returns the unbilled, active entries of a client
	// within a calendar month, in a stable order.
	PendientesPorPeriodo(idCliente string, anio, mes int) ([]models.HoraTrabajada, error)
}

// TarifaStore is the rate-assignment store consumed by the billing service.
type TarifaStore interface {
	// PorEmpleadoProyecto returns the active rate assignments for an
	// (empleado, proyecto) pair ordered by fec_inicio descending.
	PorEmpleadoProyecto(idEmpleado, idProyecto string) ([]models.Tarifa, error)
}

// FacturaStore is the invoice store consumed by the billing service.
type FacturaStore interface {
	ExistePorPeriodo(idSociedad, idCliente string, anio, mes int) (bool, error)

	// Emitir atomically persists the invoice with its lines and flags every
	// consumed time entry as billed. Either everything commits or nothing
	// does.
	Emitir(f *models.Factura, horaIDs []uuid.UUID) error
}

// EmpleadoStore resolves employee display names for invoice lines.
type EmpleadoStore interface {
	// PorDNI returns nil without error when the employee is unknown.
	PorDNI(dni string) (*models.Empleado, error)
}
