package billing

import "errors"

var (
	// ErrYaFacturado: an invoice already exists for the (cliente, anio, mes)
	// key, either found by the pre-check or raised by the store when a
	// concurrent generate won the race.
	ErrYaFacturado = errors.New("ya existe una factura para ese cliente/mes/año")

	// ErrSinLineas: no billable lines for the period.
	ErrSinLineas = errors.New("no se puede generar: no hay líneas facturables")

	// ErrFaltanTarifas: one or more (empleado, proyecto) groups have no
	// applicable rate. The caller must assign the missing rates and retry.
	ErrFaltanTarifas = errors.New("no se puede generar: faltan tarifas")
)
