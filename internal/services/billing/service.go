package billing

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
)

// Linea is one priced row of a preview or generated invoice.
type Linea struct {
	EmpleadoDNI string  `json:"empleado_dni"`
	Empleado    string  `json:"empleado"`
	Proyecto    string  `json:"proyecto"`
	Horas       float64 `json:"horas"`
	TarifaHora  float64 `json:"tarifa_hora"`
	Subtotal    float64 `json:"subtotal"`
}

// Preview is the computed bill for a client/period before (or instead of)
// persisting anything.
type Preview struct {
	Anio         int      `json:"anio"`
	Mes          int      `json:"mes"`
	IDCliente    string   `json:"id_cliente"`
	TotalHoras   float64  `json:"total_horas"`
	TotalImporte float64  `json:"total_importe"`
	Lineas       []Linea  `json:"lineas"`
	Alertas      []string `json:"alertas"`
}

// Service computes and emits monthly invoices from unbilled time entries.
type Service struct {
	horas     repository.HorasStore
	tarifas   repository.TarifaStore
	facturas  repository.FacturaStore
	empleados repository.EmpleadoStore
	sociedad  string
}

func NewService(
	horas repository.HorasStore,
	tarifas repository.TarifaStore,
	facturas repository.FacturaStore,
	empleados repository.EmpleadoStore,
	sociedad string,
) *Service {
	return &Service{
		horas:     horas,
		tarifas:   tarifas,
		facturas:  facturas,
		empleados: empleados,
		sociedad:  sociedad,
	}
}

// fechaAncla is the rate anchor date for a billing period: the last calendar
// day of the month. Applied identically by Preview and Generar.
func fechaAncla(anio, mes int) time.Time {
	return time.Date(anio, time.Month(mes)+1, 0, 0, 0, 0, 0, time.UTC)
}

// resolverTarifa picks the assignment with the latest fec_inicio on or
// before asOf. Returns ok=false when no assignment applies; callers treat
// that as a blocking alert, not a hard error.
func (s *Service) resolverTarifa(idEmpleado, idProyecto string, asOf time.Time) (float64, bool, error) {
	tarifas, err := s.tarifas.PorEmpleadoProyecto(idEmpleado, idProyecto)
	if err != nil {
		return 0, false, err
	}
	// newest first; the first row not after asOf wins
	for _, t := range tarifas {
		if !t.FecInicio.After(asOf) {
			return t.Tarifa, true, nil
		}
	}
	return 0, false, nil
}

func (s *Service) nombreEmpleado(dni string) (string, error) {
	emp, err := s.empleados.PorDNI(dni)
	if err != nil {
		return "", err
	}
	if emp == nil {
		return dni, nil
	}
	return emp.NombreCompleto(), nil
}

// calculo is the shared preview/generate computation plus the entry ids that
// back it, so Generar can lock exactly the rows it priced.
type calculo struct {
	preview       *Preview
	horaIDs       []uuid.UUID
	faltanTarifas bool
}

func (s *Service) calcular(idCliente string, anio, mes int) (*calculo, error) {
	pendientes, err := s.horas.PendientesPorPeriodo(idCliente, anio, mes)
	if err != nil {
		return nil, err
	}

	preview := &Preview{
		Anio:      anio,
		Mes:       mes,
		IDCliente: idCliente,
		Lineas:    []Linea{},
		Alertas:   []string{},
	}

	if len(pendientes) == 0 {
		preview.Alertas = append(preview.Alertas,
			"No hay horas pendientes de facturar para ese cliente/mes/año.")
		return &calculo{preview: preview}, nil
	}

	// group by (empleado, proyecto) preserving the store's stable order
	type grupoKey struct {
		empleado string
		proyecto string
	}
	horasPorGrupo := make(map[grupoKey]decimal.Decimal)
	idsPorGrupo := make(map[grupoKey][]uuid.UUID)
	var orden []grupoKey

	for _, h := range pendientes {
		key := grupoKey{empleado: h.IDEmpleado, proyecto: h.IDProyecto}
		if _, ok := horasPorGrupo[key]; !ok {
			orden = append(orden, key)
		}
		horasPorGrupo[key] = horasPorGrupo[key].Add(decimal.NewFromFloat(h.Horas))
		idsPorGrupo[key] = append(idsPorGrupo[key], h.ID)
	}

	ancla := fechaAncla(anio, mes)
	totalHoras := decimal.Zero
	totalImporte := decimal.Zero
	calc := &calculo{preview: preview}

	for _, key := range orden {
		// group-level rounding to avoid per-entry drift
		horas := horasPorGrupo[key].Round(2)

		tarifa, ok, err := s.resolverTarifa(key.empleado, key.proyecto, ancla)
		if err != nil {
			return nil, err
		}
		if !ok {
			preview.Alertas = append(preview.Alertas,
				fmt.Sprintf("Falta tarifa para %s en proyecto %s.", key.empleado, key.proyecto))
			calc.faltanTarifas = true
			continue
		}

		nombre, err := s.nombreEmpleado(key.empleado)
		if err != nil {
			return nil, err
		}

		tarifaDec := decimal.NewFromFloat(tarifa)
		subtotal := horas.Mul(tarifaDec).Round(2)

		preview.Lineas = append(preview.Lineas, Linea{
			EmpleadoDNI: key.empleado,
			Empleado:    nombre,
			Proyecto:    key.proyecto,
			Horas:       horas.InexactFloat64(),
			TarifaHora:  tarifaDec.InexactFloat64(),
			Subtotal:    subtotal.InexactFloat64(),
		})

		totalHoras = totalHoras.Add(horas)
		totalImporte = totalImporte.Add(subtotal)
		calc.horaIDs = append(calc.horaIDs, idsPorGrupo[key]...)
	}

	preview.TotalHoras = totalHoras.Round(2).InexactFloat64()
	preview.TotalImporte = totalImporte.Round(2).InexactFloat64()
	return calc, nil
}

// Preview computes lines, alerts and totals without touching any state.
// Callable any number of times.
func (s *Service) Preview(idCliente string, anio, mes int) (*Preview, error) {
	calc, err := s.calcular(idCliente, anio, mes)
	if err != nil {
		return nil, err
	}
	return calc.preview, nil
}

// Generar re-runs the preview computation, persists the invoice and locks
// every consumed time entry. On ErrSinLineas and ErrFaltanTarifas the
// computed preview is returned alongside the error so the caller can act on
// it. Any failure leaves no partial state.
func (s *Service) Generar(idCliente string, anio, mes int) (*models.Factura, *Preview, error) {
	existe, err := s.facturas.ExistePorPeriodo(s.sociedad, idCliente, anio, mes)
	if err != nil {
		return nil, nil, err
	}
	if existe {
		return nil, nil, ErrYaFacturado
	}

	calc, err := s.calcular(idCliente, anio, mes)
	if err != nil {
		return nil, nil, err
	}

	if len(calc.preview.Lineas) == 0 {
		return nil, calc.preview, ErrSinLineas
	}
	if calc.faltanTarifas {
		return nil, calc.preview, ErrFaltanTarifas
	}

	lineas := make([]models.FacturaLinea, len(calc.preview.Lineas))
	for i, l := range calc.preview.Lineas {
		lineas[i] = models.FacturaLinea{
			EmpleadoDNI: l.EmpleadoDNI,
			Empleado:    l.Empleado,
			Proyecto:    l.Proyecto,
			Horas:       l.Horas,
			TarifaHora:  l.TarifaHora,
			Subtotal:    l.Subtotal,
		}
	}

	factura := &models.Factura{
		IDSociedad:   s.sociedad,
		IDCliente:    idCliente,
		Anio:         anio,
		Mes:          mes,
		TotalHoras:   calc.preview.TotalHoras,
		TotalImporte: calc.preview.TotalImporte,
		Lineas:       lineas,
		CreatedAt:    time.Now(),
	}

	if err := s.facturas.Emitir(factura, calc.horaIDs); err != nil {
		if errors.Is(err, repository.ErrFacturaDuplicada) {
			return nil, nil, ErrYaFacturado
		}
		return nil, nil, err
	}

	return factura, calc.preview, nil
}
