package billing

import (
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"consultora-billing-backend/internal/models"
	"consultora-billing-backend/internal/repository"
)

// mock implementations

type mockHorasStore struct {
	horas []models.HoraTrabajada
}

func (m *mockHorasStore) PendientesPorPeriodo(idCliente string, anio, mes int) ([]models.HoraTrabajada, error) {
	var out []models.HoraTrabajada
	for _, h := range m.horas {
		if h.IDCliente == idCliente &&
			h.Fecha.Year() == anio && int(h.Fecha.Month()) == mes &&
			!h.Facturada && h.Activo {
			out = append(out, h)
		}
	}
	// stable order like the real store
	sort.Slice(out, func(i, j int) bool {
		if out[i].IDEmpleado != out[j].IDEmpleado {
			return out[i].IDEmpleado < out[j].IDEmpleado
		}
		if out[i].IDProyecto != out[j].IDProyecto {
			return out[i].IDProyecto < out[j].IDProyecto
		}
		return out[i].Fecha.Before(out[j].Fecha)
	})
	return out, nil
}

type mockTarifaStore struct {
	tarifas []models.Tarifa
}

func (m *mockTarifaStore) PorEmpleadoProyecto(idEmpleado, idProyecto string) ([]models.Tarifa, error) {
	var out []models.Tarifa
	for _, t := range m.tarifas {
		if t.IDEmpleado == idEmpleado && t.IDProyecto == idProyecto && t.Activo {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FecInicio.After(out[j].FecInicio)
	})
	return out, nil
}

type mockFacturaStore struct {
	horas      *mockHorasStore
	facturas   []*models.Factura
	seq        uint
	failEmitir error
}

func (m *mockFacturaStore) ExistePorPeriodo(idSociedad, idCliente string, anio, mes int) (bool, error) {
	for _, f := range m.facturas {
		if f.IDSociedad == idSociedad && f.IDCliente == idCliente && f.Anio == anio && f.Mes == mes {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFacturaStore) Emitir(f *models.Factura, horaIDs []uuid.UUID) error {
	if m.failEmitir != nil {
		return m.failEmitir
	}
	// duplicate backstop, like the composite unique index
	if existe, _ := m.ExistePorPeriodo(f.IDSociedad, f.IDCliente, f.Anio, f.Mes); existe {
		return repository.ErrFacturaDuplicada
	}
	m.seq++
	f.ID = m.seq
	m.facturas = append(m.facturas, f)

	ids := make(map[uuid.UUID]bool, len(horaIDs))
	for _, id := range horaIDs {
		ids[id] = true
	}
	for i := range m.horas.horas {
		if ids[m.horas.horas[i].ID] {
			facturaID := f.ID
			m.horas.horas[i].Facturada = true
			m.horas.horas[i].FacturaID = &facturaID
		}
	}
	return nil
}

type mockEmpleadoStore struct {
	empleados map[string]*models.Empleado
}

func (m *mockEmpleadoStore) PorDNI(dni string) (*models.Empleado, error) {
	return m.empleados[dni], nil
}

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func hora(empleado, cliente, proyecto, dia string, horas float64) models.HoraTrabajada {
	return models.HoraTrabajada{
		ID:         uuid.New(),
		IDSociedad: "01",
		Fecha:      fecha(dia),
		IDEmpleado: empleado,
		IDCliente:  cliente,
		IDProyecto: proyecto,
		Horas:      horas,
		Origen:     "manual",
		Estado:     "Registrado",
		Activo:     true,
	}
}

func tarifa(empleado, proyecto, desde string, precio float64) models.Tarifa {
	return models.Tarifa{
		IDSociedad: "01",
		IDEmpleado: empleado,
		IDCliente:  "CYC",
		IDProyecto: proyecto,
		FecInicio:  fecha(desde),
		Tarifa:     precio,
		Activo:     true,
	}
}

func newTestService(horas []models.HoraTrabajada, tarifas []models.Tarifa) (*Service, *mockHorasStore, *mockFacturaStore) {
	horasStore := &mockHorasStore{horas: horas}
	facturaStore := &mockFacturaStore{horas: horasStore}
	empleados := &mockEmpleadoStore{empleados: map[string]*models.Empleado{
		"E1": {DNI: "E1", Nombre: "Laura", Apellidos: "Gómez"},
	}}
	svc := NewService(horasStore, &mockTarifaStore{tarifas: tarifas}, facturaStore, empleados, "01")
	return svc, horasStore, facturaStore
}

func TestPreview_AgrupaYValora(t *testing.T) {
	svc, _, _ := newTestService(
		[]models.HoraTrabajada{
			hora("E1", "CYC", "P1", "2026-01-26", 5.22),
			hora("E1", "CYC", "P1", "2026-01-27", 3.50),
		},
		[]models.Tarifa{tarifa("E1", "P1", "2025-06-01", 45.50)},
	)

	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(preview.Lineas) != 1 {
		t.Fatalf("expected 1 line, got %d", len(preview.Lineas))
	}
	linea := preview.Lineas[0]
	if linea.EmpleadoDNI != "E1" || linea.Proyecto != "P1" {
		t.Fatalf("unexpected line key: %+v", linea)
	}
	if linea.Empleado != "Laura Gómez" {
		t.Errorf("expected display name, got %q", linea.Empleado)
	}
	if linea.Horas != 8.72 {
		t.Errorf("expected 8.72 hours, got %v", linea.Horas)
	}
	if linea.TarifaHora != 45.50 {
		t.Errorf("expected rate 45.50, got %v", linea.TarifaHora)
	}
	if linea.Subtotal != 396.76 {
		t.Errorf("expected subtotal 396.76, got %v", linea.Subtotal)
	}
	if preview.TotalImporte != 396.76 {
		t.Errorf("expected total 396.76, got %v", preview.TotalImporte)
	}
	if preview.TotalHoras != 8.72 {
		t.Errorf("expected total hours 8.72, got %v", preview.TotalHoras)
	}
	if len(preview.Alertas) != 0 {
		t.Errorf("expected no alerts, got %v", preview.Alertas)
	}
}

func TestPreview_EmpleadoDesconocidoUsaDNI(t *testing.T) {
	svc, _, _ := newTestService(
		[]models.HoraTrabajada{hora("E9", "CYC", "P1", "2026-01-10", 2)},
		[]models.Tarifa{tarifa("E9", "P1", "2025-01-01", 30)},
	)

	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Lineas[0].Empleado != "E9" {
		t.Errorf("expected DNI fallback, got %q", preview.Lineas[0].Empleado)
	}
}

func TestPreview_SinHorasPendientes(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("empty period must not be an error: %v", err)
	}
	if len(preview.Lineas) != 0 {
		t.Fatalf("expected no lines, got %d", len(preview.Lineas))
	}
	if len(preview.Alertas) != 1 || preview.Alertas[0] != "No hay horas pendientes de facturar para ese cliente/mes/año." {
		t.Errorf("expected informational alert, got %v", preview.Alertas)
	}
}

func TestPreview_FaltaTarifaExcluyeGrupo(t *testing.T) {
	svc, _, _ := newTestService(
		[]models.HoraTrabajada{
			hora("E1", "CYC", "P1", "2026-01-05", 4),
			hora("E2", "CYC", "P2", "2026-01-06", 3),
		},
		[]models.Tarifa{tarifa("E1", "P1", "2025-06-01", 50)},
	)

	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(preview.Lineas) != 1 {
		t.Fatalf("expected 1 priced line, got %d", len(preview.Lineas))
	}
	if preview.TotalImporte != 200 {
		t.Errorf("unpriced group must not count, total %v", preview.TotalImporte)
	}
	if len(preview.Alertas) != 1 || preview.Alertas[0] != "Falta tarifa para E2 en proyecto P2." {
		t.Errorf("expected missing-rate alert with pair detail, got %v", preview.Alertas)
	}
}

func TestPreview_Deterministico(t *testing.T) {
	horas := []models.HoraTrabajada{
		hora("E2", "CYC", "P2", "2026-01-06", 3),
		hora("E1", "CYC", "P1", "2026-01-05", 4),
		hora("E1", "CYC", "P2", "2026-01-07", 1.5),
	}
	tarifas := []models.Tarifa{
		tarifa("E1", "P1", "2025-06-01", 50),
		tarifa("E1", "P2", "2025-06-01", 40),
		tarifa("E2", "P2", "2025-06-01", 35),
	}
	svc, _, _ := newTestService(horas, tarifas)

	first, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("preview is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestPreview_SumaInvariante(t *testing.T) {
	svc, _, _ := newTestService(
		[]models.HoraTrabajada{
			hora("E1", "CYC", "P1", "2026-01-05", 3.33),
			hora("E1", "CYC", "P2", "2026-01-06", 2.27),
			hora("E2", "CYC", "P2", "2026-01-07", 7.41),
		},
		[]models.Tarifa{
			tarifa("E1", "P1", "2025-06-01", 41.13),
			tarifa("E1", "P2", "2025-06-01", 38.70),
			tarifa("E2", "P2", "2025-06-01", 29.95),
		},
	)

	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var suma float64
	for _, l := range preview.Lineas {
		suma += l.Subtotal
	}
	// totals are rounded to 2 decimals, so compare within a cent
	if diff := preview.TotalImporte - suma; diff > 0.005 || diff < -0.005 {
		t.Errorf("total %v does not match line sum %v", preview.TotalImporte, suma)
	}
}

func TestResolverTarifa_Versionada(t *testing.T) {
	svc, _, _ := newTestService(
		[]models.HoraTrabajada{hora("E1", "CYC", "P1", "2026-01-10", 2)},
		[]models.Tarifa{
			tarifa("E1", "P1", "2024-01-01", 30),
			tarifa("E1", "P1", "2025-06-01", 45.50),
			tarifa("E1", "P1", "2026-03-01", 60), // not yet effective in January
		},
	)

	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Lineas[0].TarifaHora != 45.50 {
		t.Errorf("expected latest effective rate 45.50, got %v", preview.Lineas[0].TarifaHora)
	}
}

func TestResolverTarifa_TodasFuturas(t *testing.T) {
	svc, _, _ := newTestService(
		[]models.HoraTrabajada{hora("E1", "CYC", "P1", "2026-01-10", 2)},
		[]models.Tarifa{tarifa("E1", "P1", "2026-02-01", 60)},
	)

	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preview.Lineas) != 0 {
		t.Fatalf("future-only rates must not price the group")
	}
	if len(preview.Alertas) != 1 {
		t.Fatalf("expected missing-rate alert, got %v", preview.Alertas)
	}
}

func TestFechaAncla(t *testing.T) {
	if got := fechaAncla(2026, 1); !got.Equal(fecha("2026-01-31")) {
		t.Errorf("fechaAncla(2026, 1) = %v", got)
	}
	if got := fechaAncla(2024, 2); !got.Equal(fecha("2024-02-29")) {
		t.Errorf("fechaAncla(2024, 2) = %v", got)
	}
	if got := fechaAncla(2026, 12); !got.Equal(fecha("2026-12-31")) {
		t.Errorf("fechaAncla(2026, 12) = %v", got)
	}
}

func TestGenerar_BloqueaHoras(t *testing.T) {
	svc, horasStore, facturaStore := newTestService(
		[]models.HoraTrabajada{
			hora("E1", "CYC", "P1", "2026-01-26", 5.22),
			hora("E1", "CYC", "P1", "2026-01-27", 3.50),
		},
		[]models.Tarifa{tarifa("E1", "P1", "2025-06-01", 45.50)},
	)

	factura, _, err := svc.Generar("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if factura.ID == 0 {
		t.Errorf("expected store-assigned invoice id")
	}
	if factura.TotalImporte != 396.76 {
		t.Errorf("expected total 396.76, got %v", factura.TotalImporte)
	}
	if len(facturaStore.facturas) != 1 {
		t.Fatalf("expected exactly one stored invoice, got %d", len(facturaStore.facturas))
	}

	for _, h := range horasStore.horas {
		if !h.Facturada {
			t.Errorf("entry %s not locked", h.ID)
		}
		if h.FacturaID == nil || *h.FacturaID != factura.ID {
			t.Errorf("entry %s not linked to invoice %d", h.ID, factura.ID)
		}
	}

	// re-running preview for the same period now yields nothing to bill
	preview, err := svc.Preview("CYC", 2026, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.TotalHoras != 0 || len(preview.Lineas) != 0 {
		t.Errorf("billed hours leaked back into preview: %+v", preview)
	}
}

func TestGenerar_Duplicada(t *testing.T) {
	svc, _, facturaStore := newTestService(
		[]models.HoraTrabajada{
			hora("E1", "CYC", "P1", "2026-01-26", 5.22),
			hora("E1", "CYC", "P1", "2026-01-28", 1.00),
		},
		[]models.Tarifa{tarifa("E1", "P1", "2025-06-01", 45.50)},
	)

	if _, _, err := svc.Generar("CYC", 2026, 1); err != nil {
		t.Fatalf("first generate failed: %v", err)
	}

	_, _, err := svc.Generar("CYC", 2026, 1)
	if !errors.Is(err, ErrYaFacturado) {
		t.Fatalf("expected ErrYaFacturado, got %v", err)
	}
	if len(facturaStore.facturas) != 1 {
		t.Errorf("expected exactly one invoice for the period, got %d", len(facturaStore.facturas))
	}
}

func TestGenerar_CarreraPerdidaEnEmision(t *testing.T) {
	// the pre-check passes but the store rejects the insert, as when a
	// concurrent generate commits first
	svc, _, facturaStore := newTestService(
		[]models.HoraTrabajada{hora("E1", "CYC", "P1", "2026-01-26", 2)},
		[]models.Tarifa{tarifa("E1", "P1", "2025-06-01", 45.50)},
	)
	facturaStore.failEmitir = repository.ErrFacturaDuplicada

	_, _, err := svc.Generar("CYC", 2026, 1)
	if !errors.Is(err, ErrYaFacturado) {
		t.Fatalf("expected ErrYaFacturado, got %v", err)
	}
}

func TestGenerar_SinLineas(t *testing.T) {
	svc, _, facturaStore := newTestService(nil, nil)

	_, preview, err := svc.Generar("CYC", 2026, 1)
	if !errors.Is(err, ErrSinLineas) {
		t.Fatalf("expected ErrSinLineas, got %v", err)
	}
	if preview == nil {
		t.Fatalf("expected computed preview attached to the error")
	}
	if len(facturaStore.facturas) != 0 {
		t.Errorf("no invoice must be created")
	}
}

func TestGenerar_FaltanTarifas(t *testing.T) {
	svc, horasStore, facturaStore := newTestService(
		[]models.HoraTrabajada{
			hora("E1", "CYC", "P1", "2026-01-05", 4),
			hora("E2", "CYC", "P2", "2026-01-06", 3),
		},
		[]models.Tarifa{tarifa("E1", "P1", "2025-06-01", 50)},
	)

	_, preview, err := svc.Generar("CYC", 2026, 1)
	if !errors.Is(err, ErrFaltanTarifas) {
		t.Fatalf("expected ErrFaltanTarifas, got %v", err)
	}
	if preview == nil || len(preview.Alertas) == 0 {
		t.Fatalf("expected preview with alerts attached")
	}
	if len(facturaStore.facturas) != 0 {
		t.Errorf("incomplete set must not be billed")
	}
	for _, h := range horasStore.horas {
		if h.Facturada {
			t.Errorf("no entry may be locked on a failed generate")
		}
	}
}

func TestGenerar_FalloEnEmisionEsReintentable(t *testing.T) {
	svc, horasStore, facturaStore := newTestService(
		[]models.HoraTrabajada{hora("E1", "CYC", "P1", "2026-01-26", 2)},
		[]models.Tarifa{tarifa("E1", "P1", "2025-06-01", 45.50)},
	)
	facturaStore.failEmitir = errors.New("conexión perdida")

	if _, _, err := svc.Generar("CYC", 2026, 1); err == nil {
		t.Fatalf("expected emit failure to propagate")
	}
	// nothing committed, nothing locked
	if len(facturaStore.facturas) != 0 {
		t.Fatalf("failed emit must not leave an invoice")
	}
	for _, h := range horasStore.horas {
		if h.Facturada {
			t.Fatalf("failed emit must not lock entries")
		}
	}

	// caller retry succeeds once the store recovers
	facturaStore.failEmitir = nil
	if _, _, err := svc.Generar("CYC", 2026, 1); err != nil {
		t.Fatalf("retry after failure must succeed: %v", err)
	}
}
