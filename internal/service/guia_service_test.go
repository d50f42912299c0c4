package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/model"
	"github.com/Juan-204/evc-backend/internal/repository"
	"github.com/Juan-204/evc-backend/internal/service"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubGuiaRepo is an in-memory GuiaRepository for testing.
type stubGuiaRepo struct {
	pairings  map[[2]uint]uint
	guias     []*model.GuiaTransporte
	detalles  []*model.GuiaTransporteDetalle
	decomisos []*model.Decomiso

	failDecomisos bool
}

func newStubGuiaRepo() *stubGuiaRepo {
	return &stubGuiaRepo{pairings: make(map[[2]uint]uint)}
}

func (r *stubGuiaRepo) UpsertVehiculoConductor(_ context.Context, _ *gorm.DB, idVehiculo, idConductores uint) (uint, error) {
	key := [2]uint{idVehiculo, idConductores}
	if id, ok := r.pairings[key]; ok {
		return id, nil
	}
	id := uint(len(r.pairings) + 1)
	r.pairings[key] = id
	return id, nil
}

func (r *stubGuiaRepo) CreateGuia(_ context.Context, _ *gorm.DB, g *model.GuiaTransporte) error {
	g.ID = uint(len(r.guias) + 1)
	r.guias = append(r.guias, g)
	return nil
}

func (r *stubGuiaRepo) CreateDetalle(_ context.Context, _ *gorm.DB, d *model.GuiaTransporteDetalle) error {
	d.ID = uint(len(r.detalles) + 1)
	r.detalles = append(r.detalles, d)
	return nil
}

func (r *stubGuiaRepo) CreateDecomiso(_ context.Context, _ *gorm.DB, d *model.Decomiso) error {
	if r.failDecomisos {
		return errors.New("constraint violation")
	}
	d.ID = uint(len(r.decomisos) + 1)
	r.decomisos = append(r.decomisos, d)
	return nil
}

func (r *stubGuiaRepo) FindGuiaPDF(_ context.Context, _ uint) (*dto.GuiaPDFHeader, error) {
	return &dto.GuiaPDFHeader{Fecha: "2026-03-10"}, nil
}

func (r *stubGuiaRepo) FindDetallesPDF(_ context.Context, _ uint) ([]dto.DetallePDF, error) {
	return nil, nil
}

func (r *stubGuiaRepo) FindDecomisosPDF(_ context.Context, _ uint, _ string) ([]dto.DecomisoPDF, error) {
	return nil, nil
}

func (r *stubGuiaRepo) FindDestinoPDF(_ context.Context, _ uint) (*dto.DestinoPDF, error) {
	return &dto.DestinoPDF{}, nil
}

func (r *stubGuiaRepo) ListPorEstablecimiento(_ context.Context, _ uint) ([]model.GuiaTransporte, error) {
	out := make([]model.GuiaTransporte, 0, len(r.guias))
	for _, g := range r.guias {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGuiaRepo) AnimalesPorGuia(_ context.Context, _ uint) ([]dto.AnimalGuiaResponse, error) {
	return nil, nil
}

func (r *stubGuiaRepo) DB() *gorm.DB { return nil }

var _ repository.GuiaRepository = (*stubGuiaRepo)(nil)

// stubPDF records render calls; it can be told to fail. ruta is what Ruta
// reports, so tests can point it at a real file on disk.
type stubPDF struct {
	calls int
	fail  bool
	ruta  string
}

func (p *stubPDF) GenerarGuiaPDF(doc *dto.GuiaDocumento) (string, error) {
	p.calls++
	if p.fail {
		return "", errors.New("render error")
	}
	if p.ruta != "" {
		return p.ruta, nil
	}
	return "reportes_pdf/guia_transporte_1.pdf", nil
}

func (p *stubPDF) Ruta(idGuia uint) string {
	if p.ruta != "" {
		return p.ruta
	}
	return fmt.Sprintf("reportes_pdf/guia_transporte_%d.pdf", idGuia)
}

var _ service.PDFGenerator = (*stubPDF)(nil)

// ── Fixtures ──────────────────────────────────────────────────────────────────

func detalleAprobado(idIngresoDetalle, idAnimal uint) dto.DetalleGuiaRequest {
	return dto.DetalleGuiaRequest{
		IDIngresoDetalle:    idIngresoDetalle,
		IDAnimal:            idAnimal,
		CarneOctavos:        8,
		ViserasBlancas:      1,
		ViserasRojas:        1,
		Cabezas:             1,
		TemperaturaPromedio: decimal.NewFromFloat(3.5),
		Dictamen:            model.DictamenAprobado,
	}
}

func guiaRequest(detalles ...dto.DetalleGuiaRequest) dto.GuardarGuiaRequest {
	return dto.GuardarGuiaRequest{
		Fecha:         "2026-03-10",
		IDPlanta:      1,
		IDDestino:     4,
		IDVehiculo:    2,
		IDConductores: 3,
		Detalles:      detalles,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestGuardarGuia_RowAccounting(t *testing.T) {
	repo := newStubGuiaRepo()
	pdf := &stubPDF{}
	svc := service.NewGuiaService(repo, pdf, nil)

	conDecomiso := detalleAprobado(11, 21)
	conDecomiso.Dictamen = model.DictamenConDecomiso
	conDecomiso.Decomisos = []dto.DecomisoRequest{{
		IDAnimal: 21,
		Producto: "Higado",
		Cantidad: decimal.NewFromInt(1),
		Motivo:   "Fasciola",
		Fecha:    "2026-03-10",
	}}

	resp, err := svc.GuardarGuia(context.Background(), guiaRequest(detalleAprobado(10, 20), conDecomiso))
	require.NoError(t, err)

	// One header, one detalle per line, one decomiso row
	assert.Len(t, repo.guias, 1)
	assert.Len(t, repo.detalles, 2)
	assert.Len(t, repo.decomisos, 1)
	assert.Equal(t, 2, resp.Detalles)
	assert.Equal(t, 1, resp.Decomisos)

	// Every detalle points at the committed header
	for _, d := range repo.detalles {
		assert.Equal(t, repo.guias[0].ID, d.IDGuiaTransporte)
	}
	// Header references the vehiculo-conductor pairing
	assert.Equal(t, repo.pairings[[2]uint{2, 3}], repo.guias[0].IDVehiculoConductor)

	// PDF was rendered once, after commit
	assert.Equal(t, 1, pdf.calls)
	assert.True(t, resp.PDFGenerado)
}

func TestGuardarGuia_ReutilizaPareja(t *testing.T) {
	repo := newStubGuiaRepo()
	svc := service.NewGuiaService(repo, &stubPDF{}, nil)

	_, err := svc.GuardarGuia(context.Background(), guiaRequest(detalleAprobado(10, 20)))
	require.NoError(t, err)
	_, err = svc.GuardarGuia(context.Background(), guiaRequest(detalleAprobado(11, 21)))
	require.NoError(t, err)

	// Same vehiculo+conductor never duplicates the pairing row
	assert.Len(t, repo.pairings, 1)
	assert.Equal(t, repo.guias[0].IDVehiculoConductor, repo.guias[1].IDVehiculoConductor)
}

func TestGuardarGuia_SinDetalles(t *testing.T) {
	repo := newStubGuiaRepo()
	svc := service.NewGuiaService(repo, &stubPDF{}, nil)

	_, err := svc.GuardarGuia(context.Background(), guiaRequest())
	assert.ErrorIs(t, err, service.ErrGuiaSinDetalles)
	assert.Empty(t, repo.guias)
}

func TestGuardarGuia_DecomisoEnLineaAprobada(t *testing.T) {
	repo := newStubGuiaRepo()
	svc := service.NewGuiaService(repo, &stubPDF{}, nil)

	det := detalleAprobado(10, 20) // dictamen "A"
	det.Decomisos = []dto.DecomisoRequest{{
		IDAnimal: 20,
		Producto: "Pulmon",
		Cantidad: decimal.NewFromInt(1),
		Motivo:   "Congestion",
		Fecha:    "2026-03-10",
	}}

	_, err := svc.GuardarGuia(context.Background(), guiaRequest(det))
	assert.ErrorIs(t, err, service.ErrDecomisoDictamen)
	assert.Empty(t, repo.guias, "nothing persisted on a rejected payload")
}

func TestGuardarGuia_DecomisoSinAnimal(t *testing.T) {
	repo := newStubGuiaRepo()
	svc := service.NewGuiaService(repo, &stubPDF{}, nil)

	det := detalleAprobado(10, 20)
	det.Dictamen = model.DictamenConDecomiso
	det.Decomisos = []dto.DecomisoRequest{{
		Producto: "Rinon",
		Cantidad: decimal.NewFromInt(1),
		Motivo:   "Quiste",
		Fecha:    "2026-03-10",
	}}

	_, err := svc.GuardarGuia(context.Background(), guiaRequest(det))
	assert.ErrorIs(t, err, service.ErrDecomisoSinAnimal)
	assert.Empty(t, repo.guias)
}

func TestGuardarGuia_FallaPersistencia(t *testing.T) {
	repo := newStubGuiaRepo()
	repo.failDecomisos = true
	pdf := &stubPDF{}
	svc := service.NewGuiaService(repo, pdf, nil)

	det := detalleAprobado(10, 20)
	det.Dictamen = model.DictamenConDecomiso
	det.Decomisos = []dto.DecomisoRequest{{
		IDAnimal: 20,
		Producto: "Higado",
		Cantidad: decimal.NewFromInt(1),
		Motivo:   "Abscesos",
		Fecha:    "2026-03-10",
	}}

	_, err := svc.GuardarGuia(context.Background(), guiaRequest(det))
	var pe *service.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "decomisos", pe.Op)
	assert.Zero(t, pdf.calls, "no PDF for a failed transaction")
}

func TestGuardarGuia_PDFFallaNoRompeLaGuia(t *testing.T) {
	repo := newStubGuiaRepo()
	pdf := &stubPDF{fail: true}
	svc := service.NewGuiaService(repo, pdf, nil)

	resp, err := svc.GuardarGuia(context.Background(), guiaRequest(detalleAprobado(10, 20)))
	require.NoError(t, err, "render failure must not surface: the guia is committed")
	assert.False(t, resp.PDFGenerado)
	assert.Empty(t, resp.PDFRuta)
	assert.Len(t, repo.guias, 1)
}

func TestDescargarPDF_SirveElArchivoExistente(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "guia_transporte_3.pdf")
	require.NoError(t, os.WriteFile(ruta, []byte("%PDF-1.4"), 0644))

	pdf := &stubPDF{ruta: ruta}
	svc := service.NewGuiaService(newStubGuiaRepo(), pdf, nil)

	got, err := svc.DescargarPDF(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, ruta, got)
	assert.Zero(t, pdf.calls, "no regeneration when the file is on disk")
}

func TestDescargarPDF_RegeneraCuandoFalta(t *testing.T) {
	pdf := &stubPDF{ruta: filepath.Join(t.TempDir(), "guia_transporte_3.pdf")}
	svc := service.NewGuiaService(newStubGuiaRepo(), pdf, nil)

	got, err := svc.DescargarPDF(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, pdf.ruta, got)
	assert.Equal(t, 1, pdf.calls)
}

func TestGuardarGuia_FechaInvalida(t *testing.T) {
	svc := service.NewGuiaService(newStubGuiaRepo(), &stubPDF{}, nil)

	req := guiaRequest(detalleAprobado(10, 20))
	req.Fecha = "10/03/2026"
	_, err := svc.GuardarGuia(context.Background(), req)
	assert.Error(t, err)
}
