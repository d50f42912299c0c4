package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/model"
	"github.com/Juan-204/evc-backend/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PDFGenerator renders the read-back closure of a committed guia into the
// reports directory and returns the final file path. Ruta reports where the
// document for a given guia lives once rendered.
type PDFGenerator interface {
	GenerarGuiaPDF(doc *dto.GuiaDocumento) (string, error)
	Ruta(idGuia uint) string
}

// Mailer delivers a generated manifest PDF. Best-effort, like the PDF itself.
type Mailer interface {
	SendGuia(subject, body, pdfPath string) error
}

type GuiaService interface {
	GuardarGuia(ctx context.Context, req dto.GuardarGuiaRequest) (*dto.GuardarGuiaResponse, error)
	GenerarPDF(ctx context.Context, idGuia, idDestino uint) (string, error)
	DescargarPDF(ctx context.Context, idGuia, idDestino uint) (string, error)
	ListPorEstablecimiento(ctx context.Context, idEstablecimiento uint) ([]dto.GuiaListItem, error)
	AnimalesPorGuia(ctx context.Context, idGuia uint) ([]dto.AnimalGuiaResponse, error)
}

type guiaService struct {
	repo   repository.GuiaRepository
	pdf    PDFGenerator
	mailer Mailer // nil when no notification address is configured
}

func NewGuiaService(repo repository.GuiaRepository, pdf PDFGenerator, mailer Mailer) GuiaService {
	return &guiaService{repo: repo, pdf: pdf, mailer: mailer}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── GuardarGuia ───────────────────────────────────────────────────────────────
// The manifest write path:
//   1. Validate the payload shape (non-empty lines, decomisos only on AC
//      lines, every decomiso carrying its animal id)
//   2. BEGIN TX: upsert vehiculo_conductor, insert header, insert each
//      detalle and its decomisos
//   3. COMMIT — any failure rolls the whole manifest back
//   4. Generate the PDF (and mail it) best-effort: the committed guia is the
//      source of truth, the document can always be regenerated.

func (s *guiaService) GuardarGuia(ctx context.Context, req dto.GuardarGuiaRequest) (*dto.GuardarGuiaResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, ErrGuiaSinDetalles
	}
	for i, det := range req.Detalles {
		if det.Dictamen != model.DictamenConDecomiso && len(det.Decomisos) > 0 {
			return nil, fmt.Errorf("detalle %d: %w", i, ErrDecomisoDictamen)
		}
		for j, dec := range det.Decomisos {
			if dec.IDAnimal == 0 {
				return nil, fmt.Errorf("detalle %d, decomiso %d: %w", i, j, ErrDecomisoSinAnimal)
			}
		}
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %w", err)
	}

	var guia model.GuiaTransporte
	totalDecomisos := 0

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		idVC, err := s.repo.UpsertVehiculoConductor(ctx, tx, req.IDVehiculo, req.IDConductores)
		if err != nil {
			return &PersistenceError{Op: "vehiculo_conductor", Err: err}
		}

		guia = model.GuiaTransporte{
			Fecha:               fecha,
			IDPlanta:            req.IDPlanta,
			IDVehiculoConductor: idVC,
		}
		if err := s.repo.CreateGuia(ctx, tx, &guia); err != nil {
			return &PersistenceError{Op: "guia_transporte", Err: err}
		}

		for _, det := range req.Detalles {
			detalle := model.GuiaTransporteDetalle{
				IDGuiaTransporte:    guia.ID,
				IDIngresoDetalle:    det.IDIngresoDetalle,
				CarneOctavos:        det.CarneOctavos,
				ViserasBlancas:      det.ViserasBlancas,
				ViserasRojas:        det.ViserasRojas,
				Cabezas:             det.Cabezas,
				TemperaturaPromedio: det.TemperaturaPromedio,
				Dictamen:            det.Dictamen,
			}
			if err := s.repo.CreateDetalle(ctx, tx, &detalle); err != nil {
				return &PersistenceError{Op: "guia_transporte_detalle", Err: err}
			}

			for _, dec := range det.Decomisos {
				fechaDec, err := time.Parse("2006-01-02", dec.Fecha)
				if err != nil {
					return fmt.Errorf("fecha de decomiso inválida: %w", err)
				}
				decomiso := model.Decomiso{
					IDAnimal: dec.IDAnimal,
					Producto: dec.Producto,
					Cantidad: dec.Cantidad,
					Motivo:   dec.Motivo,
					Fecha:    fechaDec,
				}
				if err := s.repo.CreateDecomiso(ctx, tx, &decomiso); err != nil {
					return &PersistenceError{Op: "decomisos", Err: err}
				}
				totalDecomisos++
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := &dto.GuardarGuiaResponse{
		ID:        guia.ID,
		Fecha:     req.Fecha,
		Detalles:  len(req.Detalles),
		Decomisos: totalDecomisos,
	}

	// Best-effort document generation. The manifest is already durable;
	// a render failure is logged, never surfaced to the caller.
	ruta, err := s.GenerarPDF(ctx, guia.ID, req.IDDestino)
	if err != nil {
		log.Error().Err(err).Uint("guia_id", guia.ID).Msg("error al generar el PDF de la guía")
		return resp, nil
	}
	resp.PDFGenerado = true
	resp.PDFRuta = ruta
	return resp, nil
}

// GenerarPDF re-reads the committed guia's full closure and renders the
// document. Used after commit and by the regeneration endpoint.
func (s *guiaService) GenerarPDF(ctx context.Context, idGuia, idDestino uint) (string, error) {
	header, err := s.repo.FindGuiaPDF(ctx, idGuia)
	if err != nil {
		return "", fmt.Errorf("leer guía %d: %w", idGuia, err)
	}
	detalles, err := s.repo.FindDetallesPDF(ctx, idGuia)
	if err != nil {
		return "", fmt.Errorf("leer detalles de guía %d: %w", idGuia, err)
	}
	decomisos, err := s.repo.FindDecomisosPDF(ctx, idGuia, header.Fecha)
	if err != nil {
		return "", fmt.Errorf("leer decomisos de guía %d: %w", idGuia, err)
	}
	destino, err := s.repo.FindDestinoPDF(ctx, idDestino)
	if err != nil {
		return "", fmt.Errorf("leer destino %d: %w", idDestino, err)
	}

	doc := &dto.GuiaDocumento{
		ID:        idGuia,
		Guia:      header,
		Detalles:  detalles,
		Decomisos: decomisos,
		Destino:   destino,
	}
	ruta, err := s.pdf.GenerarGuiaPDF(doc)
	if err != nil {
		return "", err
	}

	if s.mailer != nil {
		subject := fmt.Sprintf("Guía de transporte %d", idGuia)
		body := fmt.Sprintf("Se adjunta la guía de transporte %d con fecha %s.", idGuia, header.Fecha)
		if err := s.mailer.SendGuia(subject, body, ruta); err != nil {
			log.Warn().Err(err).Uint("guia_id", idGuia).Msg("no se pudo enviar la guía por correo")
		}
	}
	return ruta, nil
}

// DescargarPDF returns the stored manifest file for a guia, regenerating it
// from the committed data when it is not on disk.
func (s *guiaService) DescargarPDF(ctx context.Context, idGuia, idDestino uint) (string, error) {
	ruta := s.pdf.Ruta(idGuia)
	if _, err := os.Stat(ruta); err == nil {
		return ruta, nil
	}
	return s.GenerarPDF(ctx, idGuia, idDestino)
}

func (s *guiaService) ListPorEstablecimiento(ctx context.Context, idEstablecimiento uint) ([]dto.GuiaListItem, error) {
	guias, err := s.repo.ListPorEstablecimiento(ctx, idEstablecimiento)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GuiaListItem, 0, len(guias))
	for _, g := range guias {
		items = append(items, dto.GuiaListItem{
			ID:    g.ID,
			Fecha: g.Fecha.Format("2006-01-02"),
		})
	}
	return items, nil
}

func (s *guiaService) AnimalesPorGuia(ctx context.Context, idGuia uint) ([]dto.AnimalGuiaResponse, error) {
	return s.repo.AnimalesPorGuia(ctx, idGuia)
}
