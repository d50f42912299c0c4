package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/model"
	"github.com/Juan-204/evc-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IngresoService interface {
	RegistrarIngreso(ctx context.Context, idUser uuid.UUID, req dto.RegistrarIngresoRequest) (*dto.RegistrarIngresoResponse, error)
	ObtenerPorFecha(ctx context.Context, fecha string) (*dto.IngresoResponse, error)
}

type ingresoService struct {
	repo repository.IngresoRepository
}

func NewIngresoService(repo repository.IngresoRepository) IngresoService {
	return &ingresoService{repo: repo}
}

// ── RegistrarIngreso ──────────────────────────────────────────────────────────
// At most one ingreso exists per (user, fecha): repeat registrations on the
// same date append animals to the existing row. The batch is all-or-nothing;
// one bad animal rolls back the whole registration.

func (s *ingresoService) RegistrarIngreso(ctx context.Context, idUser uuid.UUID, req dto.RegistrarIngresoRequest) (*dto.RegistrarIngresoResponse, error) {
	if len(req.Animales) == 0 {
		return nil, ErrIngresoSinAnimales
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %w", err)
	}

	var resp dto.RegistrarIngresoResponse
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		ingreso, err := s.repo.FindByUserFecha(ctx, tx, idUser, fecha)
		switch {
		case err == nil:
			resp.Existente = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			ingreso = &model.Ingreso{IDUser: idUser, IDPlanta: req.IDPlanta, Fecha: fecha}
			if err := s.repo.Create(ctx, tx, ingreso); err != nil {
				return &PersistenceError{Op: "ingresos", Err: err}
			}
		default:
			return &PersistenceError{Op: "ingresos", Err: err}
		}

		for _, a := range req.Animales {
			fechaIngreso, err := time.Parse("2006-01-02", a.FechaIngreso)
			if err != nil {
				return fmt.Errorf("fecha_ingreso inválida para animal %d: %w", a.NumeroAnimal, err)
			}
			animal := model.Animal{
				NumeroAnimal:      a.NumeroAnimal,
				Peso:              a.Peso,
				NumeroTiquete:     a.NumeroTiquete,
				Sexo:              a.Sexo,
				GuiaMovilizacion:  a.GuiaMovilizacion,
				FechaIngreso:      fechaIngreso,
				Especie:           a.Especie,
				IDEstablecimiento: a.Destino,
				NumeroCorral:      a.NumeroCorral,
				Estado:            model.EstadoNoDespachado,
			}
			if a.FechaICA != "" {
				fechaICA, err := time.Parse("2006-01-02", a.FechaICA)
				if err != nil {
					return fmt.Errorf("fecha_ica inválida para animal %d: %w", a.NumeroAnimal, err)
				}
				animal.FechaGuiaICA = &fechaICA
			}
			if err := s.repo.CreateAnimal(ctx, tx, &animal); err != nil {
				return &PersistenceError{Op: "animales", Err: err}
			}

			detalle := model.IngresoDetalle{IDIngresos: ingreso.ID, IDAnimales: animal.ID}
			if err := s.repo.CreateDetalle(ctx, tx, &detalle); err != nil {
				return &PersistenceError{Op: "ingresos_detalles", Err: err}
			}
		}

		resp.IDIngreso = ingreso.ID
		resp.Animales = len(req.Animales)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &resp, nil
}

func (s *ingresoService) ObtenerPorFecha(ctx context.Context, fechaStr string) (*dto.IngresoResponse, error) {
	fecha, err := time.Parse("2006-01-02", fechaStr)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %w", err)
	}
	ingreso, err := s.repo.FindByFecha(ctx, fecha)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "ingresos", Err: err}
	}

	resp := &dto.IngresoResponse{
		IDIngreso: ingreso.ID,
		IDUser:    ingreso.IDUser.String(),
		IDPlanta:  ingreso.IDPlanta,
		Fecha:     ingreso.Fecha.Format("2006-01-02"),
		Detalles:  make([]dto.DetalleIngresoResponse, 0, len(ingreso.Detalles)),
	}
	for _, det := range ingreso.Detalles {
		if det.Animal == nil {
			continue
		}
		a := det.Animal
		row := dto.DetalleIngresoResponse{
			IDIngresoDetalle: det.ID,
			NumeroAnimal:     a.NumeroAnimal,
			Peso:             a.Peso,
			NumeroTiquete:    a.NumeroTiquete,
			Sexo:             a.Sexo,
			GuiaMovilizacion: a.GuiaMovilizacion,
			FechaIngreso:     a.FechaIngreso.Format("2006-01-02"),
			Especie:          a.Especie,
			NumeroCorral:     a.NumeroCorral,
		}
		if a.FechaGuiaICA != nil {
			row.FechaGuiaICA = a.FechaGuiaICA.Format("2006-01-02")
		}
		if a.Establecimiento != nil {
			row.NombreEstablecimiento = a.Establecimiento.NombreEstablecimiento
		}
		resp.Detalles = append(resp.Detalles, row)
	}
	return resp, nil
}
