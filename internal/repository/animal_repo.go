package repository

import (
	"context"
	"time"

	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/model"

	"gorm.io/gorm"
)

type AnimalRepository interface {
	Buscar(ctx context.Context, termino string) ([]model.Animal, error)
	Disponibles(ctx context.Context, marcaDiferencial string, fecha time.Time) ([]dto.AnimalDisponibleResponse, error)
}

type animalRepo struct{ db *gorm.DB }

func NewAnimalRepository(db *gorm.DB) AnimalRepository { return &animalRepo{db: db} }

// Buscar matches animals by partial id, numero_animal, numero_tiquete or
// guia_movilizacion, the same four columns the desktop search form queried.
func (r *animalRepo) Buscar(ctx context.Context, termino string) ([]model.Animal, error) {
	var animales []model.Animal
	patron := "%" + termino + "%"
	err := r.db.WithContext(ctx).
		Where("CAST(id AS TEXT) LIKE ? OR CAST(numero_animal AS TEXT) LIKE ? OR CAST(numero_tiquete AS TEXT) LIKE ? OR guia_movilizacion LIKE ?",
			patron, patron, patron, patron).
		Find(&animales).Error
	return animales, err
}

// Disponibles lists the animals of an establecimiento's ingreso on a date
// that are still NO_DESPACHADO, i.e. eligible for a manifest line.
func (r *animalRepo) Disponibles(ctx context.Context, marcaDiferencial string, fecha time.Time) ([]dto.AnimalDisponibleResponse, error) {
	var rows []dto.AnimalDisponibleResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.numero_animal, idet.id AS id_ingreso_detalle, a.id AS id_animal
		FROM ingresos i
		INNER JOIN ingresos_detalles idet ON i.id = idet.id_ingresos
		INNER JOIN animales a ON idet.id_animales = a.id
		WHERE a.id_establecimiento = (
		    SELECT id FROM establecimiento WHERE marca_diferencial = ?
		)
		AND i.fecha = ?
		AND a.estado = ?`, marcaDiferencial, fecha, model.EstadoNoDespachado).Scan(&rows).Error
	return rows, err
}
