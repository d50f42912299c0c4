package repository

import (
	"context"

	"github.com/Juan-204/evc-backend/internal/model"

	"gorm.io/gorm"
)

// CatalogoRepository serves the reference lists the forms use to populate
// their selectors.
type CatalogoRepository interface {
	Plantas(ctx context.Context) ([]model.Planta, error)
	Vehiculos(ctx context.Context) ([]model.Vehiculo, error)
	Conductores(ctx context.Context) ([]model.Conductor, error)
	Establecimientos(ctx context.Context) ([]model.Establecimiento, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) Plantas(ctx context.Context) ([]model.Planta, error) {
	var plantas []model.Planta
	err := r.db.WithContext(ctx).Find(&plantas).Error
	return plantas, err
}

func (r *catalogoRepo) Vehiculos(ctx context.Context) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Order("placa").Find(&vehiculos).Error
	return vehiculos, err
}

func (r *catalogoRepo) Conductores(ctx context.Context) ([]model.Conductor, error) {
	var conductores []model.Conductor
	err := r.db.WithContext(ctx).Order("nombre").Find(&conductores).Error
	return conductores, err
}

func (r *catalogoRepo) Establecimientos(ctx context.Context) ([]model.Establecimiento, error) {
	var establecimientos []model.Establecimiento
	err := r.db.WithContext(ctx).Order("marca_diferencial").Find(&establecimientos).Error
	return establecimientos, err
}
