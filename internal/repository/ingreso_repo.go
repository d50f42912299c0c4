package repository

import (
	"context"
	"time"

	"github.com/Juan-204/evc-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IngresoRepository interface {
	FindByUserFecha(ctx context.Context, tx *gorm.DB, idUser uuid.UUID, fecha time.Time) (*model.Ingreso, error)
	Create(ctx context.Context, tx *gorm.DB, i *model.Ingreso) error
	CreateAnimal(ctx context.Context, tx *gorm.DB, a *model.Animal) error
	CreateDetalle(ctx context.Context, tx *gorm.DB, d *model.IngresoDetalle) error
	FindByFecha(ctx context.Context, fecha time.Time) (*model.Ingreso, error)
	DB() *gorm.DB
}

type ingresoRepo struct{ db *gorm.DB }

func NewIngresoRepository(db *gorm.DB) IngresoRepository { return &ingresoRepo{db: db} }

func (r *ingresoRepo) DB() *gorm.DB { return r.db }

func (r *ingresoRepo) FindByUserFecha(ctx context.Context, tx *gorm.DB, idUser uuid.UUID, fecha time.Time) (*model.Ingreso, error) {
	var i model.Ingreso
	err := tx.WithContext(ctx).
		Where("id_user = ? AND fecha = ?", idUser, fecha).
		First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ingresoRepo) Create(ctx context.Context, tx *gorm.DB, i *model.Ingreso) error {
	return tx.WithContext(ctx).Create(i).Error
}

func (r *ingresoRepo) CreateAnimal(ctx context.Context, tx *gorm.DB, a *model.Animal) error {
	return tx.WithContext(ctx).Create(a).Error
}

func (r *ingresoRepo) CreateDetalle(ctx context.Context, tx *gorm.DB, d *model.IngresoDetalle) error {
	return tx.WithContext(ctx).Create(d).Error
}

// FindByFecha loads the ingreso registered on a date with its full detalle
// closure (animals and their establecimientos).
func (r *ingresoRepo) FindByFecha(ctx context.Context, fecha time.Time) (*model.Ingreso, error) {
	var i model.Ingreso
	err := r.db.WithContext(ctx).
		Preload("Detalles.Animal.Establecimiento").
		Where("fecha = ?", fecha).
		First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}
