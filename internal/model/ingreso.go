package model

import (
	"time"

	"github.com/google/uuid"
)

// Ingreso groups the animals a user registered on one calendar date.
// The (id_user, fecha) pair is unique: re-registering on the same date
// appends detalles to the existing row instead of creating a second one.
type Ingreso struct {
	ID        uint      `gorm:"primaryKey"`
	IDUser    uuid.UUID `gorm:"column:id_user;type:uuid;not null;uniqueIndex:idx_ingreso_user_fecha"`
	IDPlanta  uint      `gorm:"column:id_planta;not null"`
	Fecha     time.Time `gorm:"column:fecha;type:date;not null;uniqueIndex:idx_ingreso_user_fecha"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Detalles []IngresoDetalle `gorm:"foreignKey:IDIngresos"`
}

func (Ingreso) TableName() string { return "ingresos" }

// IngresoDetalle links one Animal to its Ingreso. Manifest lines reference
// animals through this row, never directly.
type IngresoDetalle struct {
	ID         uint `gorm:"primaryKey"`
	IDIngresos uint `gorm:"column:id_ingresos;index;not null"`
	IDAnimales uint `gorm:"column:id_animales;index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Animal *Animal `gorm:"foreignKey:IDAnimales"`
}

func (IngresoDetalle) TableName() string { return "ingresos_detalles" }
