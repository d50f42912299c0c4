package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decomiso records a product confiscated during inspection of one animal.
// A decomiso only ever exists under a manifest line with dictamen "AC".
type Decomiso struct {
	ID       uint            `gorm:"primaryKey"`
	IDAnimal uint            `gorm:"column:id_animal;index;not null"`
	Producto string          `gorm:"column:producto;not null"`
	Cantidad decimal.Decimal `gorm:"column:cantidad;type:decimal(10,2);not null"`
	Motivo   string          `gorm:"column:motivo;not null"`
	Fecha    time.Time       `gorm:"column:fecha;type:date;not null"`

	Animal *Animal `gorm:"foreignKey:IDAnimal"`
}

func (Decomiso) TableName() string { return "decomisos" }
