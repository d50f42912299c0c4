package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Animal dispatch states. The original system never flips an animal to
// DESPACHADO when it is placed on a guia; the column stays at its default
// until an external process decides otherwise.
const (
	EstadoNoDespachado = "NO_DESPACHADO"
	EstadoDespachado   = "DESPACHADO"
)

// Animal is one physical animal intake record, linked to its origin
// establecimiento and grouped under a daily Ingreso via IngresoDetalle.
type Animal struct {
	ID                uint            `gorm:"primaryKey"`
	NumeroAnimal      int             `gorm:"column:numero_animal;index;not null"`
	Peso              decimal.Decimal `gorm:"column:peso;type:decimal(10,2);not null"`
	NumeroTiquete     int             `gorm:"column:numero_tiquete;index"`
	Sexo              string          `gorm:"column:sexo;type:varchar(10)"`
	GuiaMovilizacion  string          `gorm:"column:guia_movilizacion;index"`
	FechaGuiaICA      *time.Time      `gorm:"column:fecha_guia_ica"`
	FechaIngreso      time.Time       `gorm:"column:fecha_ingreso;not null"`
	Especie           string          `gorm:"column:especie;type:varchar(30);not null"`
	IDEstablecimiento uint            `gorm:"column:id_establecimiento;index;not null"`
	NumeroCorral      int             `gorm:"column:numero_corral"`
	Estado            string          `gorm:"column:estado;type:varchar(20);not null;default:'NO_DESPACHADO'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Establecimiento *Establecimiento `gorm:"foreignKey:IDEstablecimiento"`
}

func (Animal) TableName() string { return "animales" }
