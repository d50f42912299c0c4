package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inspection verdicts per manifest line.
// DictamenAC lines may carry decomisos; DictamenA lines never do.
const (
	DictamenAprobado    = "A"
	DictamenConDecomiso = "AC"
)

// GuiaTransporte is the header of one transport manifest: one vehicle trip
// leaving the plant on a given date.
type GuiaTransporte struct {
	ID                  uint      `gorm:"primaryKey"`
	Fecha               time.Time `gorm:"column:fecha;type:date;not null"`
	IDPlanta            uint      `gorm:"column:id_planta;not null"`
	IDVehiculoConductor uint      `gorm:"column:id_vehiculo_conductor;not null"`

	Planta            *Planta                 `gorm:"foreignKey:IDPlanta"`
	VehiculoConductor *VehiculoConductor      `gorm:"foreignKey:IDVehiculoConductor"`
	Detalles          []GuiaTransporteDetalle `gorm:"foreignKey:IDGuiaTransporte"`
}

func (GuiaTransporte) TableName() string { return "guia_transporte" }

// GuiaTransporteDetalle is one manifest line: the products obtained from one
// animal, referenced through its ingreso detalle.
type GuiaTransporteDetalle struct {
	ID                  uint            `gorm:"primaryKey"`
	IDGuiaTransporte    uint            `gorm:"column:id_guia_transporte;index;not null"`
	IDIngresoDetalle    uint            `gorm:"column:id_ingreso_detalle;not null"`
	CarneOctavos        int             `gorm:"column:carne_octavos;not null"`
	ViserasBlancas      int             `gorm:"column:viseras_blancas;not null"`
	ViserasRojas        int             `gorm:"column:viseras_rojas;not null"`
	Cabezas             int             `gorm:"column:cabezas;not null"`
	TemperaturaPromedio decimal.Decimal `gorm:"column:temperatura_promedio;type:decimal(5,2)"`
	Dictamen            string          `gorm:"column:dictamen;type:varchar(5);not null"`

	IngresoDetalle *IngresoDetalle `gorm:"foreignKey:IDIngresoDetalle"`
}

func (GuiaTransporteDetalle) TableName() string { return "guia_transporte_detalle" }
