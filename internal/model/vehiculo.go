package model

import "time"

// Vehiculo is a transport vehicle (reference data).
type Vehiculo struct {
	ID                uint   `gorm:"primaryKey"`
	Placa             string `gorm:"column:placa;uniqueIndex;not null"`
	TipoVehiculo      string `gorm:"column:tipo_vehiculo"`
	TipoRefrigeracion string `gorm:"column:tipo_refrigeracion"`
}

func (Vehiculo) TableName() string { return "vehiculo" }

// Conductor is a driver (reference data).
type Conductor struct {
	ID           uint   `gorm:"primaryKey"`
	Nombre       string `gorm:"column:nombre;not null"`
	NumeroCedula string `gorm:"column:numero_cedula"`
	Telefono     string `gorm:"column:telefono"`
}

func (Conductor) TableName() string { return "conductores" }

// VehiculoConductor pairs a vehicle with a driver. The pair is unique;
// saving a guia with an existing pair only bumps UpdatedAt.
type VehiculoConductor struct {
	ID            uint      `gorm:"primaryKey"`
	IDVehiculo    uint      `gorm:"column:id_vehiculo;not null;uniqueIndex:idx_vehiculo_conductor"`
	IDConductores uint      `gorm:"column:id_conductores;not null;uniqueIndex:idx_vehiculo_conductor"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Vehiculo  *Vehiculo  `gorm:"foreignKey:IDVehiculo"`
	Conductor *Conductor `gorm:"foreignKey:IDConductores"`
}

func (VehiculoConductor) TableName() string { return "vehiculo_conductor" }
