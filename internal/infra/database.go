package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Juan-204/evc-backend/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema. Parent tables go first so AutoMigrate can
// create the foreign keys in one pass.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Departamento{},
		&model.Municipio{},
		&model.Establecimiento{},
		&model.Planta{},
		&model.Usuario{},
		&model.Animal{},
		&model.Ingreso{},
		&model.IngresoDetalle{},
		&model.Vehiculo{},
		&model.Conductor{},
		&model.VehiculoConductor{},
		&model.GuiaTransporte{},
		&model.GuiaTransporteDetalle{},
		&model.Decomiso{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return nil
}
