package model

// Planta is the processing plant issuing the manifests. Normally a single
// row, seeded at install time.
type Planta struct {
	ID        uint    `gorm:"primaryKey"`
	Nombre    string  `gorm:"column:nombre;not null"`
	Telefono  *string `gorm:"column:telefono"`
	Direccion *string `gorm:"column:direccion"`
}

func (Planta) TableName() string { return "planta" }
