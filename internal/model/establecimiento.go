package model

// Departamento is a top-level administrative division (lookup data).
type Departamento struct {
	ID                 uint   `gorm:"primaryKey"`
	NombreDepartamento string `gorm:"column:nombre_departamento;not null"`
}

func (Departamento) TableName() string { return "departamento" }

// Municipio belongs to a Departamento (lookup data).
type Municipio struct {
	ID               uint   `gorm:"primaryKey"`
	NombreMunicipios string `gorm:"column:nombre_municipios;not null"`
	IDDepartamento   uint   `gorm:"column:id_departamento;not null"`

	Departamento *Departamento `gorm:"foreignKey:IDDepartamento"`
}

func (Municipio) TableName() string { return "municipio" }

// Establecimiento is an origin or destination premises. MarcaDiferencial is
// the brand mark printed on the manifest and used by the forms to pick a
// destination.
type Establecimiento struct {
	ID                    uint    `gorm:"primaryKey"`
	NombreEstablecimiento string  `gorm:"column:nombre_establecimiento;not null"`
	NombreDueno           string  `gorm:"column:nombre_dueno"`
	Direccion             *string `gorm:"column:direccion"`
	MarcaDiferencial      string  `gorm:"column:marca_diferencial;index;not null"`
	IDMunicipio           uint    `gorm:"column:id_municipio;not null"`

	Municipio *Municipio `gorm:"foreignKey:IDMunicipio"`
}

func (Establecimiento) TableName() string { return "establecimiento" }
