package dto

import "github.com/shopspring/decimal"

// Read-back closure of a committed guia, scanned straight from the joined
// queries and handed to the PDF assembler. Nullable columns stay pointers so
// the renderer can substitute its "N/A" placeholder instead of failing.

type GuiaPDFHeader struct {
	Fecha             string  `json:"fecha"`
	NombrePlanta      *string `json:"nombre_planta"`
	TelefonoPlanta    *string `json:"telefono_planta"`
	DireccionPlanta   *string `json:"direccion_planta"`
	TipoVehiculo      *string `json:"tipo_vehiculo"`
	TipoRefrigeracion *string `json:"tipo_refrigeracion"`
	Placa             *string `json:"placa"`
	NombreConductor   *string `json:"nombre_conductor"`
	NumeroCedula      *string `json:"numero_cedula"`
}

type DetallePDF struct {
	NumeroAnimal        *int             `json:"numero_animal"`
	Especie             string           `json:"especie"`
	GuiaMovilizacion    *string          `json:"guia_movilizacion"`
	CarneOctavos        *int             `json:"carne_octavos"`
	ViserasBlancas      *int             `json:"viseras_blancas"`
	ViserasRojas        *int             `json:"viseras_rojas"`
	Cabezas             *int             `json:"cabezas"`
	TemperaturaPromedio *decimal.Decimal `json:"temperatura_promedio"`
	Dictamen            *string          `json:"dictamen"`
}

type DecomisoPDF struct {
	Producto     *string          `json:"producto"`
	Cantidad     *decimal.Decimal `json:"cantidad"`
	Motivo       *string          `json:"motivo"`
	NumeroAnimal *int             `json:"numero_animal"`
}

type DestinoPDF struct {
	NombreDueno           *string `json:"nombre_dueno"`
	NombreEstablecimiento *string `json:"nombre_establecimiento"`
	Direccion             *string `json:"direccion"`
	MarcaDiferencial      *string `json:"marca_diferencial"`
	NombreMunicipios      *string `json:"nombre_municipios"`
	NombreDepartamento    *string `json:"nombre_departamento"`
}

// GuiaDocumento bundles everything the assembler needs for one manifest.
type GuiaDocumento struct {
	ID        uint
	Guia      *GuiaPDFHeader
	Detalles  []DetallePDF
	Decomisos []DecomisoPDF
	Destino   *DestinoPDF
}
