package dto

// Catalog rows backing the manifest and intake form selectors.

type PlantaResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

type VehiculoResponse struct {
	ID                uint   `json:"id"`
	Placa             string `json:"placa"`
	TipoVehiculo      string `json:"tipo_vehiculo"`
	TipoRefrigeracion string `json:"tipo_refrigeracion"`
}

type ConductorResponse struct {
	ID           uint   `json:"id"`
	Nombre       string `json:"nombre"`
	NumeroCedula string `json:"numero_cedula"`
}

// EstablecimientoResponse doubles as the "destinos" list: the original
// destination selector showed the marca diferencial of each establecimiento.
type EstablecimientoResponse struct {
	ID                    uint   `json:"id"`
	NombreEstablecimiento string `json:"nombre_establecimiento"`
	MarcaDiferencial      string `json:"marca_diferencial"`
}
