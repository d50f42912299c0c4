package dto

import "github.com/shopspring/decimal"

// AnimalBusquedaResponse is one partial-match hit of GET /v1/animales/buscar.
type AnimalBusquedaResponse struct {
	ID               uint            `json:"id"`
	NumeroAnimal     int             `json:"numero_animal"`
	NumeroTiquete    int             `json:"numero_tiquete"`
	GuiaMovilizacion string          `json:"guia_movilizacion"`
	Especie          string          `json:"especie"`
	Peso             decimal.Decimal `json:"peso"`
	FechaGuiaICA     string          `json:"fecha_guia_ica,omitempty"`
	FechaIngreso     string          `json:"fecha_ingreso"`
}

// AnimalDisponibleResponse is one dispatchable animal for the manifest form:
// animals of an establecimiento's ingreso on a date, still NO_DESPACHADO.
type AnimalDisponibleResponse struct {
	NumeroAnimal     int  `json:"numero_animal"`
	IDIngresoDetalle uint `json:"id_ingreso_detalle"`
	IDAnimal         uint `json:"id_animal"`
}
