package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AnimalIngresoRequest is one animal entering the plant. "destino" keeps the
// original form field name: it carries the id of the origin establecimiento.
type AnimalIngresoRequest struct {
	NumeroAnimal     int             `json:"numero_animal"     validate:"required,gt=0"`
	Peso             decimal.Decimal `json:"peso"              validate:"required"`
	NumeroTiquete    int             `json:"numero_tiquete"    validate:"required,gt=0"`
	Sexo             string          `json:"sexo"              validate:"required,oneof=Macho Hembra"`
	GuiaMovilizacion string          `json:"guia_movilizacion" validate:"required"`
	FechaICA         string          `json:"fecha_ica"         validate:"omitempty,datetime=2006-01-02"`
	FechaIngreso     string          `json:"fecha_ingreso"     validate:"required,datetime=2006-01-02"`
	Especie          string          `json:"especie"           validate:"required"`
	Destino          uint            `json:"destino"           validate:"required"`
	NumeroCorral     int             `json:"numero_corral"     validate:"min=0"`
}

// RegistrarIngresoRequest registers a batch of animals for one date. At most
// one ingreso row exists per (user, fecha); repeats append to it.
type RegistrarIngresoRequest struct {
	Fecha    string                 `json:"fecha"     validate:"required,datetime=2006-01-02"`
	IDPlanta uint                   `json:"id_planta" validate:"required"`
	Animales []AnimalIngresoRequest `json:"animales"  validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegistrarIngresoResponse struct {
	IDIngreso uint `json:"id_ingreso"`
	Animales  int  `json:"animales"`
	// Existente is true when the (user, fecha) ingreso already existed and
	// this batch was appended to it.
	Existente bool `json:"existente"`
}

// DetalleIngresoResponse is one animal row inside IngresoResponse.
type DetalleIngresoResponse struct {
	IDIngresoDetalle      uint            `json:"id_ingreso_detalle"`
	NumeroAnimal          int             `json:"numero_animal"`
	Peso                  decimal.Decimal `json:"peso"`
	NumeroTiquete         int             `json:"numero_tiquete"`
	Sexo                  string          `json:"sexo"`
	GuiaMovilizacion      string          `json:"guia_movilizacion"`
	FechaGuiaICA          string          `json:"fecha_guia_ica,omitempty"`
	FechaIngreso          string          `json:"fecha_ingreso"`
	Especie               string          `json:"especie"`
	NumeroCorral          int             `json:"numero_corral"`
	NombreEstablecimiento string          `json:"nombre_establecimiento"`
}

// IngresoResponse is the full closure of one ingreso for GET /v1/ingresos.
type IngresoResponse struct {
	IDIngreso uint                     `json:"id_ingreso"`
	IDUser    string                   `json:"id_user"`
	IDPlanta  uint                     `json:"id_planta"`
	Fecha     string                   `json:"fecha"`
	Detalles  []DetalleIngresoResponse `json:"detalles"`
}
