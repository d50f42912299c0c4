package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────
// JSON keys mirror the payload the desktop forms always sent, so the Qt
// front-end can talk to this backend without changes.

// DecomisoRequest is one confiscated product under an "AC" manifest line.
type DecomisoRequest struct {
	IDAnimal uint            `json:"id_animal" validate:"required"`
	Producto string          `json:"producto"  validate:"required"`
	Cantidad decimal.Decimal `json:"cantidad"  validate:"required"`
	Motivo   string          `json:"motivo"    validate:"required"`
	Fecha    string          `json:"fecha"     validate:"required,datetime=2006-01-02"`
}

// DetalleGuiaRequest is one manifest line: the products obtained from one
// animal already registered under an ingreso.
type DetalleGuiaRequest struct {
	IDIngresoDetalle    uint            `json:"id_ingreso_detalle"   validate:"required"`
	IDAnimal            uint            `json:"id_animal"            validate:"required"`
	CarneOctavos        int             `json:"carne_octavos"        validate:"required,gt=0"`
	ViserasBlancas      int             `json:"viseras_blancas"      validate:"min=0"`
	ViserasRojas        int             `json:"viseras_rojas"        validate:"min=0"`
	Cabezas             int             `json:"cabezas"              validate:"min=0"`
	TemperaturaPromedio decimal.Decimal `json:"temperatura_promedio" validate:"required"`
	Dictamen            string          `json:"dictamen"             validate:"required,oneof=A AC"`
	Decomisos           []DecomisoRequest `json:"decomisos"          validate:"omitempty,dive"`
}

// GuardarGuiaRequest is the full manifest payload collected by the dispatch
// form: header data plus the ordered list of lines.
type GuardarGuiaRequest struct {
	Fecha         string               `json:"fecha"           validate:"required,datetime=2006-01-02"`
	IDPlanta      uint                 `json:"id_planta"       validate:"required"`
	IDDestino     uint                 `json:"id_destino"      validate:"required"`
	IDVehiculo    uint                 `json:"id_vehiculo"     validate:"required"`
	IDConductores uint                 `json:"id_conductores"  validate:"required"`
	Detalles      []DetalleGuiaRequest `json:"guia_transporte" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type GuardarGuiaResponse struct {
	ID           uint   `json:"id"`
	Fecha        string `json:"fecha"`
	Detalles     int    `json:"detalles"`
	Decomisos    int    `json:"decomisos"`
	PDFGenerado  bool   `json:"pdf_generado"`
	PDFRuta      string `json:"pdf_ruta,omitempty"`
}

// GuiaListItem is one row of GET /v1/guias?establecimiento_id=.
type GuiaListItem struct {
	ID    uint   `json:"id"`
	Fecha string `json:"fecha"`
}

// AnimalGuiaResponse is one animal associated to a guia (detail drill-down).
type AnimalGuiaResponse struct {
	ID                    uint            `json:"id"`
	NumeroAnimal          int             `json:"numero_animal"`
	NumeroTiquete         int             `json:"numero_tiquete"`
	GuiaMovilizacion      string          `json:"guia_movilizacion"`
	Especie               string          `json:"especie"`
	Peso                  decimal.Decimal `json:"peso"`
	FechaIngreso          string          `json:"fecha_ingreso"`
	NombreEstablecimiento string          `json:"nombre_establecimiento"`
}
