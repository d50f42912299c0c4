package dto

import "github.com/shopspring/decimal"

// Aggregate rows consumed by the charting front-end. Shapes follow the
// dictionaries the original queries produced.

type EspecieCantidad struct {
	Especie  string `json:"especie"`
	Cantidad int64  `json:"cantidad"`
}

type EspecieDecomisos struct {
	Especie           string `json:"especie"`
	CantidadDecomisos int64  `json:"cantidad_decomisos"`
}

type EspecieSexo struct {
	Especie string `json:"especie"`
	Macho   int64  `json:"Macho"`
	Hembra  int64  `json:"Hembra"`
}

type EspeciePesoPromedio struct {
	Especie      string          `json:"especie"`
	PesoPromedio decimal.Decimal `json:"peso_promedio"`
}

type FechaCantidad struct {
	Fecha    string `json:"fecha"`
	Cantidad int64  `json:"cantidad"`
}
