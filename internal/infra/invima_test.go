package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodigoINVIMA(t *testing.T) {
	cases := []struct {
		name     string
		especies []string
		want     string
	}{
		{"bovinos", []string{"Bovino", "bovino"}, "567 B"},
		{"bovinos plural", []string{"Bovinos"}, "567 B"},
		{"porcinos", []string{"porcino", "PORCINO"}, "150 P"},
		{"porcinos plural", []string{"Porcinos", "porcinos"}, "150 P"},
		{"carga mixta", []string{"Bovino", "Porcino"}, "N/A"},
		{"especie desconocida", []string{"Ovino"}, "N/A"},
		{"sin detalles", nil, "N/A"},
		{"espacios", []string{" bovino ", "bovino"}, "567 B"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CodigoINVIMA(tc.especies))
		})
	}
}
