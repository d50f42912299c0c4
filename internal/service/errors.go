package service

import "errors"

// Boundary validation failures for the manifest transaction. All of them
// abort before or during the transaction: nothing is committed.
var (
	ErrGuiaSinDetalles    = errors.New("la guía de transporte no tiene detalles")
	ErrDecomisoSinAnimal  = errors.New("el decomiso no contiene un id_animal válido")
	ErrDecomisoDictamen   = errors.New("un detalle con dictamen 'A' no puede llevar decomisos")
	ErrIngresoSinAnimales = errors.New("el ingreso no tiene animales")
)

// PersistenceError wraps any data-access failure inside a write transaction.
// The transaction was rolled back; Err carries the original cause.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "error de persistencia en " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
