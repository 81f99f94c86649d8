package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado      = errors.New("recurso no encontrado")
	ErrDuplicado         = errors.New("recurso duplicado")
	ErrEntradaInvalida   = errors.New("entrada inválida")
	ErrEstadoInvalido    = errors.New("operación en estado inválido del builder")
	ErrMovimientoVacio   = errors.New("el movimiento no tiene líneas")
	ErrFueraDeRango      = errors.New("índice de línea fuera de rango")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrNoAutorizado      = errors.New("no autorizado")
)

// ValidationError agrupa todas las reglas violadas por una línea de movimiento.
// Nunca corta en la primera: el operador debe ver todos los problemas a la vez.
type ValidationError struct {
	Violaciones []string
}

// Error implementa error con las violaciones separadas por "; ".
func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Violaciones, "; ")
}

// NewValidationError construye el error si hay al menos una violación; nil si no.
func NewValidationError(violaciones []string) error {
	if len(violaciones) == 0 {
		return nil
	}
	return &ValidationError{Violaciones: violaciones}
}
