package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// Movimiento es la cabecera del ledger: una transacción de entrada o salida con
// una o más líneas. Inmutable una vez creada (append-only).
type Movimiento struct {
	ID            string
	ProyectoID    *string // opcional: atribución de costo
	Tipo          string  // entrada | salida
	FechaHora     time.Time
	Observaciones string
}

// DetalleMovimiento es la contribución de un artículo a un movimiento.
// Cantidad es un conteo de unidades o una longitud según el EsCable del artículo
// referenciado: la semántica se resuelve con un join, nunca se almacena duplicada.
type DetalleMovimiento struct {
	ID             string
	MovimientoID   string
	ArticuloID     string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal // precio por unidad al momento del movimiento
	PuntaID        *string         // solo líneas de cable
}

// TipoMovimientoValido reporta si el tipo pertenece al conjunto cerrado.
func TipoMovimientoValido(tipo string) bool {
	return tipo == MovimientoEntrada || tipo == MovimientoSalida
}
