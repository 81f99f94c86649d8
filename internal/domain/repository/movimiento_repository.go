package repository

import (
	"github.com/shopspring/decimal"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
)

// LineaResuelta es la fila de lectura de un detalle ya unido a su artículo y,
// para líneas de cable, a su punta. La semántica de Cantidad (conteo o longitud)
// se decide aquí, en el join, nunca almacenada de forma redundante.
type LineaResuelta struct {
	ArticuloNombre string
	EsCable        bool
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	NombrePunta    string          // vacío si no es cable
	Longitud       decimal.Decimal // cero si no es cable
	UnidadMedida   string
}

// MovimientoRepository define el puerto del ledger append-only: cabeceras y
// detalles se insertan, jamás se actualizan ni borran.
type MovimientoRepository interface {
	CreateMovimiento(mov *entity.Movimiento) error
	CreateDetalle(det *entity.DetalleMovimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	// ListRecientes devuelve los últimos movimientos ordenados por fecha descendente.
	ListRecientes(limit int) ([]*entity.Movimiento, error)
	// ListLineasResueltas resuelve los detalles de un movimiento vía join.
	ListLineasResueltas(movimientoID string) ([]*LineaResuelta, error)
}
