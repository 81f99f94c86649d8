package repository

import (
	"github.com/shopspring/decimal"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
)

// ArticuloRepository define el puerto de persistencia para Articulo (DIP).
// No expone Delete: los artículos nunca se borran.
type ArticuloRepository interface {
	Create(articulo *entity.Articulo) error
	GetByID(id string) (*entity.Articulo, error)
	GetByNombre(nombre string) (*entity.Articulo, error)
	// GetByNombreForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usado dentro de transacciones al aplicar movimientos.
	GetByNombreForUpdate(nombre string) (*entity.Articulo, error)
	UpdateStock(id string, cantidad decimal.Decimal) error
	List() ([]*entity.Articulo, error)
	// ListNombres devuelve solo los nombres; soloCables filtra por es_cable.
	ListNombres(soloCables bool) ([]string, error)
	ListStockBajo() ([]*entity.Articulo, error)
}
