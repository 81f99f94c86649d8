package repository

import (
	"github.com/shopspring/decimal"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
)

// PuntaRepository define el puerto de persistencia para las puntas/carretes de cable.
type PuntaRepository interface {
	Create(punta *entity.Punta) error
	ListByArticulo(articuloID string) ([]*entity.Punta, error)
	// GetByArticuloYNombreForUpdate localiza una punta por etiqueta bajo un artículo
	// y bloquea la fila (SELECT FOR UPDATE) para su consumo en salidas.
	GetByArticuloYNombreForUpdate(articuloID, nombre string) (*entity.Punta, error)
	UpdateLongitud(id string, longitud decimal.Decimal) error
	// Delete elimina una punta consumida por completo en una salida.
	Delete(id string) error
}
