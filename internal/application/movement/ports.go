package movement

import (
	"context"

	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del lote: o todas las
// filas del movimiento quedan visibles, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		artRepo repository.ArticuloRepository,
		puntaRepo repository.PuntaRepository,
		proyRepo repository.ProyectoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
