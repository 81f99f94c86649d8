package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/usse-dev/almacen-api/internal/application/movement"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements movement.TxRunner.
var _ movement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit
// o Rollback. Un fallo a media aplicación (violación de constraint en la línea 3
// de 5) revierte también las líneas 1-2: o todo el lote, o nada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	artRepo repository.ArticuloRepository,
	puntaRepo repository.PuntaRepository,
	proyRepo repository.ProyectoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	artRepo := NewArticuloRepository(tx)
	puntaRepo := NewPuntaRepository(tx)
	proyRepo := NewProyectoRepository(tx)
	movRepo := NewMovimientoRepository(tx)

	if err := fn(artRepo, puntaRepo, proyRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
