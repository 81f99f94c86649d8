package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/usse-dev/almacen-api/internal/domain"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

var _ repository.PuntaRepository = (*PuntaRepo)(nil)

// PuntaRepo implementación de PuntaRepository sobre PostgreSQL (usable con pool o tx).
type PuntaRepo struct {
	q Querier
}

// NewPuntaRepository construye el adaptador de puntas/carretes. Pasar pool o tx (Querier).
func NewPuntaRepository(q Querier) *PuntaRepo {
	return &PuntaRepo{q: q}
}

// Create persiste una punta nueva bajo su artículo.
func (r *PuntaRepo) Create(punta *entity.Punta) error {
	query := `
		INSERT INTO stock_puntas (id, id_articulo, nombre_punta, longitud, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		punta.ID, punta.ArticuloID, punta.Nombre, punta.Longitud, punta.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert punta: %w", err)
	}
	return nil
}

// ListByArticulo lista las puntas en stock de un artículo, más largas primero.
func (r *PuntaRepo) ListByArticulo(articuloID string) ([]*entity.Punta, error) {
	query := `
		SELECT id, id_articulo, nombre_punta, longitud, created_at
		FROM stock_puntas WHERE id_articulo = $1 ORDER BY longitud DESC, nombre_punta`
	rows, err := r.q.Query(context.Background(), query, articuloID)
	if err != nil {
		return nil, fmt.Errorf("list puntas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Punta
	for rows.Next() {
		var p entity.Punta
		if err := rows.Scan(&p.ID, &p.ArticuloID, &p.Nombre, &p.Longitud, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan punta: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByArticuloYNombreForUpdate localiza la punta por etiqueta bajo el artículo
// y bloquea la fila (SELECT FOR UPDATE) para su consumo en salidas.
func (r *PuntaRepo) GetByArticuloYNombreForUpdate(articuloID, nombre string) (*entity.Punta, error) {
	query := `
		SELECT id, id_articulo, nombre_punta, longitud, created_at
		FROM stock_puntas WHERE id_articulo = $1 AND nombre_punta = $2
		FOR UPDATE`
	var p entity.Punta
	err := r.q.QueryRow(context.Background(), query, articuloID, nombre).Scan(
		&p.ID, &p.ArticuloID, &p.Nombre, &p.Longitud, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get punta for update: %w", err)
	}
	return &p, nil
}

// UpdateLongitud reduce la longitud restante de una punta tras un consumo parcial.
func (r *PuntaRepo) UpdateLongitud(id string, longitud decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_puntas SET longitud = $2 WHERE id = $1`,
		id, longitud,
	)
	if err != nil {
		return fmt.Errorf("update longitud punta: %w", err)
	}
	return nil
}

// Delete elimina una punta consumida por completo. Los detalles del ledger que
// la referencian conservan la FK con ON DELETE SET NULL a nivel de esquema.
func (r *PuntaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_puntas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete punta: %w", err)
	}
	return nil
}
