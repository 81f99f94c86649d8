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

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

const articuloColumns = `id, nombre, tipo, categoria, unidad_medida, precio_unitario, cantidad_en_stock, stock_minimo, es_cable, created_at, updated_at`

// ArticuloRepo implementación del puerto ArticuloRepository sobre PostgreSQL
// (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

// Create persiste un artículo nuevo. El nombre es único en el catálogo.
func (r *ArticuloRepo) Create(articulo *entity.Articulo) error {
	query := `
		INSERT INTO articulos (id, nombre, tipo, categoria, unidad_medida, precio_unitario, cantidad_en_stock, stock_minimo, es_cable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		articulo.ID, articulo.Nombre, articulo.Tipo, articulo.Categoria, articulo.UnidadMedida,
		articulo.PrecioUnitario, articulo.CantidadEnStock, articulo.StockMinimo, articulo.EsCable,
		articulo.CreatedAt, articulo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get articulo")
}

// GetByNombre obtiene un artículo por nombre exacto.
func (r *ArticuloRepo) GetByNombre(nombre string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE nombre = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombre), "get articulo by nombre")
}

// GetByNombreForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE)
// para mutar stock dentro de una transacción.
func (r *ArticuloRepo) GetByNombreForUpdate(nombre string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE nombre = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombre), "get articulo for update")
}

// UpdateStock actualiza solo la cantidad en stock (usada por el aplicador de movimientos).
func (r *ArticuloRepo) UpdateStock(id string, cantidad decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE articulos SET cantidad_en_stock = $2, updated_at = now() WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("update stock articulo: %w", err)
	}
	return nil
}

// List lista el catálogo completo ordenado por nombre.
func (r *ArticuloRepo) List() ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos ORDER BY nombre`
	return r.scanMany(query, nil, "list articulos")
}

// ListNombres devuelve solo los nombres; soloCables filtra por es_cable.
func (r *ArticuloRepo) ListNombres(soloCables bool) ([]string, error) {
	query := `SELECT nombre FROM articulos`
	if soloCables {
		query += ` WHERE es_cable = true`
	}
	query += ` ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list nombres: %w", err)
	}
	defer rows.Close()
	var nombres []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan nombre: %w", err)
		}
		nombres = append(nombres, n)
	}
	return nombres, rows.Err()
}

// ListStockBajo lista artículos con stock por debajo de su umbral mínimo.
func (r *ArticuloRepo) ListStockBajo() ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE cantidad_en_stock < stock_minimo ORDER BY nombre`
	return r.scanMany(query, nil, "list stock bajo")
}

func (r *ArticuloRepo) scanOne(row pgx.Row, op string) (*entity.Articulo, error) {
	var a entity.Articulo
	err := row.Scan(&a.ID, &a.Nombre, &a.Tipo, &a.Categoria, &a.UnidadMedida,
		&a.PrecioUnitario, &a.CantidadEnStock, &a.StockMinimo, &a.EsCable,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

func (r *ArticuloRepo) scanMany(query string, args []any, op string) ([]*entity.Articulo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Tipo, &a.Categoria, &a.UnidadMedida,
			&a.PrecioUnitario, &a.CantidadEnStock, &a.StockMinimo, &a.EsCable,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
