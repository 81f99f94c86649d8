package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: las cabeceras y detalles son append-only.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// CreateMovimiento persiste la cabecera de un movimiento.
func (r *MovimientoRepo) CreateMovimiento(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, id_proyecto, tipo, fecha_hora, observaciones)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProyectoID, mov.Tipo, mov.FechaHora, mov.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de movimiento.
func (r *MovimientoRepo) CreateDetalle(det *entity.DetalleMovimiento) error {
	query := `
		INSERT INTO detalle_movimiento (id, id_movimiento, id_articulo, cantidad, precio_unitario, id_punta)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		det.ID, det.MovimientoID, det.ArticuloID, det.Cantidad, det.PrecioUnitario, det.PuntaID,
	)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// GetByID obtiene una cabecera por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT id, id_proyecto, tipo, fecha_hora, observaciones FROM movimientos WHERE id = $1`
	var m entity.Movimiento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProyectoID, &m.Tipo, &m.FechaHora, &m.Observaciones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ListRecientes devuelve los últimos movimientos por fecha descendente.
func (r *MovimientoRepo) ListRecientes(limit int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, id_proyecto, tipo, fecha_hora, observaciones
		FROM movimientos ORDER BY fecha_hora DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.ProyectoID, &m.Tipo, &m.FechaHora, &m.Observaciones); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListLineasResueltas resuelve los detalles de un movimiento con un join a
// articulos y stock_puntas: la semántica de cantidad (conteo o longitud) se
// decide aquí, nunca se almacena redundante. La etiqueta de punta se toma de la
// fila viva si existe; para puntas ya consumidas queda vacía.
func (r *MovimientoRepo) ListLineasResueltas(movimientoID string) ([]*repository.LineaResuelta, error) {
	query := `
		SELECT a.nombre, a.es_cable, a.unidad_medida, d.cantidad, d.precio_unitario,
		       COALESCE(p.nombre_punta, '')
		FROM detalle_movimiento d
		JOIN articulos a ON a.id = d.id_articulo
		LEFT JOIN stock_puntas p ON p.id = d.id_punta
		WHERE d.id_movimiento = $1
		ORDER BY a.nombre`
	rows, err := r.q.Query(context.Background(), query, movimientoID)
	if err != nil {
		return nil, fmt.Errorf("list lineas resueltas: %w", err)
	}
	defer rows.Close()
	var list []*repository.LineaResuelta
	for rows.Next() {
		var l repository.LineaResuelta
		if err := rows.Scan(&l.ArticuloNombre, &l.EsCable, &l.UnidadMedida,
			&l.Cantidad, &l.PrecioUnitario, &l.NombrePunta); err != nil {
			return nil, fmt.Errorf("scan linea resuelta: %w", err)
		}
		if l.EsCable {
			// Para cables la cantidad registrada ES la longitud.
			l.Longitud = l.Cantidad
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
