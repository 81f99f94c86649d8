package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

// ProyectoRepo implementación de ProyectoRepository sobre PostgreSQL (usable con pool o tx).
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador de proyectos. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

// Create persiste un proyecto nuevo.
func (r *ProyectoRepo) Create(proyecto *entity.Proyecto) error {
	query := `
		INSERT INTO proyectos (id, c_c, nombre_obra, encargado, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		proyecto.ID, proyecto.CC, proyecto.NombreObra, proyecto.Encargado, proyecto.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proyecto: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	query := `SELECT id, c_c, nombre_obra, encargado, created_at FROM proyectos WHERE id = $1`
	var p entity.Proyecto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CC, &p.NombreObra, &p.Encargado, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proyecto: %w", err)
	}
	return &p, nil
}

// List lista todos los proyectos, más recientes primero.
func (r *ProyectoRepo) List() ([]*entity.Proyecto, error) {
	query := `SELECT id, c_c, nombre_obra, encargado, created_at FROM proyectos ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proyecto
	for rows.Next() {
		var p entity.Proyecto
		if err := rows.Scan(&p.ID, &p.CC, &p.NombreObra, &p.Encargado, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
