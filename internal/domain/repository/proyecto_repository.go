package repository

import "github.com/usse-dev/almacen-api/internal/domain/entity"

// ProyectoRepository define el puerto de persistencia para Proyecto.
type ProyectoRepository interface {
	Create(proyecto *entity.Proyecto) error
	GetByID(id string) (*entity.Proyecto, error)
	List() ([]*entity.Proyecto, error)
}
