package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/usse-dev/almacen-api/internal/application/dto"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

// UseCase gestión de proyectos: alta y listado. Los proyectos se referencian
// desde los movimientos para atribución de costos, nunca se borran.
type UseCase struct {
	repo repository.ProyectoRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProyectoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Crear da de alta un proyecto con centro de costo, obra y encargado.
func (uc *UseCase) Crear(in dto.CrearProyectoRequest) (*dto.ProyectoResponse, error) {
	proyecto := &entity.Proyecto{
		ID:         uuid.New().String(),
		CC:         in.CC,
		NombreObra: in.NombreObra,
		Encargado:  in.Encargado,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(proyecto); err != nil {
		return nil, err
	}
	return toResponse(proyecto), nil
}

// Obtener devuelve un proyecto por id; nil si no existe.
func (uc *UseCase) Obtener(id string) (*dto.ProyectoResponse, error) {
	proyecto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, nil
	}
	return toResponse(proyecto), nil
}

// Listar devuelve todos los proyectos con (obra, centro de costo) por id.
func (uc *UseCase) Listar() ([]*dto.ProyectoResponse, error) {
	proyectos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProyectoResponse, 0, len(proyectos))
	for _, p := range proyectos {
		out = append(out, toResponse(p))
	}
	return out, nil
}

func toResponse(p *entity.Proyecto) *dto.ProyectoResponse {
	return &dto.ProyectoResponse{ID: p.ID, CC: p.CC, NombreObra: p.NombreObra, Encargado: p.Encargado}
}
