package catalog

import (
	"strings"

	"github.com/usse-dev/almacen-api/internal/application/dto"
	"github.com/usse-dev/almacen-api/internal/domain"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

// UseCase superficie de consulta de solo lectura: listados de artículos, puntas,
// proyectos y movimientos recientes con sus líneas resueltas. La consumen la UI
// y la validación del builder (catálogos cerrados).
type UseCase struct {
	artRepo   repository.ArticuloRepository
	puntaRepo repository.PuntaRepository
	movRepo   repository.MovimientoRepository
	catalogos entity.Catalogos
}

// NewUseCase construye la superficie de consulta.
func NewUseCase(
	artRepo repository.ArticuloRepository,
	puntaRepo repository.PuntaRepository,
	movRepo repository.MovimientoRepository,
	catalogos entity.Catalogos,
) *UseCase {
	return &UseCase{artRepo: artRepo, puntaRepo: puntaRepo, movRepo: movRepo, catalogos: catalogos}
}

// Catalogos devuelve los conjuntos cerrados vigentes (configuración o defaults).
func (uc *UseCase) Catalogos() entity.Catalogos {
	return uc.catalogos
}

// ListarArticulos lista el inventario completo; q filtra por subcadena del
// nombre sin distinguir mayúsculas ni acentos; soloStockBajo limita a artículos
// bajo su umbral mínimo.
func (uc *UseCase) ListarArticulos(q string, soloStockBajo bool) ([]*dto.ArticuloResponse, error) {
	var articulos []*entity.Articulo
	var err error
	if soloStockBajo {
		articulos, err = uc.artRepo.ListStockBajo()
	} else {
		articulos, err = uc.artRepo.List()
	}
	if err != nil {
		return nil, err
	}
	needle := Normalizar(q)
	out := make([]*dto.ArticuloResponse, 0, len(articulos))
	for _, a := range articulos {
		if needle != "" && !strings.Contains(Normalizar(a.Nombre), needle) {
			continue
		}
		out = append(out, toArticuloResponse(a))
	}
	return out, nil
}

// NombresArticulos devuelve los nombres del catálogo; soloCables filtra por es_cable.
func (uc *UseCase) NombresArticulos(soloCables bool) ([]string, error) {
	return uc.artRepo.ListNombres(soloCables)
}

// PuntasDeArticulo lista los tramos/carretes en stock de un artículo cable.
func (uc *UseCase) PuntasDeArticulo(articuloID string) ([]*dto.PuntaResponse, error) {
	articulo, err := uc.artRepo.GetByID(articuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNoEncontrado
	}
	puntas, err := uc.puntaRepo.ListByArticulo(articulo.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PuntaResponse, 0, len(puntas))
	for _, p := range puntas {
		out = append(out, &dto.PuntaResponse{ID: p.ID, Nombre: p.Nombre, Longitud: p.Longitud})
	}
	return out, nil
}

// MovimientosRecientes devuelve los últimos n movimientos con sus líneas
// resueltas: cada detalle con el nombre del artículo y, para cables, etiqueta
// de punta y longitud en lugar de la cantidad cruda.
func (uc *UseCase) MovimientosRecientes(n int) ([]*dto.MovimientoResponse, error) {
	if n <= 0 {
		n = 20
	}
	movimientos, err := uc.movRepo.ListRecientes(n)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		lineas, err := uc.movRepo.ListLineasResueltas(m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toMovimientoResponse(m, lineas))
	}
	return out, nil
}

// Movimiento devuelve un movimiento por id con sus líneas resueltas.
func (uc *UseCase) Movimiento(id string) (*dto.MovimientoResponse, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNoEncontrado
	}
	lineas, err := uc.movRepo.ListLineasResueltas(m.ID)
	if err != nil {
		return nil, err
	}
	return toMovimientoResponse(m, lineas), nil
}

func toArticuloResponse(a *entity.Articulo) *dto.ArticuloResponse {
	return &dto.ArticuloResponse{
		ID:              a.ID,
		Nombre:          a.Nombre,
		Tipo:            a.Tipo,
		Categoria:       a.Categoria,
		UnidadMedida:    a.UnidadMedida,
		PrecioUnitario:  a.PrecioUnitario,
		CantidadEnStock: a.CantidadEnStock,
		StockMinimo:     a.StockMinimo,
		EsCable:         a.EsCable,
	}
}

func toMovimientoResponse(m *entity.Movimiento, lineas []*repository.LineaResuelta) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:            m.ID,
		ProyectoID:    m.ProyectoID,
		Tipo:          m.Tipo,
		FechaHora:     m.FechaHora,
		Observaciones: m.Observaciones,
		Lineas:        make([]dto.LineaResueltaResponse, 0, len(lineas)),
	}
	for _, l := range lineas {
		linea := dto.LineaResueltaResponse{
			Articulo:       l.ArticuloNombre,
			EsCable:        l.EsCable,
			UnidadMedida:   l.UnidadMedida,
			PrecioUnitario: l.PrecioUnitario,
		}
		if l.EsCable {
			linea.NombrePunta = l.NombrePunta
			linea.Longitud = l.Longitud
		} else {
			linea.Cantidad = l.Cantidad
		}
		resp.Lineas = append(resp.Lineas, linea)
	}
	return resp
}
