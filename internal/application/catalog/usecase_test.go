package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usse-dev/almacen-api/internal/application/catalog"
	"github.com/usse-dev/almacen-api/internal/domain"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

// Stubs mínimos: solo los métodos que la superficie de consulta ejercita.

type stubArticuloRepo struct {
	articulos []*entity.Articulo
	stockBajo []*entity.Articulo
}

func (s *stubArticuloRepo) Create(*entity.Articulo) error                   { return nil }
func (s *stubArticuloRepo) GetByID(id string) (*entity.Articulo, error)     { return nil, nil }
func (s *stubArticuloRepo) GetByNombre(string) (*entity.Articulo, error)    { return nil, nil }
func (s *stubArticuloRepo) GetByNombreForUpdate(string) (*entity.Articulo, error) {
	return nil, nil
}
func (s *stubArticuloRepo) UpdateStock(string, decimal.Decimal) error { return nil }
func (s *stubArticuloRepo) List() ([]*entity.Articulo, error)         { return s.articulos, nil }
func (s *stubArticuloRepo) ListNombres(soloCables bool) ([]string, error) {
	var out []string
	for _, a := range s.articulos {
		if soloCables && !a.EsCable {
			continue
		}
		out = append(out, a.Nombre)
	}
	return out, nil
}
func (s *stubArticuloRepo) ListStockBajo() ([]*entity.Articulo, error) { return s.stockBajo, nil }

type stubMovimientoRepo struct {
	movs   []*entity.Movimiento
	lineas map[string][]*repository.LineaResuelta
}

func (s *stubMovimientoRepo) CreateMovimiento(*entity.Movimiento) error      { return nil }
func (s *stubMovimientoRepo) CreateDetalle(*entity.DetalleMovimiento) error  { return nil }
func (s *stubMovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	for _, m := range s.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (s *stubMovimientoRepo) ListRecientes(limit int) ([]*entity.Movimiento, error) {
	if limit > len(s.movs) {
		limit = len(s.movs)
	}
	return s.movs[:limit], nil
}
func (s *stubMovimientoRepo) ListLineasResueltas(movimientoID string) ([]*repository.LineaResuelta, error) {
	return s.lineas[movimientoID], nil
}

func articulo(nombre string, esCable bool) *entity.Articulo {
	return &entity.Articulo{ID: nombre, Nombre: nombre, EsCable: esCable}
}

func TestListarArticulos_FiltraSinAcentosNiMayusculas(t *testing.T) {
	uc := catalog.NewUseCase(&stubArticuloRepo{articulos: []*entity.Articulo{
		articulo("Contacto Eléctrico", false),
		articulo("Cable THHN 12", true),
		articulo("Tornillo 1/2", false),
	}}, nil, nil, entity.NewCatalogos(nil, nil))

	out, err := uc.ListarArticulos("ELÉCTRICO", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Contacto Eléctrico", out[0].Nombre)

	// Sin filtro devuelve todo.
	out, err = uc.ListarArticulos("", false)
	require.NoError(t, err)
	assert.Len(t, out, 3)

	// El filtro acento-insensible también corre al revés: consulta sin acentos.
	out, err = uc.ListarArticulos("electrico", false)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListarArticulos_SoloStockBajo(t *testing.T) {
	uc := catalog.NewUseCase(&stubArticuloRepo{
		articulos: []*entity.Articulo{articulo("A", false), articulo("B", false)},
		stockBajo: []*entity.Articulo{articulo("B", false)},
	}, nil, nil, entity.NewCatalogos(nil, nil))

	out, err := uc.ListarArticulos("", true)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Nombre)
}

func TestMovimiento_ResuelveLineasDeCable(t *testing.T) {
	mov := &entity.Movimiento{ID: "mov-1", Tipo: entity.MovimientoSalida, FechaHora: time.Now()}
	movRepo := &stubMovimientoRepo{
		movs: []*entity.Movimiento{mov},
		lineas: map[string][]*repository.LineaResuelta{
			"mov-1": {
				{
					ArticuloNombre: "Cable THHN 12",
					EsCable:        true,
					Cantidad:       decimal.NewFromFloat(25.5),
					Longitud:       decimal.NewFromFloat(25.5),
					NombrePunta:    "Carrete A",
					UnidadMedida:   "metro",
					PrecioUnitario: decimal.NewFromFloat(8.20),
				},
				{
					ArticuloNombre: "Tornillo 1/2",
					Cantidad:       decimal.NewFromInt(50),
					UnidadMedida:   "pieza",
					PrecioUnitario: decimal.NewFromFloat(0.75),
				},
			},
		},
	}
	uc := catalog.NewUseCase(&stubArticuloRepo{}, nil, movRepo, entity.NewCatalogos(nil, nil))

	out, err := uc.Movimiento("mov-1")
	require.NoError(t, err)
	require.Len(t, out.Lineas, 2)

	// Línea de cable: punta + longitud, sin cantidad cruda.
	cable := out.Lineas[0]
	assert.Equal(t, "Carrete A", cable.NombrePunta)
	assert.True(t, cable.Longitud.Equal(decimal.NewFromFloat(25.5)))
	assert.True(t, cable.Cantidad.IsZero())

	// Línea contable: cantidad, sin punta.
	contable := out.Lineas[1]
	assert.Empty(t, contable.NombrePunta)
	assert.True(t, contable.Cantidad.Equal(decimal.NewFromInt(50)))
}

func TestMovimiento_NoEncontrado(t *testing.T) {
	uc := catalog.NewUseCase(&stubArticuloRepo{}, nil, &stubMovimientoRepo{}, entity.NewCatalogos(nil, nil))

	_, err := uc.Movimiento("no-existe")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestNombresArticulos_SoloCables(t *testing.T) {
	uc := catalog.NewUseCase(&stubArticuloRepo{articulos: []*entity.Articulo{
		articulo("Cable THHN 12", true),
		articulo("Tornillo 1/2", false),
	}}, nil, nil, entity.NewCatalogos(nil, nil))

	nombres, err := uc.NombresArticulos(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cable THHN 12"}, nombres)
}
