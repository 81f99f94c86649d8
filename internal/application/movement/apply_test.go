package movement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usse-dev/almacen-api/internal/application/movement"
	"github.com/usse-dev/almacen-api/internal/domain"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional (snapshot + restore) para
// ejercitar el aplicador sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

var errDiscoLleno = errors.New("disco lleno")

type memStore struct {
	articulos map[string]*entity.Articulo
	puntas    map[string]*entity.Punta
	proyectos map[string]*entity.Proyecto
	movs      map[string]*entity.Movimiento
	detalles  []*entity.DetalleMovimiento

	// fallarDetalleEn: número de CreateDetalle (base 1) que debe fallar; 0 = nunca.
	fallarDetalleEn int
	detallesCreados int
}

func newMemStore() *memStore {
	return &memStore{
		articulos: make(map[string]*entity.Articulo),
		puntas:    make(map[string]*entity.Punta),
		proyectos: make(map[string]*entity.Proyecto),
		movs:      make(map[string]*entity.Movimiento),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.articulos {
		cp := *v
		c.articulos[k] = &cp
	}
	for k, v := range s.puntas {
		cp := *v
		c.puntas[k] = &cp
	}
	for k, v := range s.proyectos {
		cp := *v
		c.proyectos[k] = &cp
	}
	for k, v := range s.movs {
		cp := *v
		c.movs[k] = &cp
	}
	for _, d := range s.detalles {
		cp := *d
		c.detalles = append(c.detalles, &cp)
	}
	c.fallarDetalleEn = s.fallarDetalleEn
	c.detallesCreados = s.detallesCreados
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.articulos = snap.articulos
	s.puntas = snap.puntas
	s.proyectos = snap.proyectos
	s.movs = snap.movs
	s.detalles = snap.detalles
	s.detallesCreados = snap.detallesCreados
}

func (s *memStore) articuloPorNombre(nombre string) *entity.Articulo {
	for _, a := range s.articulos {
		if a.Nombre == nombre {
			return a
		}
	}
	return nil
}

func (s *memStore) puntaPorEtiqueta(articuloID, nombre string) *entity.Punta {
	for _, p := range s.puntas {
		if p.ArticuloID == articuloID && p.Nombre == nombre {
			return p
		}
	}
	return nil
}

// seedArticulo siembra un artículo contable con stock.
func (s *memStore) seedArticulo(nombre string, stock int64, precio float64) *entity.Articulo {
	a := &entity.Articulo{
		ID:              uuid.New().String(),
		Nombre:          nombre,
		Tipo:            entity.TipoMaterial,
		Categoria:       "general",
		UnidadMedida:    "pieza",
		PrecioUnitario:  decimal.NewFromFloat(precio),
		CantidadEnStock: decimal.NewFromInt(stock),
	}
	s.articulos[a.ID] = a
	return a
}

// seedCable siembra un cable con una punta; el stock agregado es la longitud.
func (s *memStore) seedCable(nombre, punta string, longitud, precio float64) *entity.Articulo {
	a := &entity.Articulo{
		ID:              uuid.New().String(),
		Nombre:          nombre,
		Tipo:            entity.TipoMaterial,
		Categoria:       "cables",
		UnidadMedida:    "metro",
		PrecioUnitario:  decimal.NewFromFloat(precio),
		CantidadEnStock: decimal.NewFromFloat(longitud),
		EsCable:         true,
	}
	s.articulos[a.ID] = a
	p := &entity.Punta{
		ID:         uuid.New().String(),
		ArticuloID: a.ID,
		Nombre:     punta,
		Longitud:   decimal.NewFromFloat(longitud),
	}
	s.puntas[p.ID] = p
	return a
}

func (s *memStore) seedProyecto() *entity.Proyecto {
	p := &entity.Proyecto{ID: uuid.New().String(), CC: 1201, NombreObra: "Obra Norte", Encargado: "R. Gómez"}
	s.proyectos[p.ID] = p
	return p
}

// ── repos fake ────────────────────────────────────────────────────────────────

type memArticuloRepo struct{ s *memStore }

func (r *memArticuloRepo) Create(a *entity.Articulo) error {
	if r.s.articuloPorNombre(a.Nombre) != nil {
		return domain.ErrDuplicado
	}
	cp := *a
	r.s.articulos[a.ID] = &cp
	return nil
}

func (r *memArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	a, ok := r.s.articulos[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memArticuloRepo) GetByNombre(nombre string) (*entity.Articulo, error) {
	a := r.s.articuloPorNombre(nombre)
	if a == nil {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memArticuloRepo) GetByNombreForUpdate(nombre string) (*entity.Articulo, error) {
	return r.GetByNombre(nombre)
}

func (r *memArticuloRepo) UpdateStock(id string, cantidad decimal.Decimal) error {
	a, ok := r.s.articulos[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	a.CantidadEnStock = cantidad
	return nil
}

func (r *memArticuloRepo) List() ([]*entity.Articulo, error) {
	var out []*entity.Articulo
	for _, a := range r.s.articulos {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memArticuloRepo) ListNombres(soloCables bool) ([]string, error) {
	var out []string
	for _, a := range r.s.articulos {
		if soloCables && !a.EsCable {
			continue
		}
		out = append(out, a.Nombre)
	}
	return out, nil
}

func (r *memArticuloRepo) ListStockBajo() ([]*entity.Articulo, error) {
	var out []*entity.Articulo
	for _, a := range r.s.articulos {
		if a.CantidadEnStock.LessThan(a.StockMinimo) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memPuntaRepo struct{ s *memStore }

func (r *memPuntaRepo) Create(p *entity.Punta) error {
	if r.s.puntaPorEtiqueta(p.ArticuloID, p.Nombre) != nil {
		return domain.ErrDuplicado
	}
	cp := *p
	r.s.puntas[p.ID] = &cp
	return nil
}

func (r *memPuntaRepo) ListByArticulo(articuloID string) ([]*entity.Punta, error) {
	var out []*entity.Punta
	for _, p := range r.s.puntas {
		if p.ArticuloID == articuloID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPuntaRepo) GetByArticuloYNombreForUpdate(articuloID, nombre string) (*entity.Punta, error) {
	p := r.s.puntaPorEtiqueta(articuloID, nombre)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPuntaRepo) UpdateLongitud(id string, longitud decimal.Decimal) error {
	p, ok := r.s.puntas[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	p.Longitud = longitud
	return nil
}

func (r *memPuntaRepo) Delete(id string) error {
	delete(r.s.puntas, id)
	return nil
}

type memProyectoRepo struct{ s *memStore }

func (r *memProyectoRepo) Create(p *entity.Proyecto) error {
	cp := *p
	r.s.proyectos[p.ID] = &cp
	return nil
}

func (r *memProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	p, ok := r.s.proyectos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProyectoRepo) List() ([]*entity.Proyecto, error) {
	var out []*entity.Proyecto
	for _, p := range r.s.proyectos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type memMovimientoRepo struct{ s *memStore }

func (r *memMovimientoRepo) CreateMovimiento(m *entity.Movimiento) error {
	cp := *m
	r.s.movs[m.ID] = &cp
	return nil
}

func (r *memMovimientoRepo) CreateDetalle(d *entity.DetalleMovimiento) error {
	r.s.detallesCreados++
	if r.s.fallarDetalleEn > 0 && r.s.detallesCreados == r.s.fallarDetalleEn {
		return errDiscoLleno
	}
	cp := *d
	r.s.detalles = append(r.s.detalles, &cp)
	return nil
}

func (r *memMovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	m, ok := r.s.movs[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovimientoRepo) ListRecientes(limit int) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.s.movs {
		cp := *m
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memMovimientoRepo) ListLineasResueltas(movimientoID string) ([]*repository.LineaResuelta, error) {
	var out []*repository.LineaResuelta
	for _, d := range r.s.detalles {
		if d.MovimientoID != movimientoID {
			continue
		}
		a := r.s.articulos[d.ArticuloID]
		l := &repository.LineaResuelta{
			ArticuloNombre: a.Nombre,
			EsCable:        a.EsCable,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			UnidadMedida:   a.UnidadMedida,
		}
		if a.EsCable {
			l.Longitud = d.Cantidad
			if d.PuntaID != nil {
				if p, ok := r.s.puntas[*d.PuntaID]; ok {
					l.NombrePunta = p.Nombre
				}
			}
		}
		out = append(out, l)
	}
	return out, nil
}

// memTxRunner emula la atomicidad del lote: snapshot antes de ejecutar,
// restore completo si la función devuelve error.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) Run(_ context.Context, fn func(
	artRepo repository.ArticuloRepository,
	puntaRepo repository.PuntaRepository,
	proyRepo repository.ProyectoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	snap := tx.s.clone()
	err := fn(&memArticuloRepo{tx.s}, &memPuntaRepo{tx.s}, &memProyectoRepo{tx.s}, &memMovimientoRepo{tx.s})
	if err != nil {
		tx.s.restore(snap)
		return err
	}
	return nil
}

func newApplyUnderTest(s *memStore) *movement.ApplyUseCase {
	return movement.NewApplyUseCase(&memTxRunner{s: s})
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de lotes
// ──────────────────────────────────────────────────────────────────────────────

func TestAplicar_EntradaArticuloNuevoYCableExistente(t *testing.T) {
	s := newMemStore()
	cable := s.seedCable("Cable THHN 12", "Carrete viejo", 100, 8.20)
	uc := newApplyUnderTest(s)

	lote := &movement.Lote{
		Tipo: entity.MovimientoEntrada,
		Lineas: []movement.LineaSpec{
			{
				EsArticuloNuevo: true,
				NombreArticulo:  "Tornillo 1/2",
				TipoArticulo:    entity.TipoMaterial,
				Categoria:       "general",
				UnidadMedida:    "pieza",
				PrecioUnitario:  dec(0.75),
				Cantidad:        decimal.NewFromInt(50),
			},
			{
				NombreArticulo: "Cable THHN 12",
				EsCable:        true,
				NombrePunta:    "Carrete A",
				Longitud:       dec(25.5),
			},
		},
	}

	movID, err := uc.Aplicar(context.Background(), lote)
	require.NoError(t, err)
	require.NotEmpty(t, movID)

	// Artículo nuevo dado de alta con su stock inicial.
	tornillo := s.articuloPorNombre("Tornillo 1/2")
	require.NotNil(t, tornillo)
	assert.True(t, tornillo.CantidadEnStock.Equal(decimal.NewFromInt(50)),
		"stock inicial del artículo nuevo: %s", tornillo.CantidadEnStock)

	// El cable sumó la longitud de la punta nueva a su stock agregado.
	assert.True(t, s.articulos[cable.ID].CantidadEnStock.Equal(dec(125.5)),
		"stock del cable: %s", s.articulos[cable.ID].CantidadEnStock)
	puntaNueva := s.puntaPorEtiqueta(cable.ID, "Carrete A")
	require.NotNil(t, puntaNueva, "la entrada de cable crea una punta nueva, no fusiona")
	assert.True(t, puntaNueva.Longitud.Equal(dec(25.5)))

	// Ledger: una cabecera y un detalle por línea.
	require.Contains(t, s.movs, movID)
	require.Len(t, s.detalles, 2)
	// El precio del detalle de un artículo existente es el del catálogo.
	assert.True(t, s.detalles[1].PrecioUnitario.Equal(dec(8.20)))
	assert.True(t, s.detalles[1].Cantidad.Equal(dec(25.5)))
}

func TestAplicar_EntradaArticuloNuevoSinStockInicial(t *testing.T) {
	s := newMemStore()
	uc := newApplyUnderTest(s)

	// Alta de catálogo con cantidad 0: registra el artículo sin stock.
	lote := &movement.Lote{
		Tipo: entity.MovimientoEntrada,
		Lineas: []movement.LineaSpec{{
			EsArticuloNuevo: true,
			NombreArticulo:  "Abrazadera EMT 3/4",
			TipoArticulo:    entity.TipoMaterial,
			Categoria:       "general",
			UnidadMedida:    "pieza",
			PrecioUnitario:  dec(3.10),
			Cantidad:        decimal.Zero,
		}},
	}

	movID, err := uc.Aplicar(context.Background(), lote)
	require.NoError(t, err)

	abrazadera := s.articuloPorNombre("Abrazadera EMT 3/4")
	require.NotNil(t, abrazadera)
	assert.True(t, abrazadera.CantidadEnStock.IsZero())

	// El ledger conserva la línea de alta con cantidad 0.
	require.Contains(t, s.movs, movID)
	require.Len(t, s.detalles, 1)
	assert.True(t, s.detalles[0].Cantidad.IsZero())
}

func TestAplicar_EntradaCable_EtiquetaRepetida(t *testing.T) {
	s := newMemStore()
	cable := s.seedCable("Cable THHN 12", "Carrete A", 25.5, 8.20)
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoEntrada,
		Lineas: []movement.LineaSpec{lineaCable("Cable THHN 12", "Carrete A", 10)},
	})

	// La colisión de etiqueta se reporta como violación de regla con el nombre
	// en el mensaje, no como un duplicado seco de base de datos.
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violaciones, 1)
	assert.Contains(t, vErr.Violaciones[0], "Carrete A")
	assert.Contains(t, vErr.Violaciones[0], "Cable THHN 12")

	// Rollback: la punta viva no se tocó.
	punta := s.puntaPorEtiqueta(cable.ID, "Carrete A")
	require.NotNil(t, punta)
	assert.True(t, punta.Longitud.Equal(dec(25.5)))
	assert.Empty(t, s.movs)
}

func TestAplicar_SalidaContable(t *testing.T) {
	s := newMemStore()
	art := s.seedArticulo("Tornillo 1/2", 10, 0.75)
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoSalida,
		Lineas: []movement.LineaSpec{lineaContable("Tornillo 1/2", 4)},
	})
	require.NoError(t, err)
	assert.True(t, s.articulos[art.ID].CantidadEnStock.Equal(decimal.NewFromInt(6)))
}

func TestAplicar_SalidaContable_StockInsuficiente(t *testing.T) {
	s := newMemStore()
	art := s.seedArticulo("Tornillo 1/2", 10, 0.75)
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoSalida,
		Lineas: []movement.LineaSpec{lineaContable("Tornillo 1/2", 20)},
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// Rollback: el stock no se tocó y el ledger quedó vacío.
	assert.True(t, s.articulos[art.ID].CantidadEnStock.Equal(decimal.NewFromInt(10)))
	assert.Empty(t, s.movs)
	assert.Empty(t, s.detalles)
}

func TestAplicar_SalidaCable_ReduceLaPunta(t *testing.T) {
	s := newMemStore()
	cable := s.seedCable("Cable THHN 12", "Carrete A", 25.5, 8.20)
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoSalida,
		Lineas: []movement.LineaSpec{lineaCable("Cable THHN 12", "Carrete A", 10)},
	})
	require.NoError(t, err)

	punta := s.puntaPorEtiqueta(cable.ID, "Carrete A")
	require.NotNil(t, punta)
	assert.True(t, punta.Longitud.Equal(dec(15.5)), "longitud restante: %s", punta.Longitud)
	assert.True(t, s.articulos[cable.ID].CantidadEnStock.Equal(dec(15.5)))
}

func TestAplicar_SalidaCable_ConsumoExactoEliminaLaPunta(t *testing.T) {
	s := newMemStore()
	cable := s.seedCable("Cable THHN 12", "Carrete A", 25.5, 8.20)
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoSalida,
		Lineas: []movement.LineaSpec{lineaCable("Cable THHN 12", "Carrete A", 25.5)},
	})
	require.NoError(t, err)

	assert.Nil(t, s.puntaPorEtiqueta(cable.ID, "Carrete A"), "punta consumida por completo se elimina")
	assert.True(t, s.articulos[cable.ID].CantidadEnStock.IsZero())
	// El detalle del ledger sobrevive a la punta consumida.
	require.Len(t, s.detalles, 1)
	assert.True(t, s.detalles[0].Cantidad.Equal(dec(25.5)))
}

func TestAplicar_SalidaCable_MasQueLaPunta(t *testing.T) {
	s := newMemStore()
	cable := s.seedCable("Cable THHN 12", "Carrete A", 25.5, 8.20)
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoSalida,
		Lineas: []movement.LineaSpec{lineaCable("Cable THHN 12", "Carrete A", 30)},
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	punta := s.puntaPorEtiqueta(cable.ID, "Carrete A")
	require.NotNil(t, punta)
	assert.True(t, punta.Longitud.Equal(dec(25.5)))
}

func TestAplicar_PuntaInexistente(t *testing.T) {
	s := newMemStore()
	s.seedCable("Cable THHN 12", "Carrete A", 25.5, 8.20)
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoSalida,
		Lineas: []movement.LineaSpec{lineaCable("Cable THHN 12", "Carrete B", 5)},
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestAplicar_ArticuloInexistente(t *testing.T) {
	s := newMemStore()
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoEntrada,
		Lineas: []movement.LineaSpec{lineaContable("No existe", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestAplicar_ProyectoInexistente(t *testing.T) {
	s := newMemStore()
	s.seedArticulo("Tornillo 1/2", 10, 0.75)
	uc := newApplyUnderTest(s)

	fantasma := uuid.New().String()
	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		ProyectoID: &fantasma,
		Tipo:       entity.MovimientoEntrada,
		Lineas:     []movement.LineaSpec{lineaContable("Tornillo 1/2", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Empty(t, s.movs)
}

func TestAplicar_ConProyecto(t *testing.T) {
	s := newMemStore()
	s.seedArticulo("Tornillo 1/2", 10, 0.75)
	proyecto := s.seedProyecto()
	uc := newApplyUnderTest(s)

	movID, err := uc.Aplicar(context.Background(), &movement.Lote{
		ProyectoID: &proyecto.ID,
		Tipo:       entity.MovimientoSalida,
		Lineas:     []movement.LineaSpec{lineaContable("Tornillo 1/2", 2)},
	})
	require.NoError(t, err)
	require.NotNil(t, s.movs[movID].ProyectoID)
	assert.Equal(t, proyecto.ID, *s.movs[movID].ProyectoID)
}

func TestAplicar_FlagCableDiscrepante(t *testing.T) {
	s := newMemStore()
	s.seedCable("Cable THHN 12", "Carrete A", 25.5, 8.20)
	uc := newApplyUnderTest(s)

	// La línea trae el cable como contable: catálogo desactualizado.
	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo:   entity.MovimientoEntrada,
		Lineas: []movement.LineaSpec{lineaContable("Cable THHN 12", 5)},
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAplicar_LoteVacio(t *testing.T) {
	uc := newApplyUnderTest(newMemStore())

	_, err := uc.Aplicar(context.Background(), &movement.Lote{Tipo: entity.MovimientoEntrada})
	assert.ErrorIs(t, err, domain.ErrMovimientoVacio)

	_, err = uc.Aplicar(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrMovimientoVacio)
}

func TestAplicar_FalloParcialRevierteElLoteCompleto(t *testing.T) {
	s := newMemStore()
	art := s.seedArticulo("Tornillo 1/2", 10, 0.75)
	cable := s.seedCable("Cable THHN 12", "Carrete A", 25.5, 8.20)
	s.fallarDetalleEn = 2
	uc := newApplyUnderTest(s)

	_, err := uc.Aplicar(context.Background(), &movement.Lote{
		Tipo: entity.MovimientoEntrada,
		Lineas: []movement.LineaSpec{
			lineaContable("Tornillo 1/2", 5),
			lineaCable("Cable THHN 12", "Carrete B", 10),
		},
	})
	require.ErrorIs(t, err, errDiscoLleno)

	// Nada del lote quedó visible: ni la primera línea ya aplicada.
	assert.True(t, s.articulos[art.ID].CantidadEnStock.Equal(decimal.NewFromInt(10)))
	assert.True(t, s.articulos[cable.ID].CantidadEnStock.Equal(dec(25.5)))
	assert.Nil(t, s.puntaPorEtiqueta(cable.ID, "Carrete B"))
	assert.Empty(t, s.movs)
	assert.Empty(t, s.detalles)
}

// ──────────────────────────────────────────────────────────────────────────────
// Service: finalización con restauración ante fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestService_Finalizar_RestauraElPendienteTrasFallo(t *testing.T) {
	s := newMemStore()
	s.seedArticulo("Tornillo 1/2", 10, 0.75)
	s.fallarDetalleEn = 1

	svc := movement.NewService(
		movement.NewSessions(entity.NewCatalogos(nil, nil)),
		newApplyUnderTest(s),
	)
	const sesion = "sesion-1"

	require.NoError(t, svc.Iniciar(sesion, nil, entity.MovimientoSalida, ""))
	require.NoError(t, svc.AgregarLinea(sesion, lineaContable("Tornillo 1/2", 3)))

	_, err := svc.Finalizar(context.Background(), sesion)
	require.ErrorIs(t, err, errDiscoLleno)

	// El pendiente volvió intacto: el operador reintenta sin recapturar.
	tipo, lineas, abierto := svc.Pendiente(sesion)
	assert.True(t, abierto)
	assert.Equal(t, entity.MovimientoSalida, tipo)
	require.Len(t, lineas, 1)

	// Reintento con el almacenamiento sano.
	s.fallarDetalleEn = 0
	s.detallesCreados = 0
	movID, err := svc.Finalizar(context.Background(), sesion)
	require.NoError(t, err)
	assert.Contains(t, s.movs, movID)

	_, _, abierto = svc.Pendiente(sesion)
	assert.False(t, abierto)
}
