package movement

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/usse-dev/almacen-api/internal/domain"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
)

// LineaSpec describe una línea pendiente de un movimiento: artículo nuevo o
// existente, con cantidad (artículos contables) o punta+longitud (cables).
// Los campos TipoArticulo..StockMinimo solo aplican a artículos nuevos.
type LineaSpec struct {
	EsArticuloNuevo bool
	NombreArticulo  string
	TipoArticulo    string // material | herramienta
	Categoria       string
	UnidadMedida    string
	PrecioUnitario  decimal.Decimal
	StockMinimo     decimal.Decimal
	EsCable         bool
	Cantidad        decimal.Decimal // artículos contables
	NombrePunta     string          // cables
	Longitud        decimal.Decimal // cables
}

// Lote es el payload que emite Finalizar: todo lo necesario para que el
// aplicador persista cabecera, detalles y mutaciones de stock en una transacción.
type Lote struct {
	ProyectoID    *string
	Tipo          string // entrada | salida
	Observaciones string
	Lineas        []LineaSpec
}

type estado int

const (
	estadoIdle estado = iota
	estadoAbierto
)

// Builder acumula líneas de un movimiento pendiente antes de cualquier
// persistencia. Máquina de estados: idle -> abierto (Iniciar) -> abierto
// (AgregarLinea/EliminarLinea) -> idle (Finalizar emitiendo el Lote, o Cancelar).
// Iniciar estando abierto se rechaza, no se encola.
//
// El builder pertenece a la sesión de un solo operador; el mutex cubre el caso
// de peticiones HTTP solapadas de esa misma sesión.
type Builder struct {
	mu  sync.Mutex
	cat entity.Catalogos

	estado        estado
	proyectoID    *string
	tipo          string
	observaciones string
	lineas        []LineaSpec
}

// NewBuilder construye un builder en estado idle.
func NewBuilder(cat entity.Catalogos) *Builder {
	return &Builder{cat: cat}
}

// Iniciar abre un movimiento pendiente vacío, opcionalmente atado a un proyecto.
// Falla con ErrEstadoInvalido si ya hay un movimiento abierto.
func (b *Builder) Iniciar(proyectoID *string, tipo, observaciones string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.estado != estadoIdle {
		return domain.ErrEstadoInvalido
	}
	if !entity.TipoMovimientoValido(tipo) {
		return domain.ErrEntradaInvalida
	}
	b.estado = estadoAbierto
	b.proyectoID = proyectoID
	b.tipo = tipo
	b.observaciones = observaciones
	b.lineas = nil
	return nil
}

// AgregarLinea valida la línea y la anexa al movimiento pendiente. La validación
// no corta en la primera regla: devuelve *domain.ValidationError con todas las
// violaciones para que la UI las muestre de una vez.
func (b *Builder) AgregarLinea(spec LineaSpec) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.estado != estadoAbierto {
		return domain.ErrEstadoInvalido
	}
	if err := b.validar(spec); err != nil {
		return err
	}
	b.lineas = append(b.lineas, spec)
	return nil
}

// validar aplica las reglas en orden declarado y acumula las violaciones.
func (b *Builder) validar(spec LineaSpec) error {
	var violaciones []string

	// 1. Artículo nuevo: nombre obligatorio y alta con catálogos cerrados válidos.
	if spec.EsArticuloNuevo {
		if strings.TrimSpace(spec.NombreArticulo) == "" {
			violaciones = append(violaciones, "debe ingresar un nombre para el artículo")
		}
		if !entity.TipoValido(spec.TipoArticulo) {
			violaciones = append(violaciones, "el tipo de artículo debe ser material o herramienta")
		}
		if !b.cat.CategoriaValida(spec.Categoria) {
			violaciones = append(violaciones, "la categoría no pertenece al catálogo")
		}
		if !b.cat.UnidadValida(spec.UnidadMedida) {
			violaciones = append(violaciones, "la unidad de medida no pertenece al catálogo")
		}
		if spec.PrecioUnitario.IsNegative() {
			violaciones = append(violaciones, "el precio unitario no puede ser negativo")
		}
		if spec.StockMinimo.IsNegative() {
			violaciones = append(violaciones, "el stock mínimo no puede ser negativo")
		}
	}

	// 2. Cable: etiqueta de punta y longitud > 0; la cantidad se ignora.
	if spec.EsCable {
		if strings.TrimSpace(spec.NombrePunta) == "" {
			violaciones = append(violaciones, "la punta/carrete requiere una etiqueta")
		}
		if !spec.Longitud.IsPositive() {
			violaciones = append(violaciones, "la longitud del cable debe ser mayor a 0")
		}
	} else {
		// 3. Contable: cantidad entera, >= 0 para artículos nuevos, >= 1 para existentes.
		if !spec.Cantidad.IsInteger() {
			violaciones = append(violaciones, "la cantidad debe ser un número entero")
		}
		if spec.EsArticuloNuevo {
			if spec.Cantidad.IsNegative() {
				violaciones = append(violaciones, "la cantidad no puede ser negativa")
			}
		} else if spec.Cantidad.LessThan(decimal.NewFromInt(1)) {
			violaciones = append(violaciones, "la cantidad debe ser al menos 1")
		}
	}

	// Un artículo no puede nacer de una salida.
	if b.tipo == entity.MovimientoSalida && spec.EsArticuloNuevo {
		violaciones = append(violaciones, "no se puede crear un artículo nuevo en una salida")
	}

	return domain.NewValidationError(violaciones)
}

// EliminarLinea descarta una línea por posición. ErrFueraDeRango si el índice no existe.
func (b *Builder) EliminarLinea(i int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.estado != estadoAbierto {
		return domain.ErrEstadoInvalido
	}
	if i < 0 || i >= len(b.lineas) {
		return domain.ErrFueraDeRango
	}
	b.lineas = append(b.lineas[:i], b.lineas[i+1:]...)
	return nil
}

// Finalizar emite el Lote acumulado y regresa a idle. Requiere al menos una
// línea (ErrMovimientoVacio). El builder queda limpio: el aplicador es quien
// persiste el lote; si falla, Restaurar devuelve las líneas al builder.
func (b *Builder) Finalizar() (*Lote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.estado != estadoAbierto {
		return nil, domain.ErrEstadoInvalido
	}
	if len(b.lineas) == 0 {
		return nil, domain.ErrMovimientoVacio
	}
	lote := &Lote{
		ProyectoID:    b.proyectoID,
		Tipo:          b.tipo,
		Observaciones: b.observaciones,
		Lineas:        append([]LineaSpec(nil), b.lineas...),
	}
	b.reset()
	return lote, nil
}

// Cancelar descarta el movimiento pendiente sin persistir nada.
func (b *Builder) Cancelar() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.estado != estadoAbierto {
		return domain.ErrEstadoInvalido
	}
	b.reset()
	return nil
}

// Restaurar re-abre el builder con las líneas de un lote cuya aplicación falló,
// para que el operador reintente sin volver a capturarlas. Solo válido desde idle.
func (b *Builder) Restaurar(lote *Lote) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.estado != estadoIdle {
		return domain.ErrEstadoInvalido
	}
	b.estado = estadoAbierto
	b.proyectoID = lote.ProyectoID
	b.tipo = lote.Tipo
	b.observaciones = lote.Observaciones
	b.lineas = append([]LineaSpec(nil), lote.Lineas...)
	return nil
}

// Abierto reporta si hay un movimiento pendiente.
func (b *Builder) Abierto() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.estado == estadoAbierto
}

// Pendiente devuelve una copia de las líneas acumuladas y el tipo del movimiento
// abierto, para que la UI pueda re-renderizar el formulario.
func (b *Builder) Pendiente() (tipo string, lineas []LineaSpec, abierto bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.estado != estadoAbierto {
		return "", nil, false
	}
	return b.tipo, append([]LineaSpec(nil), b.lineas...), true
}

func (b *Builder) reset() {
	b.estado = estadoIdle
	b.proyectoID = nil
	b.tipo = ""
	b.observaciones = ""
	b.lineas = nil
}
