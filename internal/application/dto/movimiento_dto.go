package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IniciarMovimientoRequest body para POST /api/movimientos/builder/iniciar.
type IniciarMovimientoRequest struct {
	ProyectoID    *string `json:"proyecto_id,omitempty" validate:"omitempty,uuid4"`
	Tipo          string  `json:"tipo" validate:"required,oneof=entrada salida"`
	Observaciones string  `json:"observaciones"`
}

// AgregarLineaRequest body para POST /api/movimientos/builder/lineas.
// La semántica de los campos numéricos depende de es_cable: cantidad para
// artículos contables, nombre_punta+longitud para cables.
type AgregarLineaRequest struct {
	EsArticuloNuevo bool            `json:"es_articulo_nuevo"`
	NombreArticulo  string          `json:"nombre_articulo" validate:"required"`
	TipoArticulo    string          `json:"tipo_articulo,omitempty"`
	Categoria       string          `json:"categoria,omitempty"`
	UnidadMedida    string          `json:"unidad_medida,omitempty"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario,omitempty"`
	StockMinimo     decimal.Decimal `json:"stock_minimo,omitempty"`
	EsCable         bool            `json:"es_cable"`
	Cantidad        decimal.Decimal `json:"cantidad,omitempty"`
	NombrePunta     string          `json:"nombre_punta,omitempty"`
	Longitud        decimal.Decimal `json:"longitud,omitempty"`
}

// LineaPendienteResponse una línea acumulada en el builder.
type LineaPendienteResponse struct {
	Indice          int             `json:"indice"`
	EsArticuloNuevo bool            `json:"es_articulo_nuevo"`
	NombreArticulo  string          `json:"nombre_articulo"`
	EsCable         bool            `json:"es_cable"`
	Cantidad        decimal.Decimal `json:"cantidad,omitempty"`
	NombrePunta     string          `json:"nombre_punta,omitempty"`
	Longitud        decimal.Decimal `json:"longitud,omitempty"`
}

// BuilderEstadoResponse estado del movimiento pendiente de la sesión.
type BuilderEstadoResponse struct {
	Abierto bool                     `json:"abierto"`
	Tipo    string                   `json:"tipo,omitempty"`
	Lineas  []LineaPendienteResponse `json:"lineas"`
}

// LineaResueltaResponse detalle resuelto vía join: nombre de artículo y, para
// cables, etiqueta de punta y longitud en lugar de la cantidad cruda.
type LineaResueltaResponse struct {
	Articulo       string          `json:"articulo"`
	EsCable        bool            `json:"es_cable"`
	Cantidad       decimal.Decimal `json:"cantidad,omitempty"`
	NombrePunta    string          `json:"nombre_punta,omitempty"`
	Longitud       decimal.Decimal `json:"longitud,omitempty"`
	UnidadMedida   string          `json:"unidad_medida,omitempty"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// MovimientoResponse cabecera del ledger con sus líneas resueltas.
type MovimientoResponse struct {
	ID            string                  `json:"id"`
	ProyectoID    *string                 `json:"proyecto_id,omitempty"`
	Tipo          string                  `json:"tipo"`
	FechaHora     time.Time               `json:"fecha_hora"`
	Observaciones string                  `json:"observaciones,omitempty"`
	Lineas        []LineaResueltaResponse `json:"lineas"`
}
