package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de artículo.
const (
	TipoMaterial    = "material"
	TipoHerramienta = "herramienta"
)

// Articulo representa un artículo del catálogo: material o herramienta, con o sin
// control por carretes. Invariante: si EsCable es true, CantidadEnStock es la suma
// de las longitudes de sus puntas; si es false, es un conteo simple de unidades.
// Los artículos nunca se borran (integridad histórica del ledger).
type Articulo struct {
	ID              string
	Nombre          string // único en el catálogo
	Tipo            string // material | herramienta
	Categoria       string
	UnidadMedida    string
	PrecioUnitario  decimal.Decimal
	CantidadEnStock decimal.Decimal
	StockMinimo     decimal.Decimal // umbral para alertas de stock bajo
	EsCable         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TipoValido reporta si el tipo de artículo pertenece al conjunto cerrado.
func TipoValido(tipo string) bool {
	return tipo == TipoMaterial || tipo == TipoHerramienta
}
