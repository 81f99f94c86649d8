package dto

import "github.com/shopspring/decimal"

// ArticuloResponse vista de inventario de un artículo.
type ArticuloResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Tipo            string          `json:"tipo"`
	Categoria       string          `json:"categoria"`
	UnidadMedida    string          `json:"unidad_medida"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	CantidadEnStock decimal.Decimal `json:"cantidad_en_stock"`
	StockMinimo     decimal.Decimal `json:"stock_minimo"`
	EsCable         bool            `json:"es_cable"`
}

// PuntaResponse un tramo/carrete en stock de un artículo cable.
type PuntaResponse struct {
	ID       string          `json:"id"`
	Nombre   string          `json:"nombre"`
	Longitud decimal.Decimal `json:"longitud"`
}
