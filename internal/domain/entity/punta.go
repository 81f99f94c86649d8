package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Punta representa un tramo/carrete físico de cable en stock, etiquetado e
// individualmente direccionable. Pertenece a exactamente un artículo cable y
// nunca se fusiona con otras puntas del mismo artículo.
type Punta struct {
	ID         string
	ArticuloID string
	Nombre     string          // etiqueta: "Carrete A", "Punta Cobre #2"
	Longitud   decimal.Decimal // en la unidad de medida del artículo, > 0
	CreatedAt  time.Time
}
