package entity

import "time"

// Proyecto representa una obra con centro de costo, destino de la atribución de
// movimientos. Un movimiento puede no tener proyecto (referencia opcional).
type Proyecto struct {
	ID         string
	CC         int // centro de costo
	NombreObra string
	Encargado  string
	CreatedAt  time.Time
}
