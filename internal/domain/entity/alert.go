package entity

import "time"

// Tipos de alerta de stock.
const (
	AlertTypeLow  = "low"  // cantidad por debajo de min_quantity
	AlertTypeHigh = "high" // cantidad por encima de max_quantity
)

// Alert registro de que la cantidad de un material salió del rango [min, max].
// Invariante: a lo sumo una alerta sin resolver por material.
// CurrentQuantity es el snapshot del stock en el momento de generarla.
type Alert struct {
	ID              string
	MaterialID      string
	AlertType       string
	CurrentQuantity int64
	GeneratedTime   time.Time
	IsResolved      bool
}
