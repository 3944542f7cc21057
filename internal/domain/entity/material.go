package entity

import "time"

// Material datos de referencia del catálogo: nombre, proveedor, unidad y
// umbrales [min, max] para el motor de alertas.
type Material struct {
	ID          string
	Name        string
	Supplier    string
	Unit        string
	MinQuantity int64
	MaxQuantity int64
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
