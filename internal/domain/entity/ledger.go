package entity

import "time"

// LedgerEntry stock actual de un material (a lo sumo una fila por material).
// CurrentQuantity nunca es negativo; lo muta exclusivamente el stock mutator.
type LedgerEntry struct {
	MaterialID      string
	CurrentQuantity int64
	LastUpdated     time.Time
}
