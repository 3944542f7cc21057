package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindInbound  = "inbound"  // entrada
	MovementKindOutbound = "outbound" // salida
)

// MovementRecord hecho inmutable append-only: una entrada o salida de stock.
// Quantity siempre es positiva; el signo lo aporta Kind.
type MovementRecord struct {
	ID         string
	MaterialID string
	UserID     string
	Kind       string
	Quantity   int64
	Note       string
	Timestamp  time.Time
}
