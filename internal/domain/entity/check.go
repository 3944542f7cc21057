package entity

import "time"

// CheckRecord resultado de un conteo físico: la cantidad real contada
// y la cantidad que el sistema tenía registrada en ese momento.
// Append-only; distinto de MovementRecord porque fija un valor absoluto.
type CheckRecord struct {
	ID               string
	MaterialID       string
	RealQuantity     int64
	RecordedQuantity int64
	AdjustedByUser   string
	Timestamp        time.Time
}
