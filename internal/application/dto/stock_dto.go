package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	MaterialID string `json:"material_id"`
	Kind       string `json:"kind"` // inbound | outbound
	Quantity   int64  `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

// MovementResponse resultado de un movimiento aceptado.
type MovementResponse struct {
	MaterialID  string `json:"material_id"`
	NewQuantity int64  `json:"new_quantity"`
}

// RegisterCheckRequest body para POST /api/inventory/checks.
type RegisterCheckRequest struct {
	MaterialID   string `json:"material_id"`
	RealQuantity int64  `json:"real_quantity"`
}

// CheckResponse resultado de un conteo aceptado.
type CheckResponse struct {
	MaterialID       string    `json:"material_id"`
	RealQuantity     int64     `json:"real_quantity"`
	RecordedQuantity int64     `json:"recorded_quantity"`
	Timestamp        time.Time `json:"timestamp"`
}

// LedgerItemDTO fila de la consulta de inventario (stock + catálogo).
type LedgerItemDTO struct {
	MaterialID      string    `json:"material_id"`
	MaterialName    string    `json:"material_name"`
	Supplier        string    `json:"supplier"`
	Unit            string    `json:"unit"`
	CurrentQuantity int64     `json:"current_quantity"`
	MinQuantity     int64     `json:"min_quantity"`
	MaxQuantity     int64     `json:"max_quantity"`
	LastUpdated     time.Time `json:"last_updated"`
}

// MovementItemDTO fila del visor de movimientos.
type MovementItemDTO struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Quantity     int64     `json:"quantity"`
	MaterialName string    `json:"material_name"`
	Username     string    `json:"username"`
	Note         string    `json:"note,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// MovementListRequest filtros del visor de movimientos.
type MovementListRequest struct {
	PageRequest
	From     string `query:"from"` // RFC 3339 o "2006-01-02"
	To       string `query:"to"`
	Kind     string `query:"kind"`
	Material string `query:"material"`
	User     string `query:"user"`
}

// CheckItemDTO fila del historial de conteos.
type CheckItemDTO struct {
	ID               string    `json:"id"`
	MaterialName     string    `json:"material_name"`
	RealQuantity     int64     `json:"real_quantity"`
	RecordedQuantity int64     `json:"recorded_quantity"`
	AdjustedBy       string    `json:"adjusted_by"`
	Timestamp        time.Time `json:"timestamp"`
}
