package dto

import "time"

// AlertItemDTO fila del listado de alertas.
type AlertItemDTO struct {
	ID              string    `json:"id"`
	MaterialID      string    `json:"material_id"`
	MaterialName    string    `json:"material_name"`
	AlertType       string    `json:"alert_type"` // low | high
	CurrentQuantity int64     `json:"current_quantity"`
	GeneratedTime   time.Time `json:"generated_time"`
	IsResolved      bool      `json:"is_resolved"`
}
