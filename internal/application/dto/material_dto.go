package dto

import "time"

// CreateMaterialRequest body para POST /api/materials.
type CreateMaterialRequest struct {
	Name        string `json:"name"`
	Supplier    string `json:"supplier"`
	Unit        string `json:"unit"`
	MinQuantity int64  `json:"min_quantity"`
	MaxQuantity int64  `json:"max_quantity"`
	Note        string `json:"note,omitempty"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id.
type UpdateMaterialRequest struct {
	Name        string `json:"name"`
	Supplier    string `json:"supplier"`
	Unit        string `json:"unit"`
	MinQuantity int64  `json:"min_quantity"`
	MaxQuantity int64  `json:"max_quantity"`
	Note        string `json:"note,omitempty"`
}

// MaterialResponse material del catálogo.
type MaterialResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Supplier    string    `json:"supplier"`
	Unit        string    `json:"unit"`
	MinQuantity int64     `json:"min_quantity"`
	MaxQuantity int64     `json:"max_quantity"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
