package dto

// MonthlyReportRowDTO fila del reporte mensual por material.
type MonthlyReportRowDTO struct {
	MaterialID    string `json:"material_id"`
	MaterialName  string `json:"material_name"`
	StartQuantity int64  `json:"start_quantity"`
	InQuantity    int64  `json:"in_quantity"`
	OutQuantity   int64  `json:"out_quantity"`
	EndQuantity   int64  `json:"end_quantity"`
}
