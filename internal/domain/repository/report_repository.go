package repository

// MonthlyReportRow resumen mensual de un material: stock inicial, entradas,
// salidas y stock final derivados del historial de movimientos.
type MonthlyReportRow struct {
	MaterialID    string
	MaterialName  string
	StartQuantity int64
	InQuantity    int64
	OutQuantity   int64
	EndQuantity   int64
}

// ReportRepository puerto de consultas de reportes.
type ReportRepository interface {
	// MonthlySummary agrega movimientos del mes (formato "2006-01") por material.
	MonthlySummary(month string) ([]*MonthlyReportRow, error)
}
