package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de reportes sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// MonthlySummary agrega el historial de movimientos del mes (formato "2006-01")
// por material: stock inicial (suma con signo de todo lo anterior al mes),
// entradas y salidas del mes, y stock final derivado.
func (r *ReportRepo) MonthlySummary(month string) ([]*repository.MonthlyReportRow, error) {
	query := `
		SELECT m.id, m.name,
		       COALESCE(start_qty.qty, 0) AS start_quantity,
		       COALESCE(in_qty.qty, 0)    AS in_quantity,
		       COALESCE(out_qty.qty, 0)   AS out_quantity,
		       COALESCE(start_qty.qty, 0) + COALESCE(in_qty.qty, 0) - COALESCE(out_qty.qty, 0) AS end_quantity
		FROM materials m
		LEFT JOIN (
			SELECT material_id, SUM(quantity) AS qty
			FROM movement_records
			WHERE kind = 'inbound' AND to_char(created_at, 'YYYY-MM') = $1
			GROUP BY material_id
		) in_qty ON m.id = in_qty.material_id
		LEFT JOIN (
			SELECT material_id, SUM(quantity) AS qty
			FROM movement_records
			WHERE kind = 'outbound' AND to_char(created_at, 'YYYY-MM') = $1
			GROUP BY material_id
		) out_qty ON m.id = out_qty.material_id
		LEFT JOIN (
			SELECT material_id,
			       SUM(CASE WHEN kind = 'inbound' THEN quantity ELSE -quantity END) AS qty
			FROM movement_records
			WHERE created_at < to_date($1, 'YYYY-MM')
			GROUP BY material_id
		) start_qty ON m.id = start_qty.material_id
		ORDER BY m.name`
	rows, err := r.q.Query(context.Background(), query, month)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	defer rows.Close()

	var out []*repository.MonthlyReportRow
	for rows.Next() {
		var row repository.MonthlyReportRow
		if err := rows.Scan(
			&row.MaterialID, &row.MaterialName,
			&row.StartQuantity, &row.InQuantity, &row.OutQuantity, &row.EndQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
