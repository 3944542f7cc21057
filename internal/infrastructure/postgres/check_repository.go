package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CheckRepository = (*CheckRepo)(nil)

// CheckRepo implementación de CheckRepository sobre PostgreSQL (usable con pool o tx).
type CheckRepo struct {
	q Querier
}

// NewCheckRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCheckRepository(q Querier) *CheckRepo {
	return &CheckRepo{q: q}
}

// Create persiste un registro de conteo (append-only).
func (r *CheckRepo) Create(record *entity.CheckRecord) error {
	query := `
		INSERT INTO check_records (id, material_id, real_quantity, recorded_quantity, adjusted_by_user, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.MaterialID, record.RealQuantity,
		record.RecordedQuantity, record.AdjustedByUser, record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create check: %w", err)
	}
	return nil
}

// List historial de conteos con nombre de material y usuario, filtrado por
// nombre de material, más reciente primero.
func (r *CheckRepo) List(keyword string, limit, offset int) ([]*repository.CheckWithNames, error) {
	query := `
		SELECT c.id, c.material_id, c.real_quantity, c.recorded_quantity, c.adjusted_by_user, c.created_at,
		       m.name, u.username
		FROM check_records c
		JOIN materials m ON c.material_id = m.id
		JOIN users u ON c.adjusted_by_user = u.id
		WHERE ($1 = '' OR m.name ILIKE '%' || $1 || '%')
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, keyword, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	defer rows.Close()

	var out []*repository.CheckWithNames
	for rows.Next() {
		var row repository.CheckWithNames
		if err := rows.Scan(
			&row.Record.ID, &row.Record.MaterialID, &row.Record.RealQuantity,
			&row.Record.RecordedQuantity, &row.Record.AdjustedByUser, &row.Record.Timestamp,
			&row.MaterialName, &row.Username,
		); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
