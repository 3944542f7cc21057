package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento (append-only).
func (r *MovementRepo) Create(record *entity.MovementRecord) error {
	query := `
		INSERT INTO movement_records (id, material_id, user_id, kind, quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.MaterialID, record.UserID, record.Kind,
		record.Quantity, record.Note, record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List historial de movimientos con nombre de material y usuario, filtrado
// por rango de fechas, tipo, material y usuario. Condiciones dinámicas en el
// estilo del visor original: cada filtro presente agrega un AND.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithNames, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT r.id, r.material_id, r.user_id, r.kind, r.quantity, r.note, r.created_at,
		       m.name, u.username
		FROM movement_records r
		JOIN materials m ON r.material_id = m.id
		JOIN users u ON r.user_id = u.id
		WHERE 1=1`)
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		b.WriteString(" AND " + strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}
	if filter.From != nil {
		add("r.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		add("r.created_at <= ?", *filter.To)
	}
	if filter.Kind != "" {
		add("r.kind = ?", filter.Kind)
	}
	if filter.MaterialKeyword != "" {
		add("m.name ILIKE '%' || ? || '%'", filter.MaterialKeyword)
	}
	if filter.UserKeyword != "" {
		add("u.username ILIKE '%' || ? || '%'", filter.UserKeyword)
	}
	b.WriteString(" ORDER BY r.created_at DESC")
	args = append(args, filter.Limit)
	b.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	b.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*repository.MovementWithNames
	for rows.Next() {
		var row repository.MovementWithNames
		if err := rows.Scan(
			&row.Record.ID, &row.Record.MaterialID, &row.Record.UserID,
			&row.Record.Kind, &row.Record.Quantity, &row.Record.Note, &row.Record.Timestamp,
			&row.MaterialName, &row.Username,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
