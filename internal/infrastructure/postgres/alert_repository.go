package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta nueva (sin resolver).
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, material_id, alert_type, current_quantity, generated_time, is_resolved)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.MaterialID, alert.AlertType,
		alert.CurrentQuantity, alert.GeneratedTime, alert.IsResolved,
	)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

// ResolveAllByMaterial marca como resueltas todas las alertas pendientes del material.
func (r *AlertRepo) ResolveAllByMaterial(materialID string) error {
	query := `UPDATE alerts SET is_resolved = TRUE WHERE material_id = $1 AND is_resolved = FALSE`
	if _, err := r.q.Exec(context.Background(), query, materialID); err != nil {
		return fmt.Errorf("resolve alerts: %w", err)
	}
	return nil
}

// MarkResolved marca exactamente una alerta por ID.
func (r *AlertRepo) MarkResolved(alertID string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE alerts SET is_resolved = TRUE WHERE id = $1`, alertID)
	if err != nil {
		return fmt.Errorf("mark alert resolved: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListUnresolvedByMaterial alertas pendientes de un material.
func (r *AlertRepo) ListUnresolvedByMaterial(materialID string) ([]*entity.Alert, error) {
	query := `
		SELECT id, material_id, alert_type, current_quantity, generated_time, is_resolved
		FROM alerts WHERE material_id = $1 AND is_resolved = FALSE
		ORDER BY generated_time DESC`
	rows, err := r.q.Query(context.Background(), query, materialID)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.MaterialID, &a.AlertType, &a.CurrentQuantity, &a.GeneratedTime, &a.IsResolved); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// List alertas con nombre de material, más recientes primero.
func (r *AlertRepo) List(includeResolved bool, limit, offset int) ([]*repository.AlertWithMaterial, error) {
	query := `
		SELECT a.id, a.material_id, a.alert_type, a.current_quantity, a.generated_time, a.is_resolved,
		       m.name
		FROM alerts a
		JOIN materials m ON a.material_id = m.id
		WHERE ($1 OR a.is_resolved = FALSE)
		ORDER BY a.generated_time DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, includeResolved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var out []*repository.AlertWithMaterial
	for rows.Next() {
		var row repository.AlertWithMaterial
		if err := rows.Scan(
			&row.Alert.ID, &row.Alert.MaterialID, &row.Alert.AlertType,
			&row.Alert.CurrentQuantity, &row.Alert.GeneratedTime, &row.Alert.IsResolved,
			&row.MaterialName,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
