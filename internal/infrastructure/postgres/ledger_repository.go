package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador de ledger. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Get obtiene la fila de stock de un material; (nil, nil) si no existe.
func (r *LedgerRepo) Get(materialID string) (*entity.LedgerEntry, error) {
	return r.get(materialID, false)
}

// GetForUpdate obtiene la fila de stock y la bloquea (SELECT FOR UPDATE).
// Devuelve (nil, nil) si el material no tiene fila: la ausencia es significativa.
func (r *LedgerRepo) GetForUpdate(materialID string) (*entity.LedgerEntry, error) {
	return r.get(materialID, true)
}

func (r *LedgerRepo) get(materialID string, forUpdate bool) (*entity.LedgerEntry, error) {
	query := `
		SELECT material_id, current_quantity, last_updated
		FROM inventory_ledger WHERE material_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var e entity.LedgerEntry
	err := r.q.QueryRow(context.Background(), query, materialID).Scan(
		&e.MaterialID, &e.CurrentQuantity, &e.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger: %w", err)
	}
	return &e, nil
}

// Upsert inserta o actualiza la cantidad de stock de un material.
func (r *LedgerRepo) Upsert(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO inventory_ledger (material_id, current_quantity, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (material_id)
		DO UPDATE SET current_quantity = EXCLUDED.current_quantity, last_updated = EXCLUDED.last_updated`
	_, err := r.q.Exec(context.Background(), query,
		entry.MaterialID, entry.CurrentQuantity, entry.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert ledger: %w", err)
	}
	return nil
}

// ListWithMaterial stock actual con datos del catálogo, filtrado por
// nombre/proveedor (pantalla de consulta de inventario).
func (r *LedgerRepo) ListWithMaterial(keyword string, limit, offset int) ([]*repository.LedgerWithMaterial, error) {
	query := `
		SELECT l.material_id, l.current_quantity, l.last_updated,
		       m.id, m.name, m.supplier, m.unit, m.min_quantity, m.max_quantity, m.note, m.created_at, m.updated_at
		FROM inventory_ledger l
		JOIN materials m ON l.material_id = m.id
		WHERE ($1 = '' OR m.name ILIKE '%' || $1 || '%' OR m.supplier ILIKE '%' || $1 || '%')
		ORDER BY m.name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, keyword, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()

	var out []*repository.LedgerWithMaterial
	for rows.Next() {
		var row repository.LedgerWithMaterial
		if err := rows.Scan(
			&row.Entry.MaterialID, &row.Entry.CurrentQuantity, &row.Entry.LastUpdated,
			&row.Material.ID, &row.Material.Name, &row.Material.Supplier, &row.Material.Unit,
			&row.Material.MinQuantity, &row.Material.MaxQuantity, &row.Material.Note,
			&row.Material.CreatedAt, &row.Material.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
