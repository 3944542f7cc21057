package alert

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Engine mantiene la tabla de alertas consistente con el ledger de un
// material. El patrón es resolver-y-recrear: cada reconciliación marca como
// resueltas todas las alertas pendientes del material y, si la cantidad sigue
// fuera de [min, max], inserta una alerta nueva con el snapshot actual. Así
// el invariante "a lo sumo una alerta sin resolver por material" se cumple
// sin carreras de leer-y-actualizar, y el historial queda auditable: cada
// fila refleja el stock que la disparó.
type Engine struct {
	txRunner  TxRunner
	alertRepo repository.AlertRepository
}

// NewEngine construye el motor de alertas. alertRepo va atado al pool (fuera
// de transacción) para MarkResolved y los listados.
func NewEngine(txRunner TxRunner, alertRepo repository.AlertRepository) *Engine {
	return &Engine{txRunner: txRunner, alertRepo: alertRepo}
}

// Reconcile recalcula el estado de alertas de un material en una sola
// transacción. Es idempotente: repetirla sin mutación intermedia deja el
// mismo estado de alertas pendientes (la alerta vieja resuelta y, si aplica,
// una nueva equivalente con timestamp fresco).
func (e *Engine) Reconcile(ctx context.Context, materialID string) error {
	return e.txRunner.RunAlert(ctx, func(
		ledgerRepo repository.LedgerRepository,
		materialRepo repository.MaterialRepository,
		alertRepo repository.AlertRepository,
	) error {
		entry, err := ledgerRepo.Get(materialID)
		if err != nil {
			return err
		}
		if entry == nil {
			// Sin historial de stock no puede haber condición de alerta.
			return nil
		}
		material, err := materialRepo.GetByID(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrMaterialNotFound
		}

		// Resuelve incondicionalmente las alertas pendientes antes de evaluar:
		// cubre también el caso en que cambió el tipo de alerta.
		if err := alertRepo.ResolveAllByMaterial(materialID); err != nil {
			return err
		}

		var alertType string
		switch {
		case entry.CurrentQuantity < material.MinQuantity:
			alertType = entity.AlertTypeLow
		case entry.CurrentQuantity > material.MaxQuantity:
			alertType = entity.AlertTypeHigh
		default:
			// Dentro de rango: solo queda confirmado el resolve.
			return nil
		}

		return alertRepo.Create(&entity.Alert{
			ID:              uuid.New().String(),
			MaterialID:      materialID,
			AlertType:       alertType,
			CurrentQuantity: entry.CurrentQuantity,
			GeneratedTime:   time.Now(),
			IsResolved:      false,
		})
	})
}

// MarkResolved marca una alerta como resuelta por acción del operador.
// No toca el ledger; devuelve domain.ErrNotFound si el ID no existe.
func (e *Engine) MarkResolved(ctx context.Context, alertID string) error {
	if alertID == "" {
		return domain.ErrInvalidInput
	}
	return e.alertRepo.MarkResolved(alertID)
}

// List devuelve las alertas con nombre de material, más recientes primero.
func (e *Engine) List(ctx context.Context, includeResolved bool, limit, offset int) ([]dto.AlertItemDTO, error) {
	rows, err := e.alertRepo.List(includeResolved, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.AlertItemDTO{
			ID:              row.Alert.ID,
			MaterialID:      row.Alert.MaterialID,
			MaterialName:    row.MaterialName,
			AlertType:       row.Alert.AlertType,
			CurrentQuantity: row.Alert.CurrentQuantity,
			GeneratedTime:   row.Alert.GeneratedTime,
			IsResolved:      row.Alert.IsResolved,
		})
	}
	return items, nil
}
