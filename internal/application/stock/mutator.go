package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Mutator aplica cambios de stock (movimientos y conteos) de forma
// transaccional: actualiza el ledger y agrega el registro en una sola
// transacción con bloqueo de fila, y después del commit dispara la
// reconciliación de alertas del material.
type Mutator struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	reconciler   Reconciler
	log          *logger.Logger
}

// NewMutator construye el mutator de stock.
func NewMutator(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	reconciler Reconciler,
	log *logger.Logger,
) *Mutator {
	return &Mutator{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		reconciler:   reconciler,
		log:          log,
	}
}

// MovementInput entrada para ApplyMovement.
type MovementInput struct {
	MaterialID string
	Kind       string // inbound | outbound
	Quantity   int64  // debe ser > 0
	UserID     string
	Note       string
}

// CheckInput entrada para ApplyCheck.
type CheckInput struct {
	MaterialID   string
	RealQuantity int64 // cantidad física contada, debe ser >= 0
	UserID       string
}

// ApplyMovement aplica una entrada o salida de stock y devuelve la cantidad
// resultante del ledger.
//
// Reglas:
//   - una entrada sobre un material sin fila de ledger la crea con la cantidad
//     del movimiento; una salida en ese caso falla con ErrNoStockRecord
//   - una salida mayor al stock actual falla con ErrInsufficientStock y deja
//     el ledger intacto
//
// Ledger y registro de movimiento se escriben en una sola transacción; la
// reconciliación de alertas corre después del commit y un fallo ahí solo se
// registra en el log.
func (m *Mutator) ApplyMovement(ctx context.Context, input MovementInput) (int64, error) {
	if input.Kind != entity.MovementKindInbound && input.Kind != entity.MovementKindOutbound {
		return 0, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}

	material, err := m.materialRepo.GetByID(input.MaterialID)
	if err != nil {
		return 0, storageErr(err)
	}
	if material == nil {
		return 0, domain.ErrMaterialNotFound
	}

	now := time.Now()
	var newQuantity int64

	err = m.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		movementRepo repository.MovementRepository,
		_ repository.CheckRepository,
	) error {
		// Bloquea la fila del ledger (SELECT FOR UPDATE) para serializar
		// mutadores concurrentes del mismo material.
		entry, err := ledgerRepo.GetForUpdate(input.MaterialID)
		if err != nil {
			return err
		}
		switch {
		case entry == nil && input.Kind == entity.MovementKindInbound:
			// Primera entrada del material: inicializa la fila de ledger.
			entry = &entity.LedgerEntry{
				MaterialID:      input.MaterialID,
				CurrentQuantity: input.Quantity,
			}
		case entry == nil:
			return domain.ErrNoStockRecord
		case input.Kind == entity.MovementKindInbound:
			entry.CurrentQuantity += input.Quantity
		default: // salida
			if input.Quantity > entry.CurrentQuantity {
				return domain.ErrInsufficientStock
			}
			entry.CurrentQuantity -= input.Quantity
		}
		entry.LastUpdated = now
		if err := ledgerRepo.Upsert(entry); err != nil {
			return err
		}
		record := &entity.MovementRecord{
			ID:         uuid.New().String(),
			MaterialID: input.MaterialID,
			UserID:     input.UserID,
			Kind:       input.Kind,
			Quantity:   input.Quantity,
			Note:       input.Note,
			Timestamp:  now,
		}
		if err := movementRepo.Create(record); err != nil {
			return err
		}
		newQuantity = entry.CurrentQuantity
		return nil
	})
	if err != nil {
		return 0, storageErr(err)
	}

	m.reconcileAfterCommit(ctx, input.MaterialID)
	return newQuantity, nil
}

// ApplyCheck fija el ledger en la cantidad física contada y agrega el registro
// de conteo con el valor que el sistema tenía antes del ajuste.
//
// A diferencia de una entrada, un conteo sobre un material sin fila de ledger
// se rechaza con ErrNoStockRecord: un conteo corrige stock existente, no lo
// inicializa.
func (m *Mutator) ApplyCheck(ctx context.Context, input CheckInput) (*entity.CheckRecord, error) {
	if input.RealQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	material, err := m.materialRepo.GetByID(input.MaterialID)
	if err != nil {
		return nil, storageErr(err)
	}
	if material == nil {
		return nil, domain.ErrMaterialNotFound
	}

	now := time.Now()
	var record *entity.CheckRecord

	err = m.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		_ repository.MovementRepository,
		checkRepo repository.CheckRepository,
	) error {
		entry, err := ledgerRepo.GetForUpdate(input.MaterialID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNoStockRecord
		}
		recorded := entry.CurrentQuantity

		entry.CurrentQuantity = input.RealQuantity
		entry.LastUpdated = now
		if err := ledgerRepo.Upsert(entry); err != nil {
			return err
		}
		record = &entity.CheckRecord{
			ID:               uuid.New().String(),
			MaterialID:       input.MaterialID,
			RealQuantity:     input.RealQuantity,
			RecordedQuantity: recorded,
			AdjustedByUser:   input.UserID,
			Timestamp:        now,
		}
		return checkRepo.Create(record)
	})
	if err != nil {
		return nil, storageErr(err)
	}

	m.reconcileAfterCommit(ctx, input.MaterialID)
	return record, nil
}

// reconcileAfterCommit dispara la reconciliación de alertas. La mutación ya
// está confirmada: un fallo aquí se registra y no se propaga al caller.
func (m *Mutator) reconcileAfterCommit(ctx context.Context, materialID string) {
	if err := m.reconciler.Reconcile(ctx, materialID); err != nil {
		m.log.Error().Err(err).
			Str("material_id", materialID).
			Msg("reconciliación de alertas fallida tras mutación de stock")
	}
}

// storageErr envuelve fallos de transacción/conexión como ErrStorage,
// dejando pasar los errores de dominio tal cual.
func storageErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNoStockRecord),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrMaterialNotFound),
		errors.Is(err, domain.ErrInvalidQuantity):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
}
