package stock

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad ledger + registro
// de cada mutación de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		movementRepo repository.MovementRepository,
		checkRepo repository.CheckRepository,
	) error) error
}

// Reconciler recalcula el estado de alertas de un material. El mutator lo
// invoca después del commit como efecto secundario best-effort: un fallo
// aquí jamás revierte la mutación ya confirmada.
type Reconciler interface {
	Reconcile(ctx context.Context, materialID string) error
}
