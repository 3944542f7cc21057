package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/alert"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and alert.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ alert.TxRunner = (*TxRunner)(nil)

// TxRunner versión en memoria del runner transaccional: ejecuta el callback
// con repos sobre el mismo Store. No hay rollback real; en los tests los
// callbacks que fallan lo hacen antes de escribir, igual que la variante SQL
// deja la fila bloqueada sin modificar.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los repos de mutación de stock.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	movementRepo repository.MovementRepository,
	checkRepo repository.CheckRepository,
) error) error {
	return fn(
		NewLedgerRepository(r.store),
		NewMovementRepository(r.store),
		NewCheckRepository(r.store),
	)
}

// RunAlert ejecuta fn con los repos de reconciliación de alertas.
func (r *TxRunner) RunAlert(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	materialRepo repository.MaterialRepository,
	alertRepo repository.AlertRepository,
) error) error {
	return fn(
		NewLedgerRepository(r.store),
		NewMaterialRepository(r.store),
		NewAlertRepository(r.store),
	)
}
