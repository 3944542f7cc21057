package alert

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta la reconciliación de alertas dentro de una transacción
// propia, separada de la mutación de stock que la disparó.
type TxRunner interface {
	RunAlert(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		materialRepo repository.MaterialRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
