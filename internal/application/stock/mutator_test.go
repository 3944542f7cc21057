package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/alert"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fixture arma el mutator completo sobre el store en memoria, con el motor de
// alertas real como reconciler. Los repos expuestos sirven para inspeccionar
// el estado resultante.
type fixture struct {
	mutator  *stock.Mutator
	ledger   *memory.LedgerRepo
	moves    *memory.MovementRepo
	checks   *memory.CheckRepo
	alerts   *memory.AlertRepo
	material *memory.MaterialRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	txRunner := memory.NewTxRunner(store)
	alertRepo := memory.NewAlertRepository(store)
	engine := alert.NewEngine(txRunner, alertRepo)
	materialRepo := memory.NewMaterialRepository(store)
	return &fixture{
		mutator:  stock.NewMutator(txRunner, materialRepo, engine, logger.Nop()),
		ledger:   memory.NewLedgerRepository(store),
		moves:    memory.NewMovementRepository(store),
		checks:   memory.NewCheckRepository(store),
		alerts:   alertRepo,
		material: materialRepo,
	}
}

// seedMaterial crea un material de catálogo con umbrales [min, max].
func (f *fixture) seedMaterial(t *testing.T, min, max int64) string {
	t.Helper()
	m := &entity.Material{
		ID:          uuid.New().String(),
		Name:        "Tornillo M10",
		Supplier:    "Aceros del Norte",
		Unit:        "unidad",
		MinQuantity: min,
		MaxQuantity: max,
	}
	require.NoError(t, f.material.Create(m))
	return m.ID
}

// seedStock asegura una fila de ledger con la cantidad dada vía una entrada.
func (f *fixture) seedStock(t *testing.T, materialID string, qty int64) {
	t.Helper()
	_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindInbound,
		Quantity:   qty,
	})
	require.NoError(t, err)
}

func (f *fixture) currentQuantity(t *testing.T, materialID string) int64 {
	t.Helper()
	entry, err := f.ledger.Get(materialID)
	require.NoError(t, err)
	require.NotNil(t, entry, "debe existir fila de ledger")
	return entry.CurrentQuantity
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement — entradas
// ──────────────────────────────────────────────────────────────────────────────

// Primera entrada de un material sin historial: debe crear la fila de ledger
// con la cantidad del movimiento y dejar el registro.
func TestApplyMovement_PrimeraEntradaInicializaLedger(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 10, 100)

	qty, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindInbound,
		Quantity:   30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), qty)
	assert.Equal(t, int64(30), f.currentQuantity(t, materialID))

	records, err := f.moves.List(repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1, "debe quedar exactamente un registro de movimiento")
	assert.Equal(t, entity.MovementKindInbound, records[0].Record.Kind)
	assert.Equal(t, int64(30), records[0].Record.Quantity)
}

// Entradas sucesivas acumulan sobre la misma fila.
func TestApplyMovement_EntradasAcumulan(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 10, 100)
	f.seedStock(t, materialID, 30)

	qty, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindInbound,
		Quantity:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), qty)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement — salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_SalidaDescuentaStock(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 5, 100)
	f.seedStock(t, materialID, 50)

	qty, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindOutbound,
		Quantity:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), qty)
}

// Una salida puede dejar el stock exactamente en cero.
func TestApplyMovement_SalidaHastaCero(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 0, 100)
	f.seedStock(t, materialID, 25)

	qty, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindOutbound,
		Quantity:   25,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)
}

// Salida sobre material sin fila de ledger: ErrNoStockRecord, sin crear nada.
func TestApplyMovement_SalidaSinHistorial_NoStockRecord(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 10, 100)

	_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindOutbound,
		Quantity:   5,
	})
	assert.ErrorIs(t, err, domain.ErrNoStockRecord)

	entry, err := f.ledger.Get(materialID)
	require.NoError(t, err)
	assert.Nil(t, entry, "la salida rechazada no debe crear fila de ledger")

	records, err := f.moves.List(repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, records, "la salida rechazada no debe dejar registro")
}

// Salida mayor al stock actual: ErrInsufficientStock y el ledger queda intacto.
func TestApplyMovement_SalidaInsuficiente_LedgerIntacto(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 5, 100)
	f.seedStock(t, materialID, 10)

	_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindOutbound,
		Quantity:   11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), f.currentQuantity(t, materialID),
		"el stock no debe cambiar tras una salida rechazada")

	records, err := f.moves.List(repository.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1, "solo la entrada inicial debe estar registrada")
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement — validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 10, 100)

	for _, qty := range []int64{0, -5} {
		_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
			MaterialID: materialID,
			Kind:       entity.MovementKindInbound,
			Quantity:   qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d debe rechazarse", qty)
	}
}

func TestApplyMovement_TipoInvalido(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 10, 100)

	_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       "transfer",
		Quantity:   5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_MaterialInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: uuid.New().String(),
		Kind:       entity.MovementKindInbound,
		Quantity:   5,
	})
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyCheck — conteos
// ──────────────────────────────────────────────────────────────────────────────

// Un conteo fija el ledger en el valor físico y guarda el snapshot del valor
// que el sistema tenía antes del ajuste.
func TestApplyCheck_AjustaYGuardaSnapshot(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 5, 100)
	f.seedStock(t, materialID, 40)

	record, err := f.mutator.ApplyCheck(context.Background(), stock.CheckInput{
		MaterialID:   materialID,
		RealQuantity: 37,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(37), record.RealQuantity)
	assert.Equal(t, int64(40), record.RecordedQuantity,
		"el registro debe conservar la cantidad que el sistema tenía")
	assert.Equal(t, int64(37), f.currentQuantity(t, materialID))

	checks, err := f.checks.List("", 0, 0)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, record.ID, checks[0].Record.ID)
}

// Un conteo puede ajustar a cero; el ledger conserva su fila.
func TestApplyCheck_AjusteACero(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 0, 100)
	f.seedStock(t, materialID, 15)

	record, err := f.mutator.ApplyCheck(context.Background(), stock.CheckInput{
		MaterialID:   materialID,
		RealQuantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), record.RecordedQuantity)
	assert.Equal(t, int64(0), f.currentQuantity(t, materialID))
}

// Un conteo sobre material sin historial se rechaza: corrige stock
// existente, no lo inicializa.
func TestApplyCheck_SinHistorial_NoStockRecord(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 5, 100)

	_, err := f.mutator.ApplyCheck(context.Background(), stock.CheckInput{
		MaterialID:   materialID,
		RealQuantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNoStockRecord)

	checks, err := f.checks.List("", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestApplyCheck_CantidadNegativa(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 5, 100)
	f.seedStock(t, materialID, 10)

	_, err := f.mutator.ApplyCheck(context.Background(), stock.CheckInput{
		MaterialID:   materialID,
		RealQuantity: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestApplyCheck_MaterialInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.mutator.ApplyCheck(context.Background(), stock.CheckInput{
		MaterialID:   uuid.New().String(),
		RealQuantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Integración con el motor de alertas
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: una salida deja el stock bajo el mínimo y la
// reconciliación post-commit debe dejar exactamente una alerta "low" con el
// snapshot de la cantidad que la disparó.
func TestApplyMovement_SalidaBajoMinimo_GeneraAlertaLow(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 20, 100)
	f.seedStock(t, materialID, 50)

	_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindOutbound,
		Quantity:   40,
	})
	require.NoError(t, err)

	pending, err := f.alerts.ListUnresolvedByMaterial(materialID)
	require.NoError(t, err)
	require.Len(t, pending, 1, "debe haber exactamente una alerta pendiente")
	assert.Equal(t, entity.AlertTypeLow, pending[0].AlertType)
	assert.Equal(t, int64(10), pending[0].CurrentQuantity,
		"la alerta debe llevar el snapshot de la cantidad que la disparó")
}

// Una entrada que devuelve el stock al rango debe dejar cero alertas pendientes.
func TestApplyMovement_EntradaResuelveAlerta(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 20, 100)
	f.seedStock(t, materialID, 50)

	_, err := f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindOutbound,
		Quantity:   40,
	})
	require.NoError(t, err)

	_, err = f.mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindInbound,
		Quantity:   30,
	})
	require.NoError(t, err)

	pending, err := f.alerts.ListUnresolvedByMaterial(materialID)
	require.NoError(t, err)
	assert.Empty(t, pending, "stock de vuelta en rango no debe dejar alertas pendientes")
}

// Un conteo que infla el stock sobre el máximo dispara alerta "high".
func TestApplyCheck_SobreMaximo_GeneraAlertaHigh(t *testing.T) {
	f := newFixture(t)
	materialID := f.seedMaterial(t, 5, 60)
	f.seedStock(t, materialID, 30)

	_, err := f.mutator.ApplyCheck(context.Background(), stock.CheckInput{
		MaterialID:   materialID,
		RealQuantity: 80,
	})
	require.NoError(t, err)

	pending, err := f.alerts.ListUnresolvedByMaterial(materialID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, entity.AlertTypeHigh, pending[0].AlertType)
	assert.Equal(t, int64(80), pending[0].CurrentQuantity)
}

// failingReconciler simula la reconciliación cayéndose después del commit.
type failingReconciler struct{}

func (failingReconciler) Reconcile(ctx context.Context, materialID string) error {
	return errors.New("alert store caído")
}

// La mutación ya confirmada no debe fallar porque la reconciliación falle.
func TestApplyMovement_ReconciliacionFallida_NoRevierte(t *testing.T) {
	store := memory.NewStore()
	materialRepo := memory.NewMaterialRepository(store)
	mutator := stock.NewMutator(memory.NewTxRunner(store), materialRepo, failingReconciler{}, logger.Nop())

	materialID := uuid.New().String()
	require.NoError(t, materialRepo.Create(&entity.Material{
		ID: materialID, Name: "Tuerca M8", MinQuantity: 1, MaxQuantity: 100,
	}))

	qty, err := mutator.ApplyMovement(context.Background(), stock.MovementInput{
		MaterialID: materialID,
		Kind:       entity.MovementKindInbound,
		Quantity:   12,
	})
	require.NoError(t, err, "el fallo del reconciler no debe propagarse")
	assert.Equal(t, int64(12), qty)

	entry, err := memory.NewLedgerRepository(store).Get(materialID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, int64(12), entry.CurrentQuantity, "la mutación debe quedar confirmada")
}
