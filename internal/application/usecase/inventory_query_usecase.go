package usecase

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InventoryQueryUseCase consultas de solo lectura: inventario actual,
// historial de movimientos y de conteos.
type InventoryQueryUseCase struct {
	ledgerRepo   repository.LedgerRepository
	movementRepo repository.MovementRepository
	checkRepo    repository.CheckRepository
}

// NewInventoryQueryUseCase construye el caso de uso de consultas.
func NewInventoryQueryUseCase(
	ledgerRepo repository.LedgerRepository,
	movementRepo repository.MovementRepository,
	checkRepo repository.CheckRepository,
) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{
		ledgerRepo:   ledgerRepo,
		movementRepo: movementRepo,
		checkRepo:    checkRepo,
	}
}

// ListInventory inventario actual con datos del catálogo.
func (uc *InventoryQueryUseCase) ListInventory(keyword string, limit, offset int) ([]dto.LedgerItemDTO, error) {
	rows, err := uc.ledgerRepo.ListWithMaterial(keyword, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.LedgerItemDTO{
			MaterialID:      row.Material.ID,
			MaterialName:    row.Material.Name,
			Supplier:        row.Material.Supplier,
			Unit:            row.Material.Unit,
			CurrentQuantity: row.Entry.CurrentQuantity,
			MinQuantity:     row.Material.MinQuantity,
			MaxQuantity:     row.Material.MaxQuantity,
			LastUpdated:     row.Entry.LastUpdated,
		})
	}
	return items, nil
}

// ListMovements historial de movimientos con filtros de fecha, tipo,
// material y usuario.
func (uc *InventoryQueryUseCase) ListMovements(in dto.MovementListRequest) ([]dto.MovementItemDTO, error) {
	in.DefaultPage()
	filter := repository.MovementFilter{
		Kind:            in.Kind,
		MaterialKeyword: in.Material,
		UserKeyword:     in.User,
		Limit:           in.Limit,
		Offset:          in.Offset,
	}
	if in.From != "" {
		t, err := parseDate(in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &t
	}
	if in.To != "" {
		t, err := parseDate(in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Fecha sin hora: incluir el día completo.
		if len(in.To) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &t
	}
	rows, err := uc.movementRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.MovementItemDTO{
			ID:           row.Record.ID,
			Kind:         row.Record.Kind,
			Quantity:     row.Record.Quantity,
			MaterialName: row.MaterialName,
			Username:     row.Username,
			Note:         row.Record.Note,
			Timestamp:    row.Record.Timestamp,
		})
	}
	return items, nil
}

// ListChecks historial de conteos físicos, más reciente primero.
func (uc *InventoryQueryUseCase) ListChecks(keyword string, limit, offset int) ([]dto.CheckItemDTO, error) {
	rows, err := uc.checkRepo.List(keyword, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CheckItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.CheckItemDTO{
			ID:               row.Record.ID,
			MaterialName:     row.MaterialName,
			RealQuantity:     row.Record.RealQuantity,
			RecordedQuantity: row.Record.RecordedQuantity,
			AdjustedBy:       row.Username,
			Timestamp:        row.Record.Timestamp,
		})
	}
	return items, nil
}

// parseDate acepta RFC 3339 o fecha simple "2006-01-02".
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
