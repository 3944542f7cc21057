package usecase

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReportUseCase reportes agregados sobre el historial de movimientos.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// MonthlySummary reporte mensual por material: stock inicial, entradas,
// salidas y stock final. month en formato "2006-01".
func (uc *ReportUseCase) MonthlySummary(month string) ([]dto.MonthlyReportRowDTO, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.MonthlySummary(month)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyReportRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.MonthlyReportRowDTO{
			MaterialID:    row.MaterialID,
			MaterialName:  row.MaterialName,
			StartQuantity: row.StartQuantity,
			InQuantity:    row.InQuantity,
			OutQuantity:   row.OutQuantity,
			EndQuantity:   row.EndQuantity,
		})
	}
	return out, nil
}
