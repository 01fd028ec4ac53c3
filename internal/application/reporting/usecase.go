package reporting

import (
	"context"
	"time"

	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/bloodstock"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

// ReportingUseCase rollups de solo lectura por banco y por ciudad.
// Sin caché: cada llamada recalcula sobre el store.
type ReportingUseCase struct {
	invRepo  repository.BloodInventoryRepository
	bankRepo repository.BloodBankRepository
	cityRepo repository.CityRepository
	pdfGen   SummaryPDFGenerator
}

// NewReportingUseCase construye el caso de uso.
func NewReportingUseCase(
	invRepo repository.BloodInventoryRepository,
	bankRepo repository.BloodBankRepository,
	cityRepo repository.CityRepository,
	pdfGen SummaryPDFGenerator,
) *ReportingUseCase {
	return &ReportingUseCase{invRepo: invRepo, bankRepo: bankRepo, cityRepo: cityRepo, pdfGen: pdfGen}
}

// BankStats tipos de sangre en stock de un banco y detalle por tipo.
func (uc *ReportingUseCase) BankStats(ctx context.Context, bankID string) (*dto.BankStatsResponse, error) {
	bank, err := uc.bankRepo.GetByID(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrBankNotFound
	}
	stats, err := uc.invRepo.GroupByTypeForBank(ctx, bankID)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]dto.TypeStatsItem, len(stats))
	for _, s := range stats {
		byType[string(s.BloodType)] = dto.TypeStatsItem{
			Quantity: s.TotalQuantity,
			Status:   string(s.Status),
		}
	}
	return &dto.BankStatsResponse{
		BloodBankID:     bankID,
		TotalBloodTypes: len(stats),
		InventoryByType: byType,
		LastUpdated:     time.Now(),
	}, nil
}

// CitySummary acumulado por tipo de sangre en todos los bancos activos de la
// ciudad: unidades totales, bancos que aportan y cuántos con status distinto
// de UNAVAILABLE.
func (uc *ReportingUseCase) CitySummary(ctx context.Context, cityID string) (*dto.CitySummaryResponse, error) {
	city, err := uc.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.ErrNotFound
	}
	stats, err := uc.invRepo.GroupByTypeForCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	totalBanks, err := uc.bankRepo.CountActiveByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]dto.CityTypeSummary, len(stats))
	for _, s := range stats {
		acc := summary[string(s.BloodType)]
		acc.TotalQuantity += s.TotalQuantity
		acc.BloodBanks += s.RecordCount
		if s.Status != bloodstock.StatusUnavailable {
			acc.AvailableCount += s.RecordCount
		}
		summary[string(s.BloodType)] = acc
	}
	return &dto.CitySummaryResponse{
		CityID:       cityID,
		TotalBanks:   totalBanks,
		TypesSummary: summary,
		LastUpdated:  time.Now(),
	}, nil
}

// CitySummaryPDF genera el reporte imprimible del resumen de ciudad.
func (uc *ReportingUseCase) CitySummaryPDF(ctx context.Context, cityID string) ([]byte, error) {
	city, err := uc.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.ErrNotFound
	}
	summary, err := uc.CitySummary(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateCitySummaryPDF(ctx, city, summary)
}
