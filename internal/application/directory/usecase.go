// Package directory expone el catálogo de ciudades y bancos de sangre.
// Solo lectura: las altas y cambios del directorio se cargan por fuera de la API.
package directory

import (
	"context"

	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

// DirectoryUseCase consultas del catálogo de ciudades y bancos.
type DirectoryUseCase struct {
	bankRepo repository.BloodBankRepository
	cityRepo repository.CityRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(bankRepo repository.BloodBankRepository, cityRepo repository.CityRepository) *DirectoryUseCase {
	return &DirectoryUseCase{bankRepo: bankRepo, cityRepo: cityRepo}
}

// ListBanks lista bancos según el filtro, con total para paginación.
func (uc *DirectoryUseCase) ListBanks(ctx context.Context, filter repository.BankFilter) (*dto.BankListResponse, error) {
	page := dto.PageRequest{Limit: filter.Limit, Offset: filter.Offset}
	page.DefaultPage()
	filter.Limit, filter.Offset = page.Limit, page.Offset

	banks, total, err := uc.bankRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankResponse, 0, len(banks))
	for _, b := range banks {
		items = append(items, toBankResponse(b))
	}
	return &dto.BankListResponse{
		Banks: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetBank obtiene un banco por id.
func (uc *DirectoryUseCase) GetBank(ctx context.Context, id string) (*dto.BankResponse, error) {
	bank, err := uc.bankRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrBankNotFound
	}
	resp := toBankResponse(bank)
	return &resp, nil
}

// ListCities lista todas las ciudades registradas.
func (uc *DirectoryUseCase) ListCities(ctx context.Context) ([]dto.CityResponse, error) {
	cities, err := uc.cityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CityResponse, 0, len(cities))
	for _, c := range cities {
		items = append(items, dto.CityResponse{ID: c.ID, Name: c.Name, State: c.State})
	}
	return items, nil
}

// GetCity obtiene una ciudad por id.
func (uc *DirectoryUseCase) GetCity(ctx context.Context, id string) (*dto.CityResponse, error) {
	city, err := uc.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CityResponse{ID: city.ID, Name: city.Name, State: city.State}, nil
}

func toBankResponse(b *entity.BloodBank) dto.BankResponse {
	return dto.BankResponse{
		ID:             b.ID,
		CityID:         b.CityID,
		HospitalName:   b.HospitalName,
		Name:           b.Name,
		Address:        b.Address,
		Phone:          b.Phone,
		EmergencyPhone: b.EmergencyPhone,
		Is24x7:         b.Is24x7,
		IsActive:       b.IsActive,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		CreatedAt:      b.CreatedAt,
	}
}
