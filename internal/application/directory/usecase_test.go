package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/red-vital/internal/application/directory"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

type fakeBankRepo struct {
	banks      []*entity.BloodBank
	lastFilter repository.BankFilter
}

func (f *fakeBankRepo) GetByID(_ context.Context, id string) (*entity.BloodBank, error) {
	for _, b := range f.banks {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBankRepo) List(_ context.Context, filter repository.BankFilter) ([]*entity.BloodBank, int, error) {
	f.lastFilter = filter
	return f.banks, len(f.banks), nil
}

func (f *fakeBankRepo) ListWithInventory(_ context.Context, _ repository.AvailabilityLookup) ([]*repository.BankWithInventory, error) {
	return nil, nil
}

func (f *fakeBankRepo) CountActiveByCity(_ context.Context, _ string) (int, error) {
	return len(f.banks), nil
}

type fakeCityRepo struct {
	cities []*entity.City
}

func (f *fakeCityRepo) GetByID(_ context.Context, id string) (*entity.City, error) {
	for _, c := range f.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCityRepo) List(_ context.Context) ([]*entity.City, error) {
	return f.cities, nil
}

func newFixture() (*directory.DirectoryUseCase, *fakeBankRepo) {
	bankRepo := &fakeBankRepo{banks: []*entity.BloodBank{
		{ID: "bank-1", CityID: "city-1", Name: "Banco Central", IsActive: true},
	}}
	cityRepo := &fakeCityRepo{cities: []*entity.City{
		{ID: "city-1", Name: "Bogotá", State: "Cundinamarca"},
	}}
	return directory.NewDirectoryUseCase(bankRepo, cityRepo), bankRepo
}

func TestListBanks_AplicaPaginacionPorDefecto(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.ListBanks(context.Background(), repository.BankFilter{})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastFilter.Limit, "sin limit el listado usa la página default")
	assert.Equal(t, 20, resp.Page.Limit, "los metadatos de página reflejan el limit efectivo")
	assert.Equal(t, 1, resp.Page.Total)
}

func TestListBanks_AcotaElLimitAlMaximo(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.ListBanks(context.Background(), repository.BankFilter{Limit: 500, Offset: 40})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit)
	assert.Equal(t, 40, repo.lastFilter.Offset)
	assert.Equal(t, 100, resp.Page.Limit)
}

func TestGetBank_Inexistente(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.GetBank(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrBankNotFound)
}

func TestGetCity_YListado(t *testing.T) {
	uc, _ := newFixture()

	city, err := uc.GetCity(context.Background(), "city-1")
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", city.Name)

	_, err = uc.GetCity(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cities, err := uc.ListCities(context.Background())
	require.NoError(t, err)
	assert.Len(t, cities, 1)
}
