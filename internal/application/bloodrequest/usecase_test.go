package bloodrequest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/red-vital/internal/application/bloodrequest"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

type fakeRequestRepo struct {
	created    []*entity.BloodRequest
	lastFilter repository.RequestFilter
}

func (f *fakeRequestRepo) Create(_ context.Context, req *entity.BloodRequest) error {
	f.created = append(f.created, req)
	return nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (*entity.BloodRequest, error) {
	for _, r := range f.created {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestRepo) List(_ context.Context, filter repository.RequestFilter) ([]*entity.BloodRequest, error) {
	f.lastFilter = filter
	var out []*entity.BloodRequest
	for _, r := range f.created {
		if filter.RequesterID != "" && r.RequesterID != filter.RequesterID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id, status string) error {
	for _, r := range f.created {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCityRepo struct {
	cities map[string]*entity.City
}

func (f *fakeCityRepo) GetByID(_ context.Context, id string) (*entity.City, error) {
	return f.cities[id], nil
}

func (f *fakeCityRepo) List(_ context.Context) ([]*entity.City, error) { return nil, nil }

func newFixture() (*bloodrequest.BloodRequestUseCase, *fakeRequestRepo) {
	reqRepo := &fakeRequestRepo{}
	cityRepo := &fakeCityRepo{cities: map[string]*entity.City{
		"city-1": {ID: "city-1", Name: "Bogotá", State: "Cundinamarca"},
	}}
	return bloodrequest.NewBloodRequestUseCase(reqRepo, cityRepo), reqRepo
}

func TestCreate_SolicitudQuedaPendiente(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.Create(context.Background(), "paciente-1", dto.CreateBloodRequestRequest{
		CityID:    "city-1",
		BloodType: string(entity.BloodONegative),
		Units:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, resp.Status)
	assert.Equal(t, entity.UrgencyNormal, resp.Urgency, "urgencia default NORMAL")
	assert.Equal(t, "paciente-1", resp.RequesterID)
	require.Len(t, repo.created, 1)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Create(context.Background(), "u1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: "INVALIDO", Units: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de sangre inválido")

	_, err = uc.Create(context.Background(), "u1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodOPositive), Units: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unidades debe ser positivo")

	_, err = uc.Create(context.Background(), "u1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodOPositive), Units: 1, Urgency: "YA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "urgencia desconocida")
}

func TestCreate_CiudadInexistente(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Create(context.Background(), "u1", dto.CreateBloodRequestRequest{
		CityID: "nope", BloodType: string(entity.BloodOPositive), Units: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get — visibilidad por solicitante
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_SolicitanteVeLaSuya(t *testing.T) {
	uc, _ := newFixture()

	created, err := uc.Create(context.Background(), "paciente-1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodOPositive), Units: 2,
	})
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), "paciente-1", false, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGet_SolicitanteAjenoRecibeErrForbidden(t *testing.T) {
	uc, _ := newFixture()

	created, err := uc.Create(context.Background(), "paciente-1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodOPositive), Units: 2,
	})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), "paciente-2", false, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "una solicitud ajena no es visible para otro solicitante")
}

func TestGet_StaffVeCualquiera(t *testing.T) {
	uc, _ := newFixture()

	created, err := uc.Create(context.Background(), "paciente-1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodOPositive), Units: 2,
	})
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), "banco-99", true, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "paciente-1", got.RequesterID)
}

func TestGet_SolicitudInexistente(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Get(context.Background(), "paciente-1", false, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus — ciclo de vida de la solicitud
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_CierraElCicloDeVida(t *testing.T) {
	uc, repo := newFixture()

	created, err := uc.Create(context.Background(), "paciente-1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodONegative), Units: 1,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RequestStatusPending, created.Status)

	updated, err := uc.UpdateStatus(context.Background(), created.ID, entity.RequestStatusFulfilled)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusFulfilled, updated.Status)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusFulfilled, stored.Status, "el cambio queda persistido")

	cancelled, err := uc.UpdateStatus(context.Background(), created.ID, entity.RequestStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCancelled, cancelled.Status)
}

func TestUpdateStatus_EstadoDesconocidoRetornaError(t *testing.T) {
	uc, _ := newFixture()

	created, err := uc.Create(context.Background(), "paciente-1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodOPositive), Units: 1,
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), created.ID, "ENTREGADA")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := uc.Get(context.Background(), "paciente-1", false, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, stored.Status, "un estado inválido no toca el registro")
}

func TestUpdateStatus_SolicitudInexistente(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.UpdateStatus(context.Background(), "no-existe", entity.RequestStatusFulfilled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_AplicaPaginacionPorDefecto(t *testing.T) {
	uc, repo := newFixture()

	_, err := uc.List(context.Background(), repository.RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastFilter.Limit, "sin limit el listado usa la página default")
	assert.Equal(t, 0, repo.lastFilter.Offset)

	_, err = uc.List(context.Background(), repository.RequestFilter{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit, "el limit se acota al máximo de página")
}

func TestList_FiltraPorSolicitante(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Create(context.Background(), "paciente-1", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodAPositive), Units: 1,
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "paciente-2", dto.CreateBloodRequestRequest{
		CityID: "city-1", BloodType: string(entity.BloodAPositive), Units: 3,
	})
	require.NoError(t, err)

	list, err := uc.List(context.Background(), repository.RequestFilter{RequesterID: "paciente-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "paciente-1", list[0].RequesterID)
}
