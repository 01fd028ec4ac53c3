package availability_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/red-vital/internal/application/availability"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/bloodstock"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
	"github.com/tu-usuario/red-vital/pkg/geo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeBankRepo devuelve el snapshot configurado sin tocar el filtro: los tests
// de orden y ranking trabajan sobre el resultado como lo haría la DB.
type fakeBankRepo struct {
	snapshot []*repository.BankWithInventory
}

func (f *fakeBankRepo) GetByID(_ context.Context, _ string) (*entity.BloodBank, error) {
	return nil, nil
}

func (f *fakeBankRepo) List(_ context.Context, _ repository.BankFilter) ([]*entity.BloodBank, int, error) {
	return nil, 0, nil
}

func (f *fakeBankRepo) ListWithInventory(_ context.Context, _ repository.AvailabilityLookup) ([]*repository.BankWithInventory, error) {
	return f.snapshot, nil
}

func (f *fakeBankRepo) CountActiveByCity(_ context.Context, _ string) (int, error) {
	return len(f.snapshot), nil
}

func bankEntry(id, name string, lat, lng *float64, qty int) *repository.BankWithInventory {
	return &repository.BankWithInventory{
		Bank: entity.BloodBank{
			ID: id, CityID: "city-1", Name: name, IsActive: true,
			Latitude: lat, Longitude: lng,
		},
		City: entity.City{ID: "city-1", Name: "Bogotá", State: "Cundinamarca"},
		Inventory: []*entity.BloodInventory{{
			ID:                 id + "-inv",
			BloodBankID:        id,
			BloodType:          entity.BloodOPositive,
			Quantity:           qty,
			AvailabilityStatus: bloodstock.Classify(qty),
		}},
	}
}

func ptr(v float64) *float64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// QueryEmergency — ranking
// ──────────────────────────────────────────────────────────────────────────────

func TestQueryEmergency_RankingPorStatusLuegoCantidad(t *testing.T) {
	// F1 crítico (2), F2 crítico (3), F3 disponible (40): el AVAILABLE va
	// primero aunque otro banco aparezca antes en el listado.
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("f1", "Fundación Uno", nil, nil, 2),
		bankEntry("f2", "Fundación Dos", nil, nil, 3),
		bankEntry("f3", "Fundación Tres", nil, nil, 40),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryEmergency(context.Background(), "city-1", entity.BloodOPositive, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "f3", results[0].ID, "AVAILABLE rankea antes que CRITICAL")
	assert.Equal(t, "f2", results[1].ID, "a igual status gana el de más unidades")
	assert.Equal(t, "f1", results[2].ID)
}

func TestQueryEmergency_DesempatePorCantidadDescendente(t *testing.T) {
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("b20", "Banco Veinte", nil, nil, 20),
		bankEntry("b50", "Banco Cincuenta", nil, nil, 50),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryEmergency(context.Background(), "city-1", entity.BloodOPositive, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b50", results[0].ID, "ambos AVAILABLE: 50 unidades antes que 20")
}

func TestQueryEmergency_ExcluyeSinUnidades(t *testing.T) {
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("vacio", "Banco Vacío", nil, nil, 0),
		bankEntry("ok", "Banco Con Stock", nil, nil, 5),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryEmergency(context.Background(), "city-1", entity.BloodOPositive, nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1, "un banco sin unidades nunca aparece en emergencia")
	assert.Equal(t, "ok", results[0].ID)
}

func TestQueryEmergency_TopeDeResultados(t *testing.T) {
	snapshot := make([]*repository.BankWithInventory, 0, 25)
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("b%02d", i)
		snapshot = append(snapshot, bankEntry(id, "Banco "+id, nil, nil, 11+i))
	}
	repo := &fakeBankRepo{snapshot: snapshot}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryEmergency(context.Background(), "city-1", entity.BloodOPositive, nil, nil)
	require.NoError(t, err)
	assert.Len(t, results, availability.EmergencyLimit)
	assert.Equal(t, "b24", results[0].ID, "el de más stock encabeza la lista")
}

func TestQueryAvailability_NoAplicaElTopeDeEmergencia(t *testing.T) {
	// La consulta general devuelve el listado completo; solo la ruta de
	// emergencia corta en EmergencyLimit.
	snapshot := make([]*repository.BankWithInventory, 0, 25)
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("b%02d", i)
		snapshot = append(snapshot, bankEntry(id, "Banco "+id, nil, nil, 11+i))
	}
	uc := availability.NewAvailabilityUseCase(&fakeBankRepo{snapshot: snapshot}, geo.NewHaversine())

	general, err := uc.QueryAvailability(context.Background(), dto.AvailabilityQuery{CityID: "city-1"})
	require.NoError(t, err)
	assert.Len(t, general, 25)

	emergency, err := uc.QueryEmergency(context.Background(), "city-1", entity.BloodOPositive, nil, nil)
	require.NoError(t, err)
	assert.Len(t, emergency, availability.EmergencyLimit)
}

func TestQueryEmergency_ParametrosObligatorios(t *testing.T) {
	uc := availability.NewAvailabilityUseCase(&fakeBankRepo{}, geo.NewHaversine())

	_, err := uc.QueryEmergency(context.Background(), "", entity.BloodOPositive, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "city_id es obligatorio")

	_, err = uc.QueryEmergency(context.Background(), "city-1", "", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "blood_type es obligatorio")

	_, err = uc.QueryEmergency(context.Background(), "city-1", "X_POSITIVE", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de sangre desconocido")
}

func TestQueryEmergency_LecturaIdempotente(t *testing.T) {
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("a", "Alfa", nil, nil, 3),
		bankEntry("b", "Beta", nil, nil, 12),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	first, err := uc.QueryEmergency(context.Background(), "city-1", entity.BloodOPositive, nil, nil)
	require.NoError(t, err)
	second, err := uc.QueryEmergency(context.Background(), "city-1", entity.BloodOPositive, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second, "misma consulta sin escrituras intermedias = mismo resultado")
}

// ──────────────────────────────────────────────────────────────────────────────
// QueryAvailability — orden y distancia
// ──────────────────────────────────────────────────────────────────────────────

func TestQueryAvailability_SinCoordenadasOrdenaPorNombre(t *testing.T) {
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("z", "Zulia", nil, nil, 5),
		bankEntry("a", "Andes", nil, nil, 5),
		bankEntry("m", "Mediterráneo", nil, nil, 5),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryAvailability(context.Background(), dto.AvailabilityQuery{CityID: "city-1"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"Andes", "Mediterráneo", "Zulia"},
		[]string{results[0].Name, results[1].Name, results[2].Name})
}

func TestQueryAvailability_ConCoordenadasOrdenaPorDistancia(t *testing.T) {
	// Caller en el centro de Bogotá; "lejos" a ~5km, "cerca" a ~1km.
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("lejos", "Banco Lejano", ptr(4.66), ptr(-74.05), 5),
		bankEntry("cerca", "Banco Cercano", ptr(4.61), ptr(-74.08), 5),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryAvailability(context.Background(), dto.AvailabilityQuery{
		CityID:    "city-1",
		Latitude:  ptr(4.60),
		Longitude: ptr(-74.08),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "cerca", results[0].ID)
	require.NotNil(t, results[0].DistanceKm)
	require.NotNil(t, results[1].DistanceKm)
	assert.Less(t, *results[0].DistanceKm, *results[1].DistanceKm)
}

func TestQueryAvailability_RadioExcluyeBancosFuera(t *testing.T) {
	// Medellín está a ~240km de Bogotá: fuera del radio default de 50km.
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("bog", "Banco Bogotá", ptr(4.61), ptr(-74.08), 5),
		bankEntry("med", "Banco Medellín", ptr(6.24), ptr(-75.58), 5),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryAvailability(context.Background(), dto.AvailabilityQuery{
		Latitude:  ptr(4.60),
		Longitude: ptr(-74.08),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bog", results[0].ID)
}

func TestQueryAvailability_BancosSinUbicacionVanAlFinal(t *testing.T) {
	repo := &fakeBankRepo{snapshot: []*repository.BankWithInventory{
		bankEntry("sin", "Banco Sin Ubicación", nil, nil, 5),
		bankEntry("con", "Banco Ubicado", ptr(4.61), ptr(-74.08), 5),
	}}
	uc := availability.NewAvailabilityUseCase(repo, geo.NewHaversine())

	results, err := uc.QueryAvailability(context.Background(), dto.AvailabilityQuery{
		Latitude:  ptr(4.60),
		Longitude: ptr(-74.08),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "con", results[0].ID, "con distancia conocida primero")
	assert.Nil(t, results[1].DistanceKm, "sin coordenadas no se inventa distancia")
}

func TestQueryAvailability_TipoDeSangreInvalido(t *testing.T) {
	uc := availability.NewAvailabilityUseCase(&fakeBankRepo{}, geo.NewHaversine())

	_, err := uc.QueryAvailability(context.Background(), dto.AvailabilityQuery{BloodType: "Z_NEGATIVE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
