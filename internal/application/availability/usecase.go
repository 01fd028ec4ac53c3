package availability

import (
	"context"
	"sort"

	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/bloodstock"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

// EmergencyLimit tope de resultados de la búsqueda de emergencia: los callers
// en emergencia necesitan las mejores opciones rápido, no el listado completo.
const EmergencyLimit = 20

// DefaultRadiusKm radio de búsqueda cuando el caller manda coordenadas sin radio.
const DefaultRadiusKm = 50

// AvailabilityUseCase consultas de disponibilidad de sangre (solo lectura).
type AvailabilityUseCase struct {
	bankRepo repository.BloodBankRepository
	distance DistanceCalculator
}

// NewAvailabilityUseCase construye el motor de consultas.
func NewAvailabilityUseCase(bankRepo repository.BloodBankRepository, distance DistanceCalculator) *AvailabilityUseCase {
	return &AvailabilityUseCase{bankRepo: bankRepo, distance: distance}
}

// QueryAvailability lista bancos con su inventario aplicando los filtros.
// Con coordenadas del caller adjunta distancia y ordena ascendente por ella
// (bancos sin ubicación al final); sin coordenadas el orden es alfabético por
// nombre, estable y case-sensitive, para que lecturas repetidas sean idénticas.
func (uc *AvailabilityUseCase) QueryAvailability(ctx context.Context, q dto.AvailabilityQuery) ([]dto.BankAvailability, error) {
	bloodType := entity.BloodType(q.BloodType)
	if q.BloodType != "" && !bloodType.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	banks, err := uc.bankRepo.ListWithInventory(ctx, repository.AvailabilityLookup{
		CityID:        q.CityID,
		BloodType:     bloodType,
		OnlyAvailable: q.OnlyAvailable,
	})
	if err != nil {
		return nil, err
	}

	withCoords := q.Latitude != nil && q.Longitude != nil
	radius := q.RadiusKm
	if radius <= 0 {
		radius = DefaultRadiusKm
	}

	results := make([]dto.BankAvailability, 0, len(banks))
	for _, b := range banks {
		item := toBankAvailability(b)
		if withCoords && b.Bank.HasCoordinates() {
			km := uc.distance.Kilometers(*q.Latitude, *q.Longitude, *b.Bank.Latitude, *b.Bank.Longitude)
			if km > radius {
				continue
			}
			item.DistanceKm = &km
		}
		results = append(results, item)
	}

	if withCoords {
		sort.SliceStable(results, func(i, j int) bool {
			di, dj := results[i].DistanceKm, results[j].DistanceKm
			switch {
			case di != nil && dj != nil:
				return *di < *dj
			case di != nil:
				return true
			case dj != nil:
				return false
			default:
				return results[i].Name < results[j].Name
			}
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Name < results[j].Name
		})
	}
	return results, nil
}

// QueryEmergency ruta rápida para emergencias: ciudad y tipo obligatorios,
// solo registros con unidades (status distinto de UNAVAILABLE), ranking por
// nivel de disponibilidad y, dentro del mismo nivel, más stock primero.
// Tope de EmergencyLimit resultados.
func (uc *AvailabilityUseCase) QueryEmergency(ctx context.Context, cityID string, bloodType entity.BloodType, lat, lng *float64) ([]dto.BankAvailability, error) {
	if cityID == "" || bloodType == "" {
		return nil, domain.ErrInvalidInput
	}
	if !bloodType.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	banks, err := uc.bankRepo.ListWithInventory(ctx, repository.AvailabilityLookup{
		CityID:        cityID,
		BloodType:     bloodType,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, err
	}

	type ranked struct {
		item dto.BankAvailability
		rank int
		qty  int
	}
	candidates := make([]ranked, 0, len(banks))
	for _, b := range banks {
		inv := pickInventory(b, bloodType)
		if inv == nil || inv.Quantity <= 0 || inv.AvailabilityStatus == bloodstock.StatusUnavailable {
			continue
		}
		item := toBankAvailability(b)
		if lat != nil && lng != nil && b.Bank.HasCoordinates() {
			km := uc.distance.Kilometers(*lat, *lng, *b.Bank.Latitude, *b.Bank.Longitude)
			item.DistanceKm = &km
		}
		candidates = append(candidates, ranked{
			item: item,
			rank: bloodstock.Rank(inv.AvailabilityStatus),
			qty:  inv.Quantity,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].rank != candidates[j].rank {
			return candidates[i].rank < candidates[j].rank
		}
		return candidates[i].qty > candidates[j].qty
	})

	if len(candidates) > EmergencyLimit {
		candidates = candidates[:EmergencyLimit]
	}
	results := make([]dto.BankAvailability, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.item)
	}
	return results, nil
}

// pickInventory devuelve el registro del tipo pedido dentro del snapshot del banco.
func pickInventory(b *repository.BankWithInventory, bloodType entity.BloodType) *entity.BloodInventory {
	for _, inv := range b.Inventory {
		if inv.BloodType == bloodType {
			return inv
		}
	}
	return nil
}

func toBankAvailability(b *repository.BankWithInventory) dto.BankAvailability {
	snapshot := make([]dto.InventorySnapshot, 0, len(b.Inventory))
	for _, inv := range b.Inventory {
		snapshot = append(snapshot, dto.InventorySnapshot{
			BloodType:          string(inv.BloodType),
			Quantity:           inv.Quantity,
			CostPerUnit:        inv.CostPerUnit,
			IsFree:             inv.IsFree,
			AvailabilityStatus: string(inv.AvailabilityStatus),
			LastUpdated:        inv.LastUpdated,
		})
	}
	return dto.BankAvailability{
		ID:             b.Bank.ID,
		Name:           b.Bank.Name,
		Address:        b.Bank.Address,
		Phone:          b.Bank.Phone,
		EmergencyPhone: b.Bank.EmergencyPhone,
		HospitalName:   b.Bank.HospitalName,
		Is24x7:         b.Bank.Is24x7,
		CityName:       b.City.Name,
		CityState:      b.City.State,
		Inventory:      snapshot,
	}
}
