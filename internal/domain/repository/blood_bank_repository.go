package repository

import (
	"context"

	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

// BankFilter criterios de listado de bancos de sangre.
type BankFilter struct {
	CityID     string
	Search     string // busca en nombre y dirección (case-insensitive)
	Is24x7     *bool
	OnlyActive bool
	Limit      int
	Offset     int
}

// BankWithInventory banco con su snapshot de inventario y ciudad, para el
// motor de consultas de disponibilidad.
type BankWithInventory struct {
	Bank      entity.BloodBank
	City      entity.City
	Inventory []*entity.BloodInventory
}

// AvailabilityLookup criterios del join banco+inventario del motor de consultas.
type AvailabilityLookup struct {
	CityID        string
	BloodType     entity.BloodType // vacío = snapshot completo de cada banco
	OnlyAvailable bool             // restringe a registros con quantity > 0
	Limit         int              // 0 = sin tope
}

// BloodBankRepository puerto de lectura de bancos de sangre. El directorio de
// bancos es un colaborador externo del núcleo: aquí solo lectura.
type BloodBankRepository interface {
	GetByID(ctx context.Context, id string) (*entity.BloodBank, error)
	List(ctx context.Context, filter BankFilter) ([]*entity.BloodBank, int, error)
	// ListWithInventory devuelve bancos activos con su inventario (filtrado por
	// tipo si se indica) y la ciudad, para las consultas de disponibilidad.
	ListWithInventory(ctx context.Context, lookup AvailabilityLookup) ([]*BankWithInventory, error)
	CountActiveByCity(ctx context.Context, cityID string) (int, error)
}
