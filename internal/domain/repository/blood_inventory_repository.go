package repository

import (
	"context"

	"github.com/tu-usuario/red-vital/internal/domain/bloodstock"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

// InventoryFilter criterios de listado de inventario. Campos vacíos no filtran.
type InventoryFilter struct {
	BloodBankID string
	CityID      string
	BloodType   entity.BloodType
	MinQuantity *int // cantidad mínima inclusiva (ej. 1 para "solo disponibles")
	MaxQuantity *int // cantidad máxima inclusiva (alertas de stock bajo)
	OnlyExpired bool // expiry_date < now AND quantity > 0
}

// TypeStats acumulado por tipo de sangre para los rollups de banco y ciudad.
type TypeStats struct {
	BloodType      entity.BloodType
	TotalQuantity  int
	RecordCount    int
	AvailableCount int // registros con status != UNAVAILABLE
	Status         bloodstock.AvailabilityStatus
}

// BloodInventoryRepository puerto de persistencia del inventario de sangre.
// Upsert debe ser atómico en la capa de almacenamiento: la selección del
// registro destino y la escritura ocurren en una sola sentencia, sin ventana
// de lectura-modificación-escritura entre updates concurrentes de la misma clave.
type BloodInventoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.BloodInventory, error)
	GetByBankAndType(ctx context.Context, bankID string, bloodType entity.BloodType) (*entity.BloodInventory, error)
	List(ctx context.Context, filter InventoryFilter) ([]*entity.BloodInventory, error)
	// Create falla con domain.ErrDuplicate si ya existe registro para (banco, tipo).
	Create(ctx context.Context, inv *entity.BloodInventory) error
	// Upsert crea el registro si no existe o sobreescribe cantidad, precio,
	// vencimiento y status derivado; devuelve el registro persistido.
	Upsert(ctx context.Context, inv *entity.BloodInventory) (*entity.BloodInventory, error)
	// Delete borrado físico; devuelve domain.ErrNotFound si el registro no existe.
	Delete(ctx context.Context, id string) error
	GroupByTypeForBank(ctx context.Context, bankID string) ([]TypeStats, error)
	GroupByTypeForCity(ctx context.Context, cityID string) ([]TypeStats, error)
}
