package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AvailabilityQuery filtros de GET /api/blood-availability.
type AvailabilityQuery struct {
	CityID        string   `query:"city_id"`
	BloodType     string   `query:"blood_type"`
	Latitude      *float64 `query:"latitude"`
	Longitude     *float64 `query:"longitude"`
	RadiusKm      float64  `query:"radius"`
	OnlyAvailable bool     `query:"only_available"`
}

// InventorySnapshot entrada de inventario dentro de una respuesta de disponibilidad.
type InventorySnapshot struct {
	BloodType          string          `json:"blood_type"`
	Quantity           int             `json:"quantity"`
	CostPerUnit        decimal.Decimal `json:"cost_per_unit"`
	IsFree             bool            `json:"is_free"`
	AvailabilityStatus string          `json:"availability_status"`
	LastUpdated        time.Time       `json:"last_updated"`
}

// BankAvailability banco con su inventario, ciudad y distancia opcional.
type BankAvailability struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Address        string              `json:"address"`
	Phone          string              `json:"phone"`
	EmergencyPhone string              `json:"emergency_phone,omitempty"`
	HospitalName   string              `json:"hospital_name,omitempty"`
	Is24x7         bool                `json:"is_24x7"`
	DistanceKm     *float64            `json:"distance_km,omitempty"`
	CityName       string              `json:"city_name"`
	CityState      string              `json:"city_state"`
	Inventory      []InventorySnapshot `json:"blood_inventory"`
}

// BankStatsResponse rollup por banco: tipos de sangre en stock y detalle por tipo.
type BankStatsResponse struct {
	BloodBankID     string                   `json:"blood_bank_id"`
	TotalBloodTypes int                      `json:"total_blood_types"`
	InventoryByType map[string]TypeStatsItem `json:"inventory_by_type"`
	LastUpdated     time.Time                `json:"last_updated"`
}

// TypeStatsItem detalle por tipo en el rollup de banco.
type TypeStatsItem struct {
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// CitySummaryResponse rollup por ciudad agrupado por tipo de sangre.
type CitySummaryResponse struct {
	CityID       string                     `json:"city_id"`
	TotalBanks   int                        `json:"total_blood_banks"`
	TypesSummary map[string]CityTypeSummary `json:"blood_types_summary"`
	LastUpdated  time.Time                  `json:"last_updated"`
}

// CityTypeSummary acumulado de un tipo de sangre en toda la ciudad.
type CityTypeSummary struct {
	TotalQuantity  int `json:"total_quantity"`
	BloodBanks     int `json:"blood_banks"`
	AvailableCount int `json:"available_count"`
}
