package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/blood-inventory.
type CreateInventoryRequest struct {
	BloodBankID string           `json:"blood_bank_id"`
	BloodType   string           `json:"blood_type"`
	Quantity    int              `json:"quantity"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit,omitempty"`
	IsFree      bool             `json:"is_free,omitempty"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
}

// UpdateInventoryRequest body para PUT /api/blood-inventory/:id.
type UpdateInventoryRequest struct {
	Quantity    int              `json:"quantity"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit,omitempty"`
	IsFree      *bool            `json:"is_free,omitempty"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
}

// InventoryResponse registro de inventario en respuestas.
type InventoryResponse struct {
	ID                 string          `json:"id"`
	BloodBankID        string          `json:"blood_bank_id"`
	BloodType          string          `json:"blood_type"`
	Quantity           int             `json:"quantity"`
	CostPerUnit        decimal.Decimal `json:"cost_per_unit"`
	IsFree             bool            `json:"is_free"`
	ExpiryDate         *time.Time      `json:"expiry_date,omitempty"`
	AvailabilityStatus string          `json:"availability_status"`
	LastUpdated        time.Time       `json:"last_updated"`
}

// InventoryChangeEvent evento publicado en los tópicos city:<id> y bloodbank:<id>
// tras cada escritura de inventario.
type InventoryChangeEvent struct {
	BloodBankID        string    `json:"blood_bank_id"`
	BloodType          string    `json:"blood_type"`
	Quantity           int       `json:"quantity"`
	AvailabilityStatus string    `json:"availability_status"`
	LastUpdated        time.Time `json:"last_updated"`
	CityID             string    `json:"city_id"`
}
