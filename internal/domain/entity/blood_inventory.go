package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/red-vital/internal/domain/bloodstock"
)

// BloodInventory existe exactamente un registro por (banco, tipo de sangre).
// AvailabilityStatus siempre se recalcula con bloodstock.Classify al escribir.
type BloodInventory struct {
	ID                 string
	BloodBankID        string
	BloodType          BloodType
	Quantity           int
	CostPerUnit        decimal.Decimal
	IsFree             bool
	ExpiryDate         *time.Time
	AvailabilityStatus bloodstock.AvailabilityStatus
	LastUpdated        time.Time
	UpdatedBy          string // ID del usuario que hizo el último cambio (auditoría); vacío si anónimo
}

// IsExpired indica si el registro tiene fecha de vencimiento pasada y unidades en stock.
// El filtro es de lectura: no hay purga en segundo plano.
func (i *BloodInventory) IsExpired(now time.Time) bool {
	return i.ExpiryDate != nil && i.ExpiryDate.Before(now) && i.Quantity > 0
}
