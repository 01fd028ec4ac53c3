package entity

import "time"

// BloodBank banco de sangre (o el hospital que lo opera). Dueño de cero o más
// registros de BloodInventory.
type BloodBank struct {
	ID             string
	CityID         string
	HospitalName   string // vacío si el banco es independiente
	Name           string
	Address        string
	Phone          string
	EmergencyPhone string
	Is24x7         bool
	IsActive       bool
	Latitude       *float64
	Longitude      *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasCoordinates indica si el banco tiene ubicación geográfica registrada.
func (b *BloodBank) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}
