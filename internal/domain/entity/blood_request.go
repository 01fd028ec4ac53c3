package entity

import "time"

// Estados de una solicitud de sangre.
const (
	RequestStatusPending   = "PENDING"
	RequestStatusFulfilled = "FULFILLED"
	RequestStatusCancelled = "CANCELLED"
)

// Niveles de urgencia de una solicitud.
const (
	UrgencyNormal    = "NORMAL"
	UrgencyUrgent    = "URGENT"
	UrgencyEmergency = "EMERGENCY"
)

// BloodRequest solicitud de unidades de sangre hecha por un médico o paciente.
type BloodRequest struct {
	ID          string
	RequesterID string
	CityID      string
	BloodType   BloodType
	Units       int
	Urgency     string
	Status      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
