package dto

import "time"

// CreateBloodRequestRequest body para POST /api/blood-requests.
type CreateBloodRequestRequest struct {
	CityID    string `json:"city_id"`
	BloodType string `json:"blood_type"`
	Units     int    `json:"units"`
	Urgency   string `json:"urgency,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateBloodRequestStatusRequest body para PATCH /api/blood-requests/:id/status.
type UpdateBloodRequestStatusRequest struct {
	Status string `json:"status"`
}

// BloodRequestResponse solicitud de sangre en respuestas.
type BloodRequestResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	CityID      string    `json:"city_id"`
	BloodType   string    `json:"blood_type"`
	Units       int       `json:"units"`
	Urgency     string    `json:"urgency"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
