package dto

import "time"

// BankResponse banco de sangre en respuestas del directorio.
type BankResponse struct {
	ID             string    `json:"id"`
	CityID         string    `json:"city_id"`
	HospitalName   string    `json:"hospital_name,omitempty"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	EmergencyPhone string    `json:"emergency_phone,omitempty"`
	Is24x7         bool      `json:"is_24x7"`
	IsActive       bool      `json:"is_active"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BankListResponse listado paginado de bancos.
type BankListResponse struct {
	Banks []BankResponse `json:"blood_banks"`
	Page  PageResponse   `json:"page"`
}
