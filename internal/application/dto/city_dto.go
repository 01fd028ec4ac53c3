package dto

// CityResponse ciudad en respuestas.
type CityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}
