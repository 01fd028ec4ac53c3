// Package geo utilidades de distancia geográfica para el motor de disponibilidad.
package geo

import "math"

const earthRadiusKm = 6371.0

// Haversine implementa availability.DistanceCalculator con la fórmula del
// semiverseno sobre una esfera de radio terrestre medio.
type Haversine struct{}

// NewHaversine construye el calculador.
func NewHaversine() Haversine { return Haversine{} }

// Kilometers distancia de círculo máximo entre dos coordenadas, en kilómetros.
func (Haversine) Kilometers(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
