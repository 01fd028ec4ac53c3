package availability

// DistanceCalculator puerto de cálculo de distancia entre dos coordenadas.
// El núcleo solo necesita un valor numérico por resultado; la implementación
// (haversine en pkg/geo) es un colaborador externo.
type DistanceCalculator interface {
	Kilometers(lat1, lon1, lat2, lon2 float64) float64
}
