// Package bloodstock contiene la lógica de dominio pura del inventario de sangre.
package bloodstock

// AvailabilityStatus nivel de disponibilidad de un tipo de sangre en un banco.
// Siempre se deriva de la cantidad con Classify; ningún flujo de escritura
// puede fijarlo de forma independiente.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "AVAILABLE"
	StatusLimited     AvailabilityStatus = "LIMITED"
	StatusCritical    AvailabilityStatus = "CRITICAL"
	StatusUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// Classify deriva el nivel de disponibilidad a partir de las unidades en stock.
// Tabla de cortes: 0 → UNAVAILABLE, 1..3 → CRITICAL, 4..10 → LIMITED, >10 → AVAILABLE.
func Classify(quantity int) AvailabilityStatus {
	switch {
	case quantity <= 0:
		return StatusUnavailable
	case quantity <= 3:
		return StatusCritical
	case quantity <= 10:
		return StatusLimited
	default:
		return StatusAvailable
	}
}

// Rank orden de prioridad para la búsqueda de emergencia: menor es mejor.
func Rank(s AvailabilityStatus) int {
	switch s {
	case StatusAvailable:
		return 0
	case StatusLimited:
		return 1
	case StatusCritical:
		return 2
	default:
		return 3
	}
}
