package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/red-vital/pkg/geo"
)

func TestKilometers_MismoPuntoEsCero(t *testing.T) {
	h := geo.NewHaversine()
	assert.InDelta(t, 0, h.Kilometers(4.61, -74.08, 4.61, -74.08), 0.001)
}

func TestKilometers_BogotaMedellin(t *testing.T) {
	// Distancia en línea recta Bogotá-Medellín: ~240 km.
	h := geo.NewHaversine()
	km := h.Kilometers(4.6097, -74.0817, 6.2442, -75.5812)
	assert.InDelta(t, 240, km, 15)
}

func TestKilometers_EsSimetrica(t *testing.T) {
	h := geo.NewHaversine()
	ida := h.Kilometers(4.6097, -74.0817, 10.3910, -75.4794)
	vuelta := h.Kilometers(10.3910, -75.4794, 4.6097, -74.0817)
	assert.InDelta(t, ida, vuelta, 0.0001)
}
