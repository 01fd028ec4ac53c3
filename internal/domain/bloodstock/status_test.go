package bloodstock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/red-vital/internal/domain/bloodstock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Classify — fronteras del clasificador de disponibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Fronteras(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		want     bloodstock.AvailabilityStatus
	}{
		{"cero es UNAVAILABLE", 0, bloodstock.StatusUnavailable},
		{"negativo es UNAVAILABLE", -3, bloodstock.StatusUnavailable},
		{"una unidad es CRITICAL", 1, bloodstock.StatusCritical},
		{"tres unidades es CRITICAL", 3, bloodstock.StatusCritical},
		{"cuatro unidades es LIMITED", 4, bloodstock.StatusLimited},
		{"diez unidades es LIMITED", 10, bloodstock.StatusLimited},
		{"once unidades es AVAILABLE", 11, bloodstock.StatusAvailable},
		{"stock grande es AVAILABLE", 5000, bloodstock.StatusAvailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bloodstock.Classify(tc.quantity))
		})
	}
}

// Toda cantidad produce exactamente uno de los cuatro status.
func TestClassify_SiempreDevuelveUnStatusConocido(t *testing.T) {
	known := map[bloodstock.AvailabilityStatus]bool{
		bloodstock.StatusAvailable:   true,
		bloodstock.StatusLimited:     true,
		bloodstock.StatusCritical:    true,
		bloodstock.StatusUnavailable: true,
	}
	for q := -5; q <= 200; q++ {
		assert.True(t, known[bloodstock.Classify(q)], "cantidad %d", q)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Rank — orden para la búsqueda de emergencia
// ──────────────────────────────────────────────────────────────────────────────

func TestRank_OrdenDePrioridad(t *testing.T) {
	assert.Equal(t, 0, bloodstock.Rank(bloodstock.StatusAvailable))
	assert.Equal(t, 1, bloodstock.Rank(bloodstock.StatusLimited))
	assert.Equal(t, 2, bloodstock.Rank(bloodstock.StatusCritical))
	assert.Equal(t, 3, bloodstock.Rank(bloodstock.StatusUnavailable))

	// Más disponibilidad siempre rankea antes.
	assert.Less(t, bloodstock.Rank(bloodstock.StatusAvailable), bloodstock.Rank(bloodstock.StatusLimited))
	assert.Less(t, bloodstock.Rank(bloodstock.StatusLimited), bloodstock.Rank(bloodstock.StatusCritical))
}

// Classify y Rank son coherentes: a más unidades, nunca peor rank.
func TestClassifyYRank_Monotonia(t *testing.T) {
	prev := bloodstock.Rank(bloodstock.Classify(0))
	for q := 1; q <= 50; q++ {
		r := bloodstock.Rank(bloodstock.Classify(q))
		assert.LessOrEqual(t, r, prev, "el rank no debe empeorar al subir de %d unidades", q)
		prev = r
	}
}
