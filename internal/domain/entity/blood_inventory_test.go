package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ayer := now.Add(-24 * time.Hour)
	manana := now.Add(24 * time.Hour)

	cases := []struct {
		name   string
		expiry *time.Time
		qty    int
		want   bool
	}{
		{"vencido con stock", &ayer, 3, true},
		{"vencido sin stock no cuenta", &ayer, 0, false},
		{"vigente", &manana, 3, false},
		{"sin fecha de vencimiento", nil, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := entity.BloodInventory{ExpiryDate: tc.expiry, Quantity: tc.qty}
			assert.Equal(t, tc.want, inv.IsExpired(now))
		})
	}
}

func TestBloodTypeIsValid(t *testing.T) {
	for _, bt := range entity.BloodTypes {
		assert.True(t, bt.IsValid(), "%s debe ser válido", bt)
	}
	assert.False(t, entity.BloodType("C_POSITIVE").IsValid())
	assert.False(t, entity.BloodType("").IsValid())
}
