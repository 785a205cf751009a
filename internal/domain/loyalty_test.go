package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifyForUpgrade(t *testing.T) {
	tests := []struct {
		name   string
		visits int
		spend  float64
		want   LoyaltyTier
	}{
		{"no activity stays standard", 0, 0, TierStandard},
		{"3 visits and 799 CHF stay standard", 3, 799, TierStandard},
		{"4 visits reach silver", 4, 0, TierSilver},
		{"800 CHF reach silver", 0, 800, TierSilver},
		{"5 visits and modest spend reach silver", 5, 200, TierSilver},
		{"8 visits reach gold regardless of spend", 8, 0, TierGold},
		{"1500 CHF reach gold regardless of visits", 2, 1500, TierGold},
		{"heavy spender with few visits is gold", 2, 2000, TierGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QualifyForUpgrade(tt.visits, tt.spend))
		})
	}
}

func TestCalculateLoyaltyPoints(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		tier   LoyaltyTier
		want   int
	}{
		{"standard multiplier is 1.0", 100, TierStandard, 100},
		{"silver multiplier is 1.2", 100, TierSilver, 120},
		{"gold multiplier is 1.5", 100, TierGold, 150},
		{"zero amount earns nothing", 0, TierGold, 0},
		{"negative amount earns nothing", -10, TierGold, 0},
		{"fractional CHF is floored before multiplying", 100.9, TierSilver, 120},
		{"result is rounded, not truncated", 3, TierSilver, 4}, // 3 * 1.2 = 3.6
		{"half-CHF is dropped by the floor", 100.5, TierGold, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLoyaltyPoints(tt.amount, tt.tier))
		})
	}
}
