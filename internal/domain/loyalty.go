package domain

import "math"

// LoyaltyTier classifies a customer by benefit level.
type LoyaltyTier string

const (
	TierStandard LoyaltyTier = "standard"
	TierSilver   LoyaltyTier = "silver"
	TierGold     LoyaltyTier = "gold"
)

// QualifyForUpgrade derives the tier from 90-day visit and lifetime spend
// aggregates. Rules are evaluated top-down, first match wins.
func QualifyForUpgrade(visitsLast90Days int, totalSpendChf float64) LoyaltyTier {
	if visitsLast90Days >= GoldVisitThreshold || totalSpendChf >= GoldSpendThresholdChf {
		return TierGold
	}
	if visitsLast90Days >= SilverVisitThreshold || totalSpendChf >= SilverSpendThresholdChf {
		return TierSilver
	}
	return TierStandard
}

// CalculateLoyaltyPoints awards points for a paid amount. Fractional CHF
// below the unit is dropped before the tier multiplier is applied.
func CalculateLoyaltyPoints(amountChf float64, tier LoyaltyTier) int {
	if amountChf <= 0 {
		return 0
	}

	base := math.Floor(amountChf)

	multiplier := 1.0
	switch tier {
	case TierGold:
		multiplier = 1.5
	case TierSilver:
		multiplier = 1.2
	}

	return int(math.Round(base * multiplier))
}
