package pricing

import (
	"github.com/shopspring/decimal"

	"sumee_intake/internal/domain/entities"
)

var (
	one           = decimal.NewFromInt(1)
	flexVerified  = decimal.RequireFromString("0.10")
	flexCertified = decimal.RequireFromString("0.15")
	flexPremium   = decimal.RequireFromString("0.20")
)

// FlexibilityForTier maps a provider tier to the allowed deviation fraction
// around the suggested range. Unrecognized tiers get the most conservative
// window.
func FlexibilityForTier(tier entities.ProviderTier) decimal.Decimal {
	switch tier {
	case entities.TierCertifiedPro:
		return flexCertified
	case entities.TierPremiumElite:
		return flexPremium
	default:
		return flexVerified
	}
}

// Window is the inclusive price band a provider may agree within.
type Window struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (w Window) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(w.Min) && price.LessThanOrEqual(w.Max)
}

// AllowedWindow computes the agreement window for a suggested range and tier:
// [min*(1-f), max*(1+f)], intersected with the absolute domain bounds. A
// missing bound falls back to the matching domain bound, so with no suggested
// range at all the check degrades to the domain sanity check alone.
func AllowedWindow(r *SuggestedRange, tier entities.ProviderTier) Window {
	f := FlexibilityForTier(tier)

	min := DomainMin
	max := DomainMax
	if r != nil {
		if r.Min != nil {
			min = r.Min.Mul(one.Sub(f))
		}
		if r.Max != nil {
			max = r.Max.Mul(one.Add(f))
		}
	}

	if min.LessThan(DomainMin) {
		min = DomainMin
	}
	if max.GreaterThan(DomainMax) {
		max = DomainMax
	}
	return Window{Min: min, Max: max}
}
