package pricing

import "github.com/shopspring/decimal"

// Absolute domain bounds for any suggested or agreed price, in MXN. A value
// outside this band is not a price this marketplace trades in.
var (
	DomainMin = decimal.NewFromInt(100)
	DomainMax = decimal.NewFromInt(50000)
)

// InDomain reports whether v lies inside the absolute price bounds.
func InDomain(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(DomainMin) && v.LessThanOrEqual(DomainMax)
}

// ClampDomain forces v into the absolute bounds. Only used for values this
// service derives itself (synthesized fallback ranges); raw classifier values
// outside the domain are discarded instead, never clamped.
func ClampDomain(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(DomainMin) {
		return DomainMin
	}
	if v.GreaterThan(DomainMax) {
		return DomainMax
	}
	return v
}

// sanitizeBound drops non-positive values. Malformed numerics are treated the
// same as absent ones, per the intake degradation policy.
func sanitizeBound(v *decimal.Decimal) *decimal.Decimal {
	if v == nil || v.Sign() <= 0 {
		return nil
	}
	return v
}

func ptr(v decimal.Decimal) *decimal.Decimal {
	return &v
}
