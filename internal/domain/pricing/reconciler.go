package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sumee_intake/internal/domain/entities"
)

// Correction thresholds relative to observed market data. A raw bound below
// half the historical minimum (or above twice the historical maximum) is
// implausible and gets replaced with a value derived from the history rather
// than discarded. Carried over from the product rules as given; revisit with
// stakeholders before changing.
var (
	lowTriggerFactor  = decimal.RequireFromString("0.5")
	lowReplaceFactor  = decimal.RequireFromString("0.8")
	highTriggerFactor = decimal.RequireFromString("2.0")
	highReplaceFactor = decimal.RequireFromString("1.5")
)

// SuggestedRange is the reconciled price suggestion attached to a lead.
// Either bound may be nil; a range with a single surviving bound is still
// worth storing. Rationale is free text for the professional's UI.
type SuggestedRange struct {
	Min       *decimal.Decimal
	Max       *decimal.Decimal
	Rationale string
}

// Reconcile combines the classifier's raw suggestion with historical price
// statistics and returns a numerically defensible range, or nil when nothing
// survives. It never returns an error: a price suggestion is advisory and
// must not block lead creation.
//
// The steps run in a fixed order: synthesize from history when the model gave
// nothing, correct implausible bounds against the history, discard bounds
// outside the absolute domain, then normalize ordering. Correction runs
// before the domain check so a corrected value is judged on its corrected
// magnitude, and the swap runs last so it sees final values only.
func Reconcile(rawMin, rawMax *decimal.Decimal, stat *entities.HistoricalPriceStat) *SuggestedRange {
	min := sanitizeBound(rawMin)
	max := sanitizeBound(rawMax)

	if min == nil && max == nil {
		if !stat.Usable() {
			return nil
		}
		lo := ClampDomain(stat.AvgPrice.Sub(stat.StdDev))
		hi := ClampDomain(stat.AvgPrice.Add(stat.StdDev))
		return &SuggestedRange{
			Min: ptr(lo),
			Max: ptr(hi),
			Rationale: fmt.Sprintf(
				"rango derivado de %d trabajos similares (promedio $%s)",
				stat.SampleSize, stat.AvgPrice.StringFixed(2)),
		}
	}

	rationale := ""
	if stat.Usable() {
		if min != nil && min.LessThan(stat.MinPrice.Mul(lowTriggerFactor)) {
			min = ptr(stat.MinPrice.Mul(lowReplaceFactor))
			rationale = "mínimo ajustado según precios históricos"
		}
		if max != nil && max.GreaterThan(stat.MaxPrice.Mul(highTriggerFactor)) {
			max = ptr(stat.MaxPrice.Mul(highReplaceFactor))
			if rationale != "" {
				rationale = "rango ajustado según precios históricos"
			} else {
				rationale = "máximo ajustado según precios históricos"
			}
		}
	}

	if min != nil && !InDomain(*min) {
		min = nil
	}
	if max != nil && !InDomain(*max) {
		max = nil
	}

	if min != nil && max != nil && max.LessThan(*min) {
		min, max = max, min
	}

	if min == nil && max == nil {
		return nil
	}
	return &SuggestedRange{Min: min, Max: max, Rationale: rationale}
}
