package entities

import "github.com/shopspring/decimal"

// HistoricalPriceStat is an aggregate price observation for a discipline,
// optionally scoped to a work zone. An empty Zone means the discipline-wide
// global aggregate.
//
// The row is an immutable snapshot maintained by an external batch process;
// this service only reads it.
type HistoricalPriceStat struct {
	Discipline string          `json:"discipline"`
	Zone       string          `json:"zone,omitempty"`
	SampleSize int             `json:"sample_size"`
	AvgPrice   decimal.Decimal `json:"avg_price"`
	StdDev     decimal.Decimal `json:"std_dev"`
	MinPrice   decimal.Decimal `json:"min_price"`
	MaxPrice   decimal.Decimal `json:"max_price"`
}

// MinSampleSize is the confidence floor: a stat with fewer observations is
// never used as a correction signal.
const MinSampleSize = 5

// Usable reports whether the stat has enough observations to correct or
// synthesize a suggested price range.
func (s *HistoricalPriceStat) Usable() bool {
	return s != nil && s.SampleSize >= MinSampleSize
}
