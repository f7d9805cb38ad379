package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"sumee_intake/internal/domain/entities"
)

func TestFlexibilityForTier(t *testing.T) {
	cases := []struct {
		tier entities.ProviderTier
		want string
	}{
		{entities.TierVerifiedExpress, "0.10"},
		{entities.TierCertifiedPro, "0.15"},
		{entities.TierPremiumElite, "0.20"},
		{entities.ProviderTier("gold_plus"), "0.10"},
		{entities.ProviderTier(""), "0.10"},
	}
	for _, tc := range cases {
		got := FlexibilityForTier(tc.tier)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("tier %q: expected %s, got %s", tc.tier, tc.want, got)
		}
	}
}

func TestAllowedWindow_CertifiedPro(t *testing.T) {
	// [1000, 2000] at 15% -> [850, 2300]
	r := &SuggestedRange{Min: dec(t, "1000"), Max: dec(t, "2000")}
	w := AllowedWindow(r, entities.TierCertifiedPro)

	if !w.Min.Equal(decimal.RequireFromString("850")) || !w.Max.Equal(decimal.RequireFromString("2300")) {
		t.Fatalf("expected [850, 2300], got [%s, %s]", w.Min, w.Max)
	}
	if !w.Contains(decimal.RequireFromString("2250")) {
		t.Fatal("2250 should be inside the window")
	}
	if w.Contains(decimal.RequireFromString("2400")) {
		t.Fatal("2400 should be outside the window")
	}
}

func TestAllowedWindow_NoRangeFallsBackToDomain(t *testing.T) {
	w := AllowedWindow(nil, entities.TierPremiumElite)
	if !w.Min.Equal(DomainMin) || !w.Max.Equal(DomainMax) {
		t.Fatalf("expected the domain bounds, got [%s, %s]", w.Min, w.Max)
	}
}

func TestAllowedWindow_PartialRange(t *testing.T) {
	// only a max bound: the low side degrades to the domain minimum
	r := &SuggestedRange{Max: dec(t, "2000")}
	w := AllowedWindow(r, entities.TierVerifiedExpress)
	if !w.Min.Equal(DomainMin) {
		t.Fatalf("expected domain min, got %s", w.Min)
	}
	if !w.Max.Equal(decimal.RequireFromString("2200")) {
		t.Fatalf("expected 2200, got %s", w.Max)
	}
}

func TestAllowedWindow_IntersectsDomain(t *testing.T) {
	// a wide range near the edges never escapes the absolute bounds
	r := &SuggestedRange{Min: dec(t, "105"), Max: dec(t, "49000")}
	w := AllowedWindow(r, entities.TierPremiumElite)
	if !w.Min.Equal(DomainMin) {
		t.Fatalf("expected window min clamped to %s, got %s", DomainMin, w.Min)
	}
	if !w.Max.Equal(DomainMax) {
		t.Fatalf("expected window max clamped to %s, got %s", DomainMax, w.Max)
	}
}
