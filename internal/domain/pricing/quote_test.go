package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildQuote_ComputesTotal(t *testing.T) {
	items, total, err := BuildQuote([]QuoteItemInput{
		{Concepto: "Cable 10m", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("150")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].Subtotal.Equal(decimal.RequireFromString("300")) {
		t.Fatalf("expected subtotal 300, got %s", items[0].Subtotal)
	}
	if !total.Equal(decimal.RequireFromString("300")) {
		t.Fatalf("expected total 300, got %s", total)
	}
}

func TestBuildQuote_RoundsOnlyAtTotal(t *testing.T) {
	// three lines of 3 x 11.115 = 33.345 each; subtotals stay unrounded and
	// the sum 100.035 rounds once at the end
	in := QuoteItemInput{Concepto: "Mano de obra", Cantidad: 3, PrecioUnitario: decimal.RequireFromString("11.115")}
	items, total, err := BuildQuote([]QuoteItemInput{in, in, in})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, it := range items {
		if !it.Subtotal.Equal(decimal.RequireFromString("33.345")) {
			t.Fatalf("expected unrounded subtotal 33.345, got %s", it.Subtotal)
		}
	}
	if !total.Equal(decimal.RequireFromString("100.04")) {
		t.Fatalf("expected total 100.04, got %s", total)
	}
}

func TestBuildQuote_RejectsWholeSubmission(t *testing.T) {
	cases := []struct {
		name  string
		items []QuoteItemInput
	}{
		{"empty list", nil},
		{"short concepto", []QuoteItemInput{
			{Concepto: "Cable 10m", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("150")},
			{Concepto: "  ab ", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("10")},
		}},
		{"zero cantidad", []QuoteItemInput{
			{Concepto: "Cable 10m", Cantidad: 0, PrecioUnitario: decimal.RequireFromString("150")},
		}},
		{"negative precio", []QuoteItemInput{
			{Concepto: "Cable 10m", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("-5")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, _, err := BuildQuote(tc.items)
			if !errors.Is(err, ErrInvalidQuoteItem) {
				t.Fatalf("expected ErrInvalidQuoteItem, got %v", err)
			}
			if items != nil {
				t.Fatal("expected no partial acceptance")
			}
		})
	}
}
