package pricing

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"sumee_intake/internal/domain/entities"
)

var ErrInvalidQuoteItem = errors.New("invalid quote item")

const minConceptLength = 3

// QuoteItemInput is a candidate quote line as submitted by the professional.
// Any subtotal or total the caller supplies is ignored; both are recomputed
// here.
type QuoteItemInput struct {
	Concepto       string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// BuildQuote validates every candidate line and computes subtotals and the
// grand total. One bad line rejects the whole submission; there is no partial
// acceptance. Subtotals stay unrounded; two-decimal rounding is applied once,
// at the total.
func BuildQuote(inputs []QuoteItemInput) ([]entities.QuoteItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: at least one item is required", ErrInvalidQuoteItem)
	}

	items := make([]entities.QuoteItem, 0, len(inputs))
	total := decimal.Zero
	for i, in := range inputs {
		concepto := strings.TrimSpace(in.Concepto)
		if utf8.RuneCountInString(concepto) < minConceptLength {
			return nil, decimal.Zero, fmt.Errorf("%w: item %d: concepto must have at least %d characters", ErrInvalidQuoteItem, i+1, minConceptLength)
		}
		if in.Cantidad <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: item %d: cantidad must be positive, got %d", ErrInvalidQuoteItem, i+1, in.Cantidad)
		}
		if in.PrecioUnitario.Sign() <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: item %d: precio_unitario must be positive, got %s", ErrInvalidQuoteItem, i+1, in.PrecioUnitario)
		}

		subtotal := in.PrecioUnitario.Mul(decimal.NewFromInt(int64(in.Cantidad)))
		items = append(items, entities.QuoteItem{
			Concepto:       concepto,
			Cantidad:       in.Cantidad,
			PrecioUnitario: in.PrecioUnitario,
			Subtotal:       subtotal,
		})
		total = total.Add(subtotal)
	}

	return items, total.Round(2), nil
}
