package request

import (
	"github.com/shopspring/decimal"

	"sumee_intake/internal/domain/pricing"
)

// ConfirmAgreementRequest carries the single agreed price and the scope text.
// decimal.Decimal accepts both JSON strings and numbers, so "2250.00" and
// 2250 parse the same.
type ConfirmAgreementRequest struct {
	PrecioAcordado  decimal.Decimal `json:"precio_acordado" binding:"required"`
	AlcanceAcordado string          `json:"alcance_acordado" binding:"required"`
}

// QuoteItemRequest is one submitted quote line. Any subtotal or total the
// client sends is ignored; the server recomputes them.
type QuoteItemRequest struct {
	Concepto       string          `json:"concepto" binding:"required"`
	Cantidad       int             `json:"cantidad" binding:"required"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" binding:"required"`
}

type SendQuoteRequest struct {
	Items []QuoteItemRequest `json:"items" binding:"required"`
}

func (r SendQuoteRequest) ToItems() []pricing.QuoteItemInput {
	items := make([]pricing.QuoteItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, pricing.QuoteItemInput{
			Concepto:       item.Concepto,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
		})
	}
	return items
}
