package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegotiationStatus tracks the lifecycle of the price negotiation between the
// client and the assigned professional.
//
// Transitions:
//
//	nuevo -> contactado -> asignado -> propuesta_enviada | acuerdo_confirmado
//
// propuesta_enviada and acuerdo_confirmado are terminal for this service;
// fulfillment tracking happens elsewhere.
type NegotiationStatus string

const (
	NegotiationStatusNuevo             NegotiationStatus = "nuevo"
	NegotiationStatusContactado        NegotiationStatus = "contactado"
	NegotiationStatusAsignado          NegotiationStatus = "asignado"
	NegotiationStatusPropuestaEnviada  NegotiationStatus = "propuesta_enviada"
	NegotiationStatusAcuerdoConfirmado NegotiationStatus = "acuerdo_confirmado"
)

// Terminal reports whether no further negotiation transition is allowed.
func (s NegotiationStatus) Terminal() bool {
	return s == NegotiationStatusPropuestaEnviada || s == NegotiationStatusAcuerdoConfirmado
}

// NegotiationLedger is the per-lead agreement state.
//
// Invariant: at most one of AgreedPrice / QuoteItems is populated. A ledger
// holds either a single-price agreement or an itemized quote, never both.
// QuoteTotal is derived from QuoteItems and recomputed on every submission;
// it is stored for querying but never trusted from client input.
type NegotiationLedger struct {
	Status                NegotiationStatus `json:"status"`
	ProfesionalAsignadoID string            `json:"profesional_asignado_id,omitempty"`

	AgreedPrice *decimal.Decimal `json:"agreed_price,omitempty"`
	AgreedScope string           `json:"agreed_scope,omitempty"`
	AgreedAt    *time.Time       `json:"agreed_at,omitempty"`
	AgreedBy    string           `json:"agreed_by,omitempty"`

	QuoteItems  []QuoteItem      `json:"quote_items,omitempty"`
	QuoteTotal  *decimal.Decimal `json:"quote_total,omitempty"`
	QuoteSentAt *time.Time       `json:"quote_sent_at,omitempty"`
	QuoteSentBy string           `json:"quote_sent_by,omitempty"`
}

// QuoteItem is one line of an itemized quote. Subtotal is always computed
// server-side as Cantidad x PrecioUnitario.
type QuoteItem struct {
	Concepto       string          `json:"concepto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// Agreement carries the fields written atomically when a single-price
// agreement is confirmed.
type Agreement struct {
	Price decimal.Decimal
	Scope string
	By    string
	At    time.Time
}

// QuoteSubmission carries the fields written atomically when an itemized
// quote is sent. Items and Total are the server-computed values.
type QuoteSubmission struct {
	Items []QuoteItem
	Total decimal.Decimal
	By    string
	At    time.Time
}
