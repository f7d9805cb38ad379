package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead is a customer-submitted service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - All prices are decimal values marshalled as strings; float64 never
//     carries money across a boundary.
//
// Domain notes:
//   - DisciplinaIA/UrgenciaIA/DiagnosticoIA are set once by classification.
//   - AISuggestedPriceMin/Max is the reconciled range; either side may be nil
//     (a partial range is valid, callers must handle it).
//   - The negotiation state lives on the lead record itself, 1:1, so a single
//     conditional write can guard the whole transition.
type Lead struct {
	ID                  string     `json:"id"`
	NombreCliente       string     `json:"nombre_cliente"`
	Whatsapp            string     `json:"whatsapp"`
	DescripcionProyecto string     `json:"descripcion_proyecto"`
	Servicio            string     `json:"servicio"`
	ClienteID           string     `json:"cliente_id"`
	Zona                string     `json:"zona,omitempty"`
	UbicacionLat        float64    `json:"ubicacion_lat"`
	UbicacionLng        float64    `json:"ubicacion_lng"`
	UbicacionDireccion  string     `json:"ubicacion_direccion,omitempty"`
	ImagenURL           string     `json:"imagen_url,omitempty"`
	PhotosURLs          []string   `json:"photos_urls,omitempty"`
	PriorityBoost       bool       `json:"priority_boost"`

	DisciplinaIA  string `json:"disciplina_ia,omitempty"`
	UrgenciaIA    int    `json:"urgencia_ia,omitempty"`
	DiagnosticoIA string `json:"diagnostico_ia,omitempty"`

	AISuggestedPriceMin *decimal.Decimal `json:"ai_suggested_price_min,omitempty"`
	AISuggestedPriceMax *decimal.Decimal `json:"ai_suggested_price_max,omitempty"`
	PriceRationale      string           `json:"price_rationale,omitempty"`

	Negotiation NegotiationLedger `json:"negotiation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSuggestedRange reports whether at least one reconciled bound survived.
func (l Lead) HasSuggestedRange() bool {
	return l.AISuggestedPriceMin != nil || l.AISuggestedPriceMax != nil
}

// DisciplinaOtros is the safe-default discipline applied when classification
// fails or returns nothing usable.
const DisciplinaOtros = "Otros"
