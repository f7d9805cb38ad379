package response

import (
	"time"

	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/domain/pricing"
)

// LeadResponse is the wire shape of a lead. All prices are strings; float64
// never carries money across the API boundary.
type LeadResponse struct {
	ID                  string   `json:"id"`
	NombreCliente       string   `json:"nombre_cliente"`
	Whatsapp            string   `json:"whatsapp"`
	DescripcionProyecto string   `json:"descripcion_proyecto"`
	Servicio            string   `json:"servicio"`
	ClienteID           string   `json:"cliente_id"`
	Zona                string   `json:"zona,omitempty"`
	UbicacionLat        float64  `json:"ubicacion_lat"`
	UbicacionLng        float64  `json:"ubicacion_lng"`
	UbicacionDireccion  string   `json:"ubicacion_direccion,omitempty"`
	ImagenURL           string   `json:"imagen_url,omitempty"`
	PhotosURLs          []string `json:"photos_urls,omitempty"`
	PriorityBoost       bool     `json:"priority_boost"`

	DisciplinaIA  string `json:"disciplina_ia,omitempty"`
	UrgenciaIA    int    `json:"urgencia_ia,omitempty"`
	DiagnosticoIA string `json:"diagnostico_ia,omitempty"`

	AISuggestedPriceMin string `json:"ai_suggested_price_min,omitempty"`
	AISuggestedPriceMax string `json:"ai_suggested_price_max,omitempty"`
	PriceRationale      string `json:"price_rationale,omitempty"`

	Negotiation NegotiationResponse `json:"negotiation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NegotiationResponse struct {
	Status                string `json:"status"`
	ProfesionalAsignadoID string `json:"profesional_asignado_id,omitempty"`

	AgreedPrice string     `json:"agreed_price,omitempty"`
	AgreedScope string     `json:"agreed_scope,omitempty"`
	AgreedAt    *time.Time `json:"agreed_at,omitempty"`
	AgreedBy    string     `json:"agreed_by,omitempty"`

	QuoteItems  []QuoteItemResponse `json:"quote_items,omitempty"`
	QuoteTotal  string              `json:"quote_total,omitempty"`
	QuoteSentAt *time.Time          `json:"quote_sent_at,omitempty"`
	QuoteSentBy string              `json:"quote_sent_by,omitempty"`
}

type QuoteItemResponse struct {
	Concepto       string `json:"concepto"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario string `json:"precio_unitario"`
	Subtotal       string `json:"subtotal"`
}

// AllowedWindowResponse is the price window a provider may agree within.
type AllowedWindowResponse struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

func FromLead(l entities.Lead) LeadResponse {
	items := make([]QuoteItemResponse, 0, len(l.Negotiation.QuoteItems))
	for _, item := range l.Negotiation.QuoteItems {
		items = append(items, QuoteItemResponse{
			Concepto:       item.Concepto,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario.StringFixed(2),
			Subtotal:       item.Subtotal.StringFixed(2),
		})
	}
	if len(items) == 0 {
		items = nil
	}

	resp := LeadResponse{
		ID:                  l.ID,
		NombreCliente:       l.NombreCliente,
		Whatsapp:            l.Whatsapp,
		DescripcionProyecto: l.DescripcionProyecto,
		Servicio:            l.Servicio,
		ClienteID:           l.ClienteID,
		Zona:                l.Zona,
		UbicacionLat:        l.UbicacionLat,
		UbicacionLng:        l.UbicacionLng,
		UbicacionDireccion:  l.UbicacionDireccion,
		ImagenURL:           l.ImagenURL,
		PhotosURLs:          l.PhotosURLs,
		PriorityBoost:       l.PriorityBoost,
		DisciplinaIA:        l.DisciplinaIA,
		UrgenciaIA:          l.UrgenciaIA,
		DiagnosticoIA:       l.DiagnosticoIA,
		PriceRationale:      l.PriceRationale,
		Negotiation: NegotiationResponse{
			Status:                string(l.Negotiation.Status),
			ProfesionalAsignadoID: l.Negotiation.ProfesionalAsignadoID,
			AgreedScope:           l.Negotiation.AgreedScope,
			AgreedAt:              l.Negotiation.AgreedAt,
			AgreedBy:              l.Negotiation.AgreedBy,
			QuoteItems:            items,
			QuoteSentAt:           l.Negotiation.QuoteSentAt,
			QuoteSentBy:           l.Negotiation.QuoteSentBy,
		},
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.AISuggestedPriceMin != nil {
		resp.AISuggestedPriceMin = l.AISuggestedPriceMin.StringFixed(2)
	}
	if l.AISuggestedPriceMax != nil {
		resp.AISuggestedPriceMax = l.AISuggestedPriceMax.StringFixed(2)
	}
	if l.Negotiation.AgreedPrice != nil {
		resp.Negotiation.AgreedPrice = l.Negotiation.AgreedPrice.StringFixed(2)
	}
	if l.Negotiation.QuoteTotal != nil {
		resp.Negotiation.QuoteTotal = l.Negotiation.QuoteTotal.StringFixed(2)
	}
	return resp
}

func FromWindow(w pricing.Window) AllowedWindowResponse {
	return AllowedWindowResponse{
		Min: w.Min.StringFixed(2),
		Max: w.Max.StringFixed(2),
	}
}
