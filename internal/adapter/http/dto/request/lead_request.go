package request

import (
	"sumee_intake/internal/usecase"
)

// CreateLeadRequest is the intake payload submitted by the client app. Field
// names follow the client contract, so most of them are Spanish.
type CreateLeadRequest struct {
	NombreCliente       string   `json:"nombre_cliente" binding:"required"`
	Whatsapp            string   `json:"whatsapp" binding:"required"`
	DescripcionProyecto string   `json:"descripcion_proyecto" binding:"required"`
	Servicio            string   `json:"servicio" binding:"required"`
	ClienteID           string   `json:"cliente_id" binding:"required"`
	Zona                string   `json:"zona"`
	UbicacionLat        float64  `json:"ubicacion_lat"`
	UbicacionLng        float64  `json:"ubicacion_lng"`
	UbicacionDireccion  string   `json:"ubicacion_direccion"`
	ImagenURL           string   `json:"imagen_url"`
	PhotosURLs          []string `json:"photos_urls"`
	PriorityBoost       bool     `json:"priority_boost"`
	Disciplina          string   `json:"disciplina"`
	Role                string   `json:"role"`
}

func (r CreateLeadRequest) ToInput() usecase.CreateLeadInput {
	return usecase.CreateLeadInput{
		NombreCliente:       r.NombreCliente,
		Whatsapp:            r.Whatsapp,
		DescripcionProyecto: r.DescripcionProyecto,
		Servicio:            r.Servicio,
		ClienteID:           r.ClienteID,
		Zona:                r.Zona,
		UbicacionLat:        r.UbicacionLat,
		UbicacionLng:        r.UbicacionLng,
		UbicacionDireccion:  r.UbicacionDireccion,
		ImagenURL:           r.ImagenURL,
		PhotosURLs:          r.PhotosURLs,
		PriorityBoost:       r.PriorityBoost,
		Disciplina:          r.Disciplina,
		Role:                r.Role,
	}
}

// AssignProfessionalRequest assigns a professional to a lead.
type AssignProfessionalRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
}
