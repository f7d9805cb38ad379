package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sumee_intake/internal/adapter/http/handlers/mocks"
	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/domain/pricing"
	"sumee_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"nombre_cliente":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns lead with string prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		now := time.Now().UTC()
		min := decimal.RequireFromString("800")
		max := decimal.RequireFromString("1200")
		uc.EXPECT().CreateLead(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.CreateLeadInput) (entities.Lead, error) {
				if input.NombreCliente != "Ana" || input.Zona != "Coyoacán" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Lead{
					ID:                  "lead-1",
					NombreCliente:       input.NombreCliente,
					Whatsapp:            input.Whatsapp,
					DescripcionProyecto: input.DescripcionProyecto,
					Servicio:            input.Servicio,
					ClienteID:           input.ClienteID,
					Zona:                input.Zona,
					DisciplinaIA:        "Electricidad",
					UrgenciaIA:          7,
					AISuggestedPriceMin: &min,
					AISuggestedPriceMax: &max,
					Negotiation:         entities.NegotiationLedger{Status: entities.NegotiationStatusNuevo},
					CreatedAt:           now,
					UpdatedAt:           now,
				}, nil
			},
		)

		body := `{"nombre_cliente":"Ana","whatsapp":"+52551234","descripcion_proyecto":"Instalar lámpara en sala","servicio":"electricidad","cliente_id":"cli-1","zona":"Coyoacán"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["ai_suggested_price_min"] != "800.00" || resp["ai_suggested_price_max"] != "1200.00" {
			t.Fatalf("expected string prices, got %s", w.Body.String())
		}
		negotiation, _ := resp["negotiation"].(map[string]any)
		if negotiation["status"] != "nuevo" {
			t.Fatalf("unexpected negotiation: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{
			ID:          "lead-1",
			Negotiation: entities.NegotiationLedger{Status: entities.NegotiationStatusAsignado, ProfesionalAsignadoID: "pro-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("contact invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/v1/leads/:id/contact", h.MarkContacted)

		uc.EXPECT().MarkContacted(gomock.Any(), "lead-1").Return(entities.Lead{}, usecase.ErrInvalidState)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/lead-1/contact", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("assign success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/v1/leads/:id/assign", h.AssignProfessional)

		uc.EXPECT().AssignProfessional(gomock.Any(), "lead-1", "pro-1").Return(entities.Lead{
			ID:          "lead-1",
			Negotiation: entities.NegotiationLedger{Status: entities.NegotiationStatusAsignado, ProfesionalAsignadoID: "pro-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/lead-1/assign", bytes.NewBufferString(`{"professional_id":"pro-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("assign missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/v1/leads/:id/assign", h.AssignProfessional)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/lead-1/assign", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLeadHandler_AllowedWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	r := gin.New()
	r.GET("/v1/leads/:id/allowed-window", func(c *gin.Context) {
		SetCallerID(c, "pro-1")
		h.AllowedWindow(c)
	})

	uc.EXPECT().AllowedWindowForProvider(gomock.Any(), "lead-1", "pro-1").Return(pricing.Window{
		Min: decimal.RequireFromString("850"),
		Max: decimal.RequireFromString("2300"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/allowed-window", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["min"] != "850.00" || resp["max"] != "2300.00" {
		t.Fatalf("unexpected window: %s", w.Body.String())
	}
}

func TestMapLeadError(t *testing.T) {
	if got := mapLeadError(usecase.ErrInvalidLeadID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapLeadError(usecase.ErrInvalidLeadInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapLeadError(usecase.ErrLeadNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapLeadError(usecase.ErrInvalidState); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapLeadError(usecase.ErrConcurrentModification); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapLeadError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
