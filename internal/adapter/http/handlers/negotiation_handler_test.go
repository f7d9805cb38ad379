package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sumee_intake/internal/adapter/http/handlers/mocks"
	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/domain/pricing"
	"sumee_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func negotiationRouter(h *NegotiationHandler, callerID string) *gin.Engine {
	r := gin.New()
	withCaller := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			SetCallerID(c, callerID)
			next(c)
		}
	}
	r.POST("/v1/leads/:id/agreement", withCaller(h.ConfirmAgreement))
	r.POST("/v1/leads/:id/quote", withCaller(h.SendQuote))
	return r
}

func TestNegotiationHandler_ConfirmAgreement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc), "pro-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/agreement", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepts price as json string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc), "pro-1")

		agreed := decimal.RequireFromString("2250")
		uc.EXPECT().ConfirmAgreement(gomock.Any(), "lead-1", "pro-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, price decimal.Decimal, scope string) (entities.Lead, error) {
				if !price.Equal(agreed) {
					t.Fatalf("unexpected price: %s", price)
				}
				return entities.Lead{
					ID: "lead-1",
					Negotiation: entities.NegotiationLedger{
						Status:      entities.NegotiationStatusAcuerdoConfirmado,
						AgreedPrice: &agreed,
						AgreedScope: scope,
					},
				}, nil
			},
		)

		body := `{"precio_acordado":"2250.00","alcance_acordado":"Instalación completa de luminaria en sala, incluye cableado, soportes y garantía de 6 meses."}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/agreement", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		negotiation, _ := resp["negotiation"].(map[string]any)
		if negotiation["agreed_price"] != "2250.00" {
			t.Fatalf("expected string agreed price, got %s", w.Body.String())
		}
	})

	t.Run("unauthorized caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc), "pro-2")

		uc.EXPECT().ConfirmAgreement(gomock.Any(), "lead-1", "pro-2", gomock.Any(), gomock.Any()).
			Return(entities.Lead{}, usecase.ErrUnauthorized)

		body := `{"precio_acordado":1500,"alcance_acordado":"Instalación completa de luminaria en sala, incluye cableado, soportes y garantía de 6 meses."}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/agreement", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("price out of bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc), "pro-1")

		uc.EXPECT().ConfirmAgreement(gomock.Any(), "lead-1", "pro-1", gomock.Any(), gomock.Any()).
			Return(entities.Lead{}, usecase.ErrPriceOutOfBounds)

		body := `{"precio_acordado":2400,"alcance_acordado":"Instalación completa de luminaria en sala, incluye cableado, soportes y garantía de 6 meses."}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/agreement", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestNegotiationHandler_SendQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("client subtotal and total ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc), "pro-1")

		total := decimal.RequireFromString("300")
		uc.EXPECT().SendQuote(gomock.Any(), "lead-1", "pro-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, items []pricing.QuoteItemInput) (entities.Lead, error) {
				if len(items) != 1 || items[0].Concepto != "Cable 10m" || items[0].Cantidad != 2 {
					t.Fatalf("unexpected items: %+v", items)
				}
				return entities.Lead{
					ID: "lead-1",
					Negotiation: entities.NegotiationLedger{
						Status:     entities.NegotiationStatusPropuestaEnviada,
						QuoteTotal: &total,
					},
				}, nil
			},
		)

		// subtotal and total in the payload are bogus on purpose.
		body := `{"items":[{"concepto":"Cable 10m","cantidad":2,"precio_unitario":"150","subtotal":"1"}],"total":"1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		negotiation, _ := resp["negotiation"].(map[string]any)
		if negotiation["quote_total"] != "300.00" {
			t.Fatalf("expected recomputed total, got %s", w.Body.String())
		}
	})

	t.Run("invalid quote item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc), "pro-1")

		uc.EXPECT().SendQuote(gomock.Any(), "lead-1", "pro-1", gomock.Any()).
			Return(entities.Lead{}, pricing.ErrInvalidQuoteItem)

		body := `{"items":[{"concepto":"ab","cantidad":1,"precio_unitario":"50"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINegotiationUseCase(ctrl)
		r := negotiationRouter(NewNegotiationHandler(uc), "pro-1")

		uc.EXPECT().SendQuote(gomock.Any(), "lead-1", "pro-1", gomock.Any()).
			Return(entities.Lead{}, usecase.ErrConcurrentModification)

		body := `{"items":[{"concepto":"Cable 10m","cantidad":2,"precio_unitario":"150"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quote", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapNegotiationError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidLeadID, http.StatusBadRequest},
		{usecase.ErrLeadNotFound, http.StatusNotFound},
		{usecase.ErrUnauthorized, http.StatusForbidden},
		{usecase.ErrInvalidState, http.StatusConflict},
		{usecase.ErrConcurrentModification, http.StatusConflict},
		{usecase.ErrScopeTooShort, http.StatusUnprocessableEntity},
		{usecase.ErrPriceOutOfBounds, http.StatusUnprocessableEntity},
		{pricing.ErrInvalidQuoteItem, http.StatusUnprocessableEntity},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapNegotiationError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
