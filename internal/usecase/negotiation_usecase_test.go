package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/domain/pricing"
	"sumee_intake/internal/usecase/interfaces"
	mock_interfaces "sumee_intake/internal/usecase/interfaces/mocks"
)

const longScope = "Instalación completa de luminaria en sala, incluye cableado, soportes y garantía de 6 meses."

func assignedLead() entities.Lead {
	return entities.Lead{
		ID:                  "lead-1",
		AISuggestedPriceMin: decp("1000"),
		AISuggestedPriceMax: decp("2000"),
		Negotiation: entities.NegotiationLedger{
			Status:                entities.NegotiationStatusAsignado,
			ProfesionalAsignadoID: "pro-1",
		},
	}
}

func newNegotiationUseCaseForTest(ctrl *gomock.Controller) (*NegotiationUseCase, *mock_interfaces.MockILeadRepository, *mock_interfaces.MockIProviderProfileRepository) {
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	profiles := mock_interfaces.NewMockIProviderProfileRepository(ctrl)
	return NewNegotiationUseCase(repo, profiles, zerolog.Nop()), repo, profiles
}

func TestNegotiationUseCase_ConfirmAgreement(t *testing.T) {
	t.Run("caller is not the assigned professional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newNegotiationUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)

		_, err := uc.ConfirmAgreement(context.Background(), "lead-1", "pro-2", decimal.RequireFromString("1500"), longScope)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("terminal status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newNegotiationUseCaseForTest(ctrl)

		lead := assignedLead()
		lead.Negotiation.Status = entities.NegotiationStatusPropuestaEnviada
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)

		_, err := uc.ConfirmAgreement(context.Background(), "lead-1", "pro-1", decimal.RequireFromString("1500"), longScope)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("scope too short", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newNegotiationUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)

		_, err := uc.ConfirmAgreement(context.Background(), "lead-1", "pro-1", decimal.RequireFromString("1500"), "cambiar foco")
		if !errors.Is(err, ErrScopeTooShort) {
			t.Fatalf("expected ErrScopeTooShort, got %v", err)
		}
	})

	t.Run("price outside tier window leaves no mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, profiles := newNegotiationUseCaseForTest(ctrl)

		// certified_pro over [1000, 2000] allows [850, 2300]; 2400 is out.
		// No ConfirmAgreement expectation: any write would fail the test.
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "pro-1").
			Return(entities.ProviderProfile{UserID: "pro-1", ProTier: entities.TierCertifiedPro}, nil)

		_, err := uc.ConfirmAgreement(context.Background(), "lead-1", "pro-1", decimal.RequireFromString("2400"), longScope)
		if !errors.Is(err, ErrPriceOutOfBounds) {
			t.Fatalf("expected ErrPriceOutOfBounds, got %v", err)
		}
		if !strings.Contains(err.Error(), "2300") {
			t.Fatalf("expected the violated bound in the error, got %q", err)
		}
	})

	t.Run("price at window edge accepted with audit stamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, profiles := newNegotiationUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "pro-1").
			Return(entities.ProviderProfile{UserID: "pro-1", ProTier: entities.TierCertifiedPro}, nil)
		repo.EXPECT().ConfirmAgreement(gomock.Any(), "lead-1", gomock.Any(), gomock.AssignableToTypeOf(entities.Agreement{})).DoAndReturn(
			func(_ context.Context, _ string, expected []entities.NegotiationStatus, a entities.Agreement) (entities.Lead, error) {
				if !a.Price.Equal(decimal.RequireFromString("2250")) {
					t.Fatalf("unexpected agreed price: %s", a.Price)
				}
				if a.By != "pro-1" || a.At.IsZero() {
					t.Fatalf("expected audit fields, got %+v", a)
				}
				if len(expected) == 0 {
					t.Fatal("expected a status guard")
				}
				lead := assignedLead()
				lead.Negotiation.Status = entities.NegotiationStatusAcuerdoConfirmado
				lead.Negotiation.AgreedPrice = &a.Price
				lead.Negotiation.AgreedScope = a.Scope
				lead.Negotiation.AgreedBy = a.By
				lead.Negotiation.AgreedAt = &a.At
				return lead, nil
			},
		)

		lead, err := uc.ConfirmAgreement(context.Background(), "lead-1", "pro-1", decimal.RequireFromString("2250"), longScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Negotiation.Status != entities.NegotiationStatusAcuerdoConfirmado {
			t.Fatalf("unexpected status: %q", lead.Negotiation.Status)
		}
	})

	t.Run("no suggested range degrades to domain bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, profiles := newNegotiationUseCaseForTest(ctrl)

		lead := assignedLead()
		lead.AISuggestedPriceMin = nil
		lead.AISuggestedPriceMax = nil
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "pro-1").
			Return(entities.ProviderProfile{UserID: "pro-1", ProTier: entities.TierVerifiedExpress}, nil)
		repo.EXPECT().ConfirmAgreement(gomock.Any(), "lead-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ []entities.NegotiationStatus, a entities.Agreement) (entities.Lead, error) {
				out := lead
				out.Negotiation.Status = entities.NegotiationStatusAcuerdoConfirmado
				return out, nil
			},
		)

		if _, err := uc.ConfirmAgreement(context.Background(), "lead-1", "pro-1", decimal.RequireFromString("49999"), longScope); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status race maps to concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, profiles := newNegotiationUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "pro-1").
			Return(entities.ProviderProfile{UserID: "pro-1", ProTier: entities.TierCertifiedPro}, nil)
		repo.EXPECT().ConfirmAgreement(gomock.Any(), "lead-1", gomock.Any(), gomock.Any()).
			Return(entities.Lead{}, interfaces.ErrStatusConflict)

		_, err := uc.ConfirmAgreement(context.Background(), "lead-1", "pro-1", decimal.RequireFromString("1500"), longScope)
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestNegotiationUseCase_SendQuote(t *testing.T) {
	t.Run("one bad item rejects the whole submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newNegotiationUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)

		items := []pricing.QuoteItemInput{
			{Concepto: "Cable 10m", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("150")},
			{Concepto: "ab", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("50")},
		}
		_, err := uc.SendQuote(context.Background(), "lead-1", "pro-1", items)
		if !errors.Is(err, pricing.ErrInvalidQuoteItem) {
			t.Fatalf("expected ErrInvalidQuoteItem, got %v", err)
		}
	})

	t.Run("quote only allowed from asignado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newNegotiationUseCaseForTest(ctrl)

		lead := assignedLead()
		lead.Negotiation.Status = entities.NegotiationStatusContactado
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)

		items := []pricing.QuoteItemInput{
			{Concepto: "Cable 10m", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("150")},
		}
		if _, err := uc.SendQuote(context.Background(), "lead-1", "pro-1", items); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("total recomputed server-side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newNegotiationUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)
		repo.EXPECT().SendQuote(gomock.Any(), "lead-1", gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteSubmission{})).DoAndReturn(
			func(_ context.Context, _ string, _ []entities.NegotiationStatus, q entities.QuoteSubmission) (entities.Lead, error) {
				if !q.Total.Equal(decimal.RequireFromString("300")) {
					t.Fatalf("expected recomputed total 300, got %s", q.Total)
				}
				if len(q.Items) != 1 || !q.Items[0].Subtotal.Equal(decimal.RequireFromString("300")) {
					t.Fatalf("unexpected items: %+v", q.Items)
				}
				if q.By != "pro-1" || q.At.IsZero() {
					t.Fatalf("expected audit fields, got %+v", q)
				}
				lead := assignedLead()
				lead.Negotiation.Status = entities.NegotiationStatusPropuestaEnviada
				lead.Negotiation.QuoteItems = q.Items
				lead.Negotiation.QuoteTotal = &q.Total
				return lead, nil
			},
		)

		items := []pricing.QuoteItemInput{
			{Concepto: "Cable 10m", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("150")},
		}
		lead, err := uc.SendQuote(context.Background(), "lead-1", "pro-1", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Negotiation.Status != entities.NegotiationStatusPropuestaEnviada {
			t.Fatalf("unexpected status: %q", lead.Negotiation.Status)
		}
	})

	t.Run("status race maps to concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newNegotiationUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(assignedLead(), nil)
		repo.EXPECT().SendQuote(gomock.Any(), "lead-1", gomock.Any(), gomock.Any()).
			Return(entities.Lead{}, interfaces.ErrStatusConflict)

		items := []pricing.QuoteItemInput{
			{Concepto: "Cable 10m", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("150")},
		}
		if _, err := uc.SendQuote(context.Background(), "lead-1", "pro-1", items); !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}
