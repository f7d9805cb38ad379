package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/domain/pricing"
	"sumee_intake/internal/usecase/interfaces"
)

var (
	ErrUnauthorized           = errors.New("caller is not the assigned professional")
	ErrInvalidState           = errors.New("negotiation is not in a valid state for this action")
	ErrScopeTooShort          = errors.New("agreed scope is too short")
	ErrPriceOutOfBounds       = errors.New("price is outside the allowed window")
	ErrConcurrentModification = errors.New("lead was modified concurrently, retry with fresh state")
)

const minScopeLength = 50

// Statuses a lead may be in right before each terminal transition.
var (
	confirmEligibleStatuses = []entities.NegotiationStatus{
		entities.NegotiationStatusNuevo,
		entities.NegotiationStatusContactado,
		entities.NegotiationStatusAsignado,
	}
	quoteEligibleStatuses = []entities.NegotiationStatus{
		entities.NegotiationStatusAsignado,
	}
)

// INegotiationUseCase closes a negotiation either with a single agreed price
// or with an itemized quote. Both paths validate everything before touching
// the store and commit through one status-guarded write.
type INegotiationUseCase interface {
	ConfirmAgreement(ctx context.Context, leadID, providerID string, price decimal.Decimal, scope string) (entities.Lead, error)
	SendQuote(ctx context.Context, leadID, providerID string, items []pricing.QuoteItemInput) (entities.Lead, error)
}

type NegotiationUseCase struct {
	repo     interfaces.ILeadRepository
	profiles interfaces.IProviderProfileRepository
	log      zerolog.Logger
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

func NewNegotiationUseCase(
	repo interfaces.ILeadRepository,
	profiles interfaces.IProviderProfileRepository,
	log zerolog.Logger,
) *NegotiationUseCase {
	return &NegotiationUseCase{repo: repo, profiles: profiles, log: log}
}

func (u *NegotiationUseCase) ConfirmAgreement(ctx context.Context, leadID, providerID string, price decimal.Decimal, scope string) (entities.Lead, error) {
	lead, err := u.loadForProvider(ctx, leadID, providerID)
	if err != nil {
		return entities.Lead{}, err
	}

	if !statusIn(lead.Negotiation.Status, confirmEligibleStatuses) {
		return entities.Lead{}, wrapInvalidState(lead.Negotiation.Status)
	}

	scope = strings.TrimSpace(scope)
	if scopeLen := utf8.RuneCountInString(scope); scopeLen < minScopeLength {
		return entities.Lead{}, fmt.Errorf("%w: %d characters, minimum is %d", ErrScopeTooShort, scopeLen, minScopeLength)
	}

	window := pricing.AllowedWindow(suggestedRangeOf(lead), u.tierOf(ctx, providerID))
	if !window.Contains(price) {
		return entities.Lead{}, fmt.Errorf("%w: %s is outside [%s, %s]",
			ErrPriceOutOfBounds, price.StringFixed(2), window.Min.StringFixed(2), window.Max.StringFixed(2))
	}

	updated, err := u.repo.ConfirmAgreement(ctx, lead.ID, confirmEligibleStatuses, entities.Agreement{
		Price: price,
		Scope: scope,
		By:    providerID,
		At:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return entities.Lead{}, ErrConcurrentModification
		}
		return entities.Lead{}, err
	}

	u.log.Info().Str("lead_id", lead.ID).Str("provider_id", providerID).
		Str("agreed_price", price.StringFixed(2)).Msg("agreement confirmed")
	return updated, nil
}

func (u *NegotiationUseCase) SendQuote(ctx context.Context, leadID, providerID string, items []pricing.QuoteItemInput) (entities.Lead, error) {
	lead, err := u.loadForProvider(ctx, leadID, providerID)
	if err != nil {
		return entities.Lead{}, err
	}

	if !statusIn(lead.Negotiation.Status, quoteEligibleStatuses) {
		return entities.Lead{}, wrapInvalidState(lead.Negotiation.Status)
	}

	quoteItems, total, err := pricing.BuildQuote(items)
	if err != nil {
		return entities.Lead{}, err
	}

	updated, err := u.repo.SendQuote(ctx, lead.ID, quoteEligibleStatuses, entities.QuoteSubmission{
		Items: quoteItems,
		Total: total,
		By:    providerID,
		At:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return entities.Lead{}, ErrConcurrentModification
		}
		return entities.Lead{}, err
	}

	u.log.Info().Str("lead_id", lead.ID).Str("provider_id", providerID).
		Int("items", len(quoteItems)).Str("total", total.StringFixed(2)).Msg("quote sent")
	return updated, nil
}

// loadForProvider fetches the lead and runs the authorization check shared
// by both terminal transitions.
func (u *NegotiationUseCase) loadForProvider(ctx context.Context, leadID, providerID string) (entities.Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Lead{}, ErrUnauthorized
	}

	lead, err := u.repo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	if lead.Negotiation.ProfesionalAsignadoID != providerID {
		return entities.Lead{}, ErrUnauthorized
	}
	return lead, nil
}

func (u *NegotiationUseCase) tierOf(ctx context.Context, providerID string) entities.ProviderTier {
	profile, err := u.profiles.GetByUserID(ctx, providerID)
	if err != nil {
		u.log.Warn().Err(err).Str("provider_id", providerID).
			Msg("profile lookup failed, using conservative tier")
		return ""
	}
	return profile.ProTier
}

func wrapInvalidState(current entities.NegotiationStatus) error {
	return fmt.Errorf("%w: current status is %q", ErrInvalidState, current)
}
