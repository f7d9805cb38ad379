package interfaces

import (
	"context"
	"errors"

	"sumee_intake/internal/domain/entities"
)

// ErrStatusConflict is returned when a guarded negotiation write finds the
// lead in none of the expected statuses. After a successful read it means a
// concurrent transition won the race; callers may retry against fresh state.
var ErrStatusConflict = errors.New("negotiation status changed concurrently")

// ILeadRepository abstracts DynamoDB persistence for leads.
//
// Every negotiation transition is a single conditional write guarded on the
// current status (the expected list), so two concurrent confirm/quote calls
// can never both succeed on the same lead. Implementations must map the
// store's conditional-check failure to ErrStatusConflict.
type ILeadRepository interface {
	Create(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	MarkContacted(ctx context.Context, id string, expected []entities.NegotiationStatus) (entities.Lead, error)
	AssignProfessional(ctx context.Context, id, professionalID string, expected []entities.NegotiationStatus) (entities.Lead, error)
	ConfirmAgreement(ctx context.Context, id string, expected []entities.NegotiationStatus, agreement entities.Agreement) (entities.Lead, error)
	SendQuote(ctx context.Context, id string, expected []entities.NegotiationStatus, quote entities.QuoteSubmission) (entities.Lead, error)
}
