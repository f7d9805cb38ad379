package interfaces

import (
	"context"

	"sumee_intake/internal/domain/entities"
)

// IProviderProfileRepository reads the professional profile slice this
// service needs (the tier). A zero-value profile is a valid answer: an
// unknown provider degrades to the most conservative flexibility window.
type IProviderProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.ProviderProfile, error)
}
