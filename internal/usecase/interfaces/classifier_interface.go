package interfaces

import (
	"context"

	"sumee_intake/internal/domain/entities"
)

// IServiceClassifier wraps the external language-model classification call.
// It may fail (network, timeout, malformed response); callers must treat any
// error as "no classification" and proceed with safe defaults, never
// blocking lead creation on it.
type IServiceClassifier interface {
	Classify(ctx context.Context, input entities.ClassificationInput) (entities.ClassificationResult, error)
}
