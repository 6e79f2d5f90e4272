package ports

import (
	"context"

	"castboard/internal/writing/core/domain"
)

// CompleterPort sends a prompt to the completion gateway and returns the raw
// assistant text. Implementations surface domain.ErrRateLimited,
// domain.ErrQuotaExhausted and domain.ErrGatewayUnavailable for the failure
// modes callers need to distinguish.
type CompleterPort interface {
	Complete(ctx context.Context, prompt domain.Prompt) (string, error)
}
