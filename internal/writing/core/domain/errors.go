package domain

import "errors"

// Upstream completion gateway failure modes, surfaced so the HTTP layer can
// map each to its own status code.
var (
	ErrRateLimited        = errors.New("completion gateway rate limit exceeded")
	ErrQuotaExhausted     = errors.New("completion gateway credits exhausted")
	ErrGatewayUnavailable = errors.New("completion gateway unavailable")
)
