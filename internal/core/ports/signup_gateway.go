package ports

import (
	"context"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
)

// SignupGateway delivers a validated signup to the volunteer backend.
type SignupGateway interface {
	Create(ctx context.Context, baseURL string, req domain.SignupRequest) (*domain.SignupResponse, error)
}

// SubmitGuard keeps a single submission in flight per key.
type SubmitGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Navigator switches the parent view to another mode, e.g. "login".
type Navigator func(mode string)

// BaseURLFunc returns the volunteer backend base URL, or "" when it is not
// configured.
type BaseURLFunc func() string
