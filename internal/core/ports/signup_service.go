package ports

import (
	"context"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
)

type SignupValidator interface {
	Validate(in domain.SignupInput) (domain.SignupRequest, domain.FieldErrors)
	ValidateField(in domain.SignupInput, field string) (string, error)
}

type SignupService interface {
	SignupValidator
	Submit(ctx context.Context, in domain.SignupInput, navigate Navigator) (*domain.SignupResponse, error)
}
