package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
	"github.com/volunteer-ngo/signup-gateway/internal/core/ports"
)

type signupService struct {
	*SignupValidator
	gateway ports.SignupGateway
	guard   ports.SubmitGuard
	baseURL ports.BaseURLFunc
	log     zerolog.Logger
}

// NewSignupService returns a SignupService that posts validated signups
// through gateway. guard may be nil, in which case concurrent submissions
// for the same email are not prevented at this layer.
func NewSignupService(
	validator *SignupValidator,
	gateway ports.SignupGateway,
	guard ports.SubmitGuard,
	baseURL ports.BaseURLFunc,
	log zerolog.Logger,
) ports.SignupService {
	if validator == nil {
		validator = NewSignupValidator()
	}
	return &signupService{
		SignupValidator: validator,
		gateway:         gateway,
		guard:           guard,
		baseURL:         baseURL,
		log:             log,
	}
}

// Submit validates in and, when valid, creates the volunteer account
// upstream. navigate is called with "login" only after the backend
// answered with status "success".
func (s *signupService) Submit(ctx context.Context, in domain.SignupInput, navigate ports.Navigator) (*domain.SignupResponse, error) {
	// 1. Validate; no request leaves the process with field errors.
	req, errs := s.Validate(in)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	// 2. Base URL is a hard precondition.
	baseURL := ""
	if s.baseURL != nil {
		baseURL = strings.TrimSpace(s.baseURL())
	}
	if baseURL == "" {
		s.log.Warn().Msg("signup server url not configured, submission skipped")
		return nil, domain.ErrServiceUnavailable
	}

	// 3. One submission in flight per email.
	key := strings.ToLower(strings.TrimSpace(req.Email))
	if s.guard != nil {
		ok, err := s.guard.Acquire(ctx, key)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("submit guard unavailable, submitting anyway")
		case !ok:
			return nil, domain.ErrSubmissionInFlight
		default:
			defer func() {
				if err := s.guard.Release(context.WithoutCancel(ctx), key); err != nil {
					s.log.Warn().Err(err).Msg("failed to release submit guard")
				}
			}()
		}
	}

	// 4. Deliver.
	resp, err := s.gateway.Create(ctx, baseURL, req)
	if err != nil {
		s.log.Error().Err(err).Str("email_domain", emailDomain(req.Email)).Msg("signup request failed")
		return nil, &domain.SubmissionError{Detail: detailOf(resp), Err: err}
	}

	// 5. Only an explicit success moves the user on.
	if !resp.Succeeded() {
		s.log.Info().
			Str("status", statusOf(resp)).
			Str("email_domain", emailDomain(req.Email)).
			Msg("signup rejected by server")
		return resp, &domain.SubmissionError{Detail: detailOf(resp)}
	}

	s.log.Info().Str("email_domain", emailDomain(req.Email)).Msg("volunteer signed up")
	if navigate != nil {
		navigate(domain.ModeLogin)
	}
	return resp, nil
}

func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return email[i+1:]
	}
	return ""
}

func statusOf(resp *domain.SignupResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Status
}

func detailOf(resp *domain.SignupResponse) string {
	if resp == nil {
		return ""
	}
	if resp.Message != "" {
		return resp.Message
	}
	if resp.Status != "" && resp.Status != domain.StatusSuccess {
		return fmt.Sprintf("unexpected status %q", resp.Status)
	}
	return ""
}
