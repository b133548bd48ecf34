package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/volunteer-ngo/signup-gateway/internal/api/metrics"
	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
	"github.com/volunteer-ngo/signup-gateway/internal/core/ports"
)

type SignupHandler struct {
	service ports.SignupService
}

func NewSignupHandler(service ports.SignupService) *SignupHandler {
	return &SignupHandler{service: service}
}

// Validate checks the form values without submitting them.
//
// @Summary      Validate signup values
// @Description  Runs the signup rules on every change or blur. When field is set only that field's error is reported.
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        body  body      validateRequest  true  "Current form values"
// @Success      200   {object}  validateResponse
// @Failure      400   {object}  errorResponse
// @Router       /signup/validate [post]
func (h *SignupHandler) Validate(c echo.Context) error {
	var req validateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, errs := h.service.Validate(req.toInput())
	if errs == nil {
		errs = domain.FieldErrors{}
	}
	if req.Field != "" {
		only := domain.FieldErrors{}
		if msg := errs.Get(req.Field); msg != "" {
			only[req.Field] = msg
		}
		errs = only
	}

	return c.JSON(http.StatusOK, validateResponse{Valid: len(errs) == 0, Errors: errs})
}

// Submit validates the form and creates the volunteer account upstream.
//
// @Summary      Sign up a volunteer
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup form values"
// @Success      200   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /signup [post]
func (h *SignupHandler) Submit(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	start := time.Now()
	next := ""
	resp, err := h.service.Submit(c.Request().Context(), req.toInput(), func(mode string) {
		next = mode
	})

	outcome := outcomeOf(err)
	metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
	metrics.SubmitDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if fields, ok := domain.IsValidationError(err); ok {
		for _, f := range fields.Fields() {
			metrics.ValidationFailuresTotal.WithLabelValues(f).Inc()
		}
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, signupResponse{Status: resp.Status, Next: next})
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if _, ok := domain.IsValidationError(err); ok {
		return metrics.OutcomeInvalid
	}
	switch {
	case errors.Is(err, domain.ErrServiceUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return metrics.OutcomeInFlight
	default:
		return metrics.OutcomeFailed
	}
}
