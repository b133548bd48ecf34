package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string             `json:"error"`
	Detail string             `json:"detail,omitempty"`
	Fields domain.FieldErrors `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders field errors so the form can show them inline.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	if fields, ok := domain.IsValidationError(err); ok {
		return http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: fields}
	}

	var se *domain.SubmissionError
	switch {
	case errors.Is(err, domain.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, errorResponse{Error: "signup is temporarily unavailable"}
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, errorResponse{Error: "a signup for this email is already being processed"}
	case errors.As(err, &se):
		return http.StatusBadGateway, errorResponse{Error: "signup failed, please try again", Detail: se.Detail}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
