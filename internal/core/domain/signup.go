package domain

import (
	"errors"
	"sort"
	"strings"
)

const RoleVolunteer = "VOLUNTEER"

// StatusSuccess is the only upstream status that completes a signup.
const StatusSuccess = "success"

// Navigation modes the parent view switches between.
const (
	ModeSignup = "signup"
	ModeLogin  = "login"
)

// Field names as they appear on the wire and in FieldErrors.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Fields lists the form fields in declaration order.
var Fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}

var (
	ErrServiceUnavailable = errors.New("signup service unavailable")
	ErrSubmissionFailed   = errors.New("signup submission failed")
	ErrSubmissionInFlight = errors.New("signup submission already in flight")
	ErrUnknownField       = errors.New("unknown signup field")
)

// SignupInput is the record the user edits field by field.
type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Get returns the value of the named field.
func (in SignupInput) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return in.Name, nil
	case FieldEmail:
		return in.Email, nil
	case FieldPassword:
		return in.Password, nil
	case FieldConfirmPassword:
		return in.ConfirmPassword, nil
	}
	return "", ErrUnknownField
}

// Set stores value under the named field.
func (in *SignupInput) Set(field, value string) error {
	switch field {
	case FieldName:
		in.Name = value
	case FieldEmail:
		in.Email = value
	case FieldPassword:
		in.Password = value
	case FieldConfirmPassword:
		in.ConfirmPassword = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SignupRequest is the payload sent to the volunteer endpoint. It is only
// built from an input that validated cleanly and never carries the
// password confirmation.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignupResponse is the subset of the upstream reply we act on.
type SignupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (r *SignupResponse) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// FieldErrors maps a field name to its user-facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// Fields returns the names of the failing fields, sorted.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for f := range fe {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ValidationError carries per-field messages so callers can tell user
// input problems apart from system failures.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "signup validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}

// IsValidationError reports whether err came from a failed validation and
// returns its field errors.
func IsValidationError(err error) (FieldErrors, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}

// SubmissionError wraps ErrSubmissionFailed with the detail the upstream
// returned, if any.
type SubmissionError struct {
	Detail string
	Err    error
}

func (e *SubmissionError) Error() string {
	msg := ErrSubmissionFailed.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SubmissionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSubmissionFailed}
	}
	return []error{ErrSubmissionFailed, e.Err}
}
