package handler

import "github.com/volunteer-ngo/signup-gateway/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string             `json:"error"`
	Detail string             `json:"detail,omitempty"`
	Fields domain.FieldErrors `json:"fields,omitempty"`
}

// --- Request / Response types ---

type signupRequest struct {
	Name            string `json:"name"            example:"Alice"`
	Email           string `json:"email"           example:"alice@example.org"`
	Password        string `json:"password"        example:"Abcdef1!"`
	ConfirmPassword string `json:"confirmPassword" example:"Abcdef1!"`
}

func (r signupRequest) toInput() domain.SignupInput {
	return domain.SignupInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// validateRequest carries the form values plus, optionally, the single
// field the view wants re-checked on change or blur.
type validateRequest struct {
	signupRequest
	Field string `json:"field,omitempty" validate:"omitempty,oneof=name email password confirmPassword"`
}

type validateResponse struct {
	Valid  bool               `json:"valid"`
	Errors domain.FieldErrors `json:"errors"`
}

type signupResponse struct {
	Status string `json:"status"          example:"success"`
	Next   string `json:"next,omitempty"  example:"login"`
}
