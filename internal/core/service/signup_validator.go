package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
)

const (
	MsgRequired         = "Required"
	MsgNameTooShort     = "Name must be atleast 3 characters long"
	MsgNameTooLong      = "Name must be less than 50 characters long"
	MsgInvalidEmail     = "Enter a valid email"
	MsgWeakPassword     = "Password should contain atleast 8 characters, 1 uppercase, 1 lowercase, 1 number and 1 special character"
	MsgPasswordMismatch = "Passwords do not match"
)

const passwordTag = "volunteer_password"

const passwordSpecials = "!@#$%^&*"

// signupSchema mirrors domain.SignupInput with the per-field rules. Tags
// run left to right and stop at the first failure, so tag order is the
// message priority.
type signupSchema struct {
	Name            string `json:"name"            validate:"required,min=3,max=50"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,volunteer_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// SignupValidator checks a SignupInput against the volunteer signup rules.
// It is pure and safe for concurrent use.
type SignupValidator struct {
	v *validator.Validate
}

func NewSignupValidator() *SignupValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Only fails on an empty tag name or a nil func.
	_ = v.RegisterValidation(passwordTag, func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	return &SignupValidator{v: v}
}

// Validate returns the request to send when in is valid, or the field
// errors otherwise. The password confirmation is compared only once both
// password fields passed their own rules.
func (sv *SignupValidator) Validate(in domain.SignupInput) (domain.SignupRequest, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	err := sv.v.Struct(signupSchema{
		Name:            in.Name,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	})
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if !errs.Has(fe.Field()) {
				errs[fe.Field()] = fieldMessage(fe)
			}
		}
	}

	if !errs.Has(domain.FieldPassword) && !errs.Has(domain.FieldConfirmPassword) &&
		in.Password != in.ConfirmPassword {
		errs[domain.FieldConfirmPassword] = MsgPasswordMismatch
	}

	if len(errs) > 0 {
		return domain.SignupRequest{}, errs
	}
	return domain.SignupRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     domain.RoleVolunteer,
	}, nil
}

// ValidateField returns the current message for one field, "" when the
// field is valid.
func (sv *SignupValidator) ValidateField(in domain.SignupInput, field string) (string, error) {
	if _, err := in.Get(field); err != nil {
		return "", err
	}
	_, errs := sv.Validate(in)
	return errs.Get(field), nil
}

// fieldMessage converts a single FieldError into the message shown under
// the input.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "min":
		return MsgNameTooShort
	case "max":
		return MsgNameTooLong
	case "email":
		return MsgInvalidEmail
	case passwordTag:
		return MsgWeakPassword
	default:
		return fe.Error()
	}
}

// strongPassword requires a digit, one of !@#$%^&*, a lower and an upper
// case ASCII letter, at least 8 characters, and no line terminators.
func strongPassword(s string) bool {
	var digit, special, lower, upper bool
	n := 0
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			return false
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
		n++
	}
	return n >= 8 && digit && special && lower && upper
}
