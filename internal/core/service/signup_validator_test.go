package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
)

func validInput() domain.SignupInput {
	return domain.SignupInput{
		Name:            "Alice",
		Email:           "a@b.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}
}

func TestValidate_ValidInputBuildsRequest(t *testing.T) {
	req, errs := NewSignupValidator().Validate(validInput())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	want := domain.SignupRequest{Name: "Alice", Email: "a@b.com", Password: "Abcdef1!", Role: domain.RoleVolunteer}
	if req != want {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestValidate_EmptyInputIsRequiredEverywhere(t *testing.T) {
	_, errs := NewSignupValidator().Validate(domain.SignupInput{})
	for _, f := range domain.Fields {
		if errs.Get(f) != MsgRequired {
			t.Errorf("field %s: expected %q, got %q", f, MsgRequired, errs.Get(f))
		}
	}
	if len(errs) != len(domain.Fields) {
		t.Fatalf("expected %d errors, got %v", len(domain.Fields), errs)
	}
}

func TestValidate_FieldRules(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*domain.SignupInput)
		field string
		want  string
	}{
		{"name too short", func(in *domain.SignupInput) { in.Name = "Al" }, domain.FieldName, MsgNameTooShort},
		{"name at minimum", func(in *domain.SignupInput) { in.Name = "Ali" }, domain.FieldName, ""},
		{"name at maximum", func(in *domain.SignupInput) { in.Name = strings.Repeat("a", 50) }, domain.FieldName, ""},
		{"name too long", func(in *domain.SignupInput) { in.Name = strings.Repeat("a", 51) }, domain.FieldName, MsgNameTooLong},
		{"name counts runes", func(in *domain.SignupInput) { in.Name = "Zoë" }, domain.FieldName, ""},
		{"email invalid", func(in *domain.SignupInput) { in.Email = "not-an-email" }, domain.FieldEmail, MsgInvalidEmail},
		{"email missing domain", func(in *domain.SignupInput) { in.Email = "alice@" }, domain.FieldEmail, MsgInvalidEmail},
		{"password lowercase only", func(in *domain.SignupInput) {
			in.Password, in.ConfirmPassword = "abcdefgh", "abcdefgh"
		}, domain.FieldPassword, MsgWeakPassword},
		{"password without special", func(in *domain.SignupInput) {
			in.Password, in.ConfirmPassword = "Abcdefg1", "Abcdefg1"
		}, domain.FieldPassword, MsgWeakPassword},
		{"password without digit", func(in *domain.SignupInput) {
			in.Password, in.ConfirmPassword = "Abcdefg!", "Abcdefg!"
		}, domain.FieldPassword, MsgWeakPassword},
		{"password without upper", func(in *domain.SignupInput) {
			in.Password, in.ConfirmPassword = "abcdef1!", "abcdef1!"
		}, domain.FieldPassword, MsgWeakPassword},
		{"password too short", func(in *domain.SignupInput) {
			in.Password, in.ConfirmPassword = "Abcd1!x", "Abcd1!x"
		}, domain.FieldPassword, MsgWeakPassword},
		{"password with newline", func(in *domain.SignupInput) {
			in.Password, in.ConfirmPassword = "Abcd\nef1!", "Abcd\nef1!"
		}, domain.FieldPassword, MsgWeakPassword},
		{"confirm mismatch", func(in *domain.SignupInput) { in.ConfirmPassword = "Abcdef1?" }, domain.FieldConfirmPassword, MsgPasswordMismatch},
		{"confirm missing", func(in *domain.SignupInput) { in.ConfirmPassword = "" }, domain.FieldConfirmPassword, MsgRequired},
	}

	v := NewSignupValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.edit(&in)
			_, errs := v.Validate(in)
			if got := errs.Get(tc.field); got != tc.want {
				t.Fatalf("field %s: expected %q, got %q (all: %v)", tc.field, tc.want, got, errs)
			}
		})
	}
}

func TestValidate_MismatchOnlyAfterPasswordsPass(t *testing.T) {
	in := validInput()
	in.Password = "weak"
	in.ConfirmPassword = "different"

	_, errs := NewSignupValidator().Validate(in)
	if errs.Get(domain.FieldPassword) != MsgWeakPassword {
		t.Fatalf("expected weak password error, got %v", errs)
	}
	if errs.Has(domain.FieldConfirmPassword) {
		t.Fatalf("mismatch must not be reported while password is invalid, got %v", errs)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	v := NewSignupValidator()
	in := domain.SignupInput{Name: "Al", Email: "x", Password: "abc", ConfirmPassword: "abd"}

	_, first := v.Validate(in)
	_, second := v.Validate(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not idempotent: %v vs %v", first, second)
	}
}

func TestValidateField(t *testing.T) {
	v := NewSignupValidator()
	in := validInput()
	in.Name = "Al"

	msg, err := v.ValidateField(in, domain.FieldName)
	if err != nil || msg != MsgNameTooShort {
		t.Fatalf("expected %q, got %q (err %v)", MsgNameTooShort, msg, err)
	}
	msg, err = v.ValidateField(in, domain.FieldEmail)
	if err != nil || msg != "" {
		t.Fatalf("expected valid email, got %q (err %v)", msg, err)
	}
	if _, err := v.ValidateField(in, "phone"); err != domain.ErrUnknownField {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Abcdef1!":       true,
		"P@ssw0rdLong":   true,
		"Ab1!Ab1!":       true,
		"Ab1!Ab1":        false,
		"ABCDEF1!":       false,
		"Abcdef1 ":       false,
		"Abcdef1!\u2028": false,
	}
	for in, want := range cases {
		if got := strongPassword(in); got != want {
			t.Errorf("strongPassword(%q) = %v, want %v", in, got, want)
		}
	}
}
