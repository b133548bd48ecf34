package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/volunteer-ngo/signup-gateway/internal/core/domain"
	"github.com/volunteer-ngo/signup-gateway/internal/core/ports"
)

// SignupForm holds the state a signup view renders: the values being
// edited, which fields were touched, the errors derived from the values,
// and the outcome of the last submit. Errors are recomputed on every edit.
type SignupForm struct {
	svc      ports.SignupService
	navigate ports.Navigator

	mu        sync.Mutex
	values    domain.SignupInput
	touched   map[string]bool
	errs      domain.FieldErrors
	submitErr error

	submitting atomic.Bool
}

func NewSignupForm(svc ports.SignupService, navigate ports.Navigator) *SignupForm {
	f := &SignupForm{
		svc:      svc,
		navigate: navigate,
		touched:  make(map[string]bool, len(domain.Fields)),
	}
	f.revalidate()
	return f
}

// Change stores value under field and revalidates the whole record.
func (f *SignupForm) Change(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.values.Set(field, value); err != nil {
		return err
	}
	f.revalidate()
	return nil
}

// Blur marks field touched so its error becomes visible.
func (f *SignupForm) Blur(field string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.values.Get(field); err != nil {
		return err
	}
	f.touched[field] = true
	f.revalidate()
	return nil
}

func (f *SignupForm) Values() domain.SignupInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *SignupForm) Touched(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched[field]
}

// Errors returns every current field error, touched or not.
func (f *SignupForm) Errors() domain.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.errs, nil)
}

// VisibleErrors returns the errors of touched fields only.
func (f *SignupForm) VisibleErrors() domain.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.errs, f.touched)
}

// SubmitError is the error of the last submit, nil after a success.
func (f *SignupForm) SubmitError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

func (f *SignupForm) Submitting() bool { return f.submitting.Load() }

// Submit touches every field and hands the current values to the service.
// Only one Submit runs at a time; a concurrent call returns
// ErrSubmissionInFlight without side effects. Values are cleared after a
// successful signup and kept otherwise.
func (f *SignupForm) Submit(ctx context.Context) error {
	if !f.submitting.CompareAndSwap(false, true) {
		return domain.ErrSubmissionInFlight
	}
	defer f.submitting.Store(false)

	f.mu.Lock()
	for _, name := range domain.Fields {
		f.touched[name] = true
	}
	in := f.values
	f.mu.Unlock()

	_, err := f.svc.Submit(ctx, in, f.navigate)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			f.errs = ve.Fields
		}
		f.submitErr = err
		return err
	}
	f.submitErr = nil
	f.reset()
	return nil
}

// Reset clears values, touched state, and the last submit error.
func (f *SignupForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitErr = nil
	f.reset()
}

func (f *SignupForm) reset() {
	f.values = domain.SignupInput{}
	f.touched = make(map[string]bool, len(domain.Fields))
	f.revalidate()
}

// GoToLogin switches the parent view to the login form.
func (f *SignupForm) GoToLogin() {
	if f.navigate != nil {
		f.navigate(domain.ModeLogin)
	}
}

func (f *SignupForm) revalidate() {
	_, errs := f.svc.Validate(f.values)
	if errs == nil {
		errs = domain.FieldErrors{}
	}
	f.errs = errs
}

func copyErrors(src domain.FieldErrors, only map[string]bool) domain.FieldErrors {
	out := make(domain.FieldErrors, len(src))
	for k, v := range src {
		if only != nil && !only[k] {
			continue
		}
		out[k] = v
	}
	return out
}
