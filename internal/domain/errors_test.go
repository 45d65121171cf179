package domain

import (
	"errors"
	"fmt"
	"testing"
)

// requireValidationField is a test helper that asserts err wraps ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{"name": MsgRequired}}

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("operation failed: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &ValidationError{Fields: map[string]string{
		"name":  MsgRequired,
		"email": MsgRequired,
	}}

	wrapped := fmt.Errorf("operation failed: %w", original)

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("ValidationError.Fields has %d entries, want 2", len(verr.Fields))
	}
	if verr.Fields["name"] != MsgRequired {
		t.Errorf("Fields[\"name\"] = %q, want %q", verr.Fields["name"], MsgRequired)
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"phone": "bad",
		"email": MsgRequired,
	}}

	want := "validation error: email: is required; phone: bad"
	if got := verr.Error(); got != want {
		t.Errorf("ValidationError.Error() = %q, want %q", got, want)
	}
}

func TestNewFieldError(t *testing.T) {
	t.Parallel()

	err := NewFieldError("listing_date", "cannot be in the future")
	requireValidationField(t, err, "listing_date")
}

func TestInvalidCriteria(t *testing.T) {
	t.Parallel()

	err := InvalidCriteria("status", InvalidChoice("BOGUS"))

	if !errors.Is(err, ErrInvalidCriteria) {
		t.Errorf("errors.Is(err, ErrInvalidCriteria) = false, got %v", err)
	}
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("errors.Is(err, ErrInvalidChoice) = false, got %v", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = true, want false")
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrConflict", ErrConflict},
		{"ErrInvalidCriteria", ErrInvalidCriteria},
		{"ErrInvalidChoice", ErrInvalidChoice},
		{"ErrUnavailable", ErrUnavailable},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}
		})
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
