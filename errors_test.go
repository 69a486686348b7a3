package settings

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapValidationErrorBackfillsExisting(t *testing.T) {
	shared := Invalid("Not a color.")
	err := wrapValidationError("test/APPLE_COLOR", "green", shared)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validationErr.URI != "test/APPLE_COLOR" || validationErr.Value != "green" {
		t.Fatalf("expected uri and value back-filled, got %+v", validationErr)
	}
	if validationErr.Reason != "Not a color." {
		t.Fatalf("expected reason preserved, got %q", validationErr.Reason)
	}
	if validationErr.Err != nil {
		t.Fatalf("expected no cause, got %v", validationErr.Err)
	}
	if shared.(*ValidationError).URI != "" {
		t.Fatalf("expected validator error left untouched")
	}
}

func TestWrapValidationErrorWrapsForeignErrors(t *testing.T) {
	base := errors.New("boom")
	err := wrapValidationError("test/PORT", 1, base)

	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation match")
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected cause to unwrap")
	}
	if !strings.Contains(err.Error(), "validator raised: boom") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if wrapValidationError("x", 1, nil) != nil {
		t.Fatalf("expected nil passthrough")
	}
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
		message  string
	}{
		{&UnknownOptionError{URI: "test/ghost"}, ErrUnknownOption, `"test/ghost"`},
		{&MissingValueError{URI: "test/NAME"}, ErrMissingValue, `"test/NAME"`},
		{&ValidationError{URI: "test/BOOLEAN", Value: "yes", Reason: "not an instance of bool"}, ErrValidation, `"yes"`},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) {
			t.Fatalf("%T should match %v", tc.err, tc.sentinel)
		}
		if !strings.Contains(tc.err.Error(), tc.message) {
			t.Fatalf("expected %q in %q", tc.message, tc.err.Error())
		}
	}
	if errors.Is(&UnknownOptionError{}, ErrMissingValue) {
		t.Fatalf("unexpected cross-sentinel match")
	}
}
