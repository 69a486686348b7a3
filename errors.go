package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDescriptor indicates a descriptor declaration that cannot be
	// satisfied, e.g. one that is both required and defaulted.
	ErrInvalidDescriptor = errors.New("settings: invalid descriptor")
	// ErrDuplicateOption indicates two descriptors registered with the same URI.
	ErrDuplicateOption = errors.New("settings: option already registered")
	// ErrAlreadyLoaded is returned by every Load call after a successful one.
	ErrAlreadyLoaded = errors.New("settings: configuration already loaded")
	// ErrSourceNotFound indicates the configuration path is not a readable file.
	ErrSourceNotFound = errors.New("settings: configuration source not found")
	// ErrConfigVariableNotFound indicates the source did not define a usable
	// top-level config mapping.
	ErrConfigVariableNotFound = errors.New("settings: config variable not found")
	// ErrUnknownOption matches *UnknownOptionError.
	ErrUnknownOption = errors.New("settings: unknown configuration option")
	// ErrMissingValue matches *MissingValueError.
	ErrMissingValue = errors.New("settings: missing value for required option")
	// ErrValidation matches *ValidationError.
	ErrValidation = errors.New("settings: validation failed")
	// ErrNotLoaded is returned by accessors before a successful Load.
	ErrNotLoaded = errors.New("settings: configuration not loaded")
	// ErrKeyNotFound is returned by accessors for URIs without a resolved value.
	ErrKeyNotFound = errors.New("settings: key not found")
	// ErrTypeMismatch is returned by Lookup when the resolved value has a
	// different Go type than requested.
	ErrTypeMismatch = errors.New("settings: type mismatch")
)

// UnknownOptionError reports an in-domain key with no registered descriptor.
type UnknownOptionError struct {
	URI string
}

func (e *UnknownOptionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("settings: unknown configuration option %q", e.URI)
}

func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// MissingValueError reports a required option absent from the source.
type MissingValueError struct {
	URI string
}

func (e *MissingValueError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("settings: no value provided for required option %q", e.URI)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// ValidationError captures the option, the rejected value and why it was
// rejected. Err holds the original error when a custom validator failed in
// an unexpected way.
type ValidationError struct {
	URI    string
	Value  any
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("settings: option %q has invalid value %s", e.URI, describeValue(e.Value))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (validator raised: %v)", e.Err)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid returns a validation failure carrying only a reason. Predicate
// validators return it to reject a value; the descriptor fills in the URI
// and value.
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

// Invalidf is Invalid with fmt.Sprintf formatting.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// wrapValidationError attaches uri and value to err. Existing
// ValidationErrors keep their reason and cause; the returned error is always
// a fresh value so shared sentinels returned by validators stay untouched.
func wrapValidationError(uri string, value any, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return &ValidationError{
			URI:    uri,
			Value:  value,
			Reason: validationErr.Reason,
			Err:    validationErr.Err,
		}
	}

	return &ValidationError{
		URI:    uri,
		Value:  value,
		Reason: "validator returned an error",
		Err:    err,
	}
}

func describeValue(value any) string {
	if value == nil {
		return "<nil>"
	}
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v (%T)", value, value)
}
