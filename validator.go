package settings

import (
	"fmt"
	"reflect"
	"regexp"
)

// ValidatorKind tags how a Validator was constructed.
type ValidatorKind string

const (
	ValidatorNone       ValidatorKind = ""
	ValidatorPattern    ValidatorKind = "pattern"
	ValidatorPredicate  ValidatorKind = "predicate"
	ValidatorExpression ValidatorKind = "expr"
	ValidatorCEL        ValidatorKind = "cel"
)

// Validator is a custom check applied to a value after its type check
// passed. The zero Validator accepts every value.
type Validator struct {
	kind   ValidatorKind
	source string
	check  func(any) error
}

// Kind reports which constructor produced the validator.
func (v Validator) Kind() ValidatorKind {
	return v.kind
}

// Source returns the pattern or expression text, empty for predicates.
func (v Validator) Source() string {
	return v.source
}

// IsZero reports whether v performs no check.
func (v Validator) IsZero() bool {
	return v.check == nil
}

// apply runs the check. Panics are returned as errors.
func (v Validator) apply(value any) (err error) {
	if v.check == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validator panicked: %v", r)
		}
	}()
	return v.check(value)
}

// Predicate wraps fn as a validator. fn rejects a value by returning an
// error; returning Invalid(reason) keeps the reason in the resulting
// ValidationError, any other error is recorded as its cause.
func Predicate(fn func(value any) error) Validator {
	if fn == nil {
		return Validator{}
	}
	return Validator{kind: ValidatorPredicate, check: fn}
}

// Pattern compiles src into a validator that accepts strings matched by src
// at their start.
func Pattern(src string) (Validator, error) {
	re, err := regexp.Compile("^(?:" + src + ")")
	if err != nil {
		return Validator{}, fmt.Errorf("settings: compile pattern %q: %w", src, err)
	}
	return Validator{
		kind:   ValidatorPattern,
		source: src,
		check: func(value any) error {
			s, ok := value.(string)
			if !ok {
				return Invalidf("pattern %q requires a string value, got %T", src, value)
			}
			if !re.MatchString(s) {
				return Invalidf("does not match pattern %q", src)
			}
			return nil
		},
	}, nil
}

// MustPattern is Pattern that panics on an invalid expression. Intended for
// package level descriptor declarations.
func MustPattern(src string) Validator {
	v, err := Pattern(src)
	if err != nil {
		panic(err)
	}
	return v
}

// OneOf accepts only values deeply equal to one of allowed.
func OneOf(allowed ...any) Validator {
	choices := append([]any(nil), allowed...)
	return Predicate(func(value any) error {
		for _, choice := range choices {
			if reflect.DeepEqual(choice, value) {
				return nil
			}
		}
		return Invalidf("must be one of %v", choices)
	})
}
