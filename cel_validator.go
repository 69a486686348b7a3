package settings

import (
	"fmt"

	celgo "github.com/google/cel-go/cel"
)

// CEL compiles src with cel-go into a validator. The candidate is bound to
// the dynamically typed variable `value`; src must evaluate to a bool.
//
//	settings.CEL(`value.startsWith("https://")`)
func CEL(src string) (Validator, error) {
	if src == "" {
		return Validator{}, fmt.Errorf("settings: cel expression must not be empty")
	}
	env, err := celgo.NewEnv(celgo.Variable("value", celgo.DynType))
	if err != nil {
		return Validator{}, fmt.Errorf("settings: cel environment: %w", err)
	}
	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return Validator{}, fmt.Errorf("settings: compile cel %q: %w", src, issues.Err())
	}
	program, err := env.Program(ast)
	if err != nil {
		return Validator{}, fmt.Errorf("settings: cel program %q: %w", src, err)
	}
	return Validator{
		kind:   ValidatorCEL,
		source: src,
		check: func(value any) error {
			out, _, err := program.Eval(map[string]any{"value": value})
			if err != nil {
				return err
			}
			ok, isBool := out.Value().(bool)
			if !isBool {
				return fmt.Errorf("cel %q returned %T, expected bool", src, out.Value())
			}
			if !ok {
				return Invalidf("cel %q evaluated to false", src)
			}
			return nil
		},
	}, nil
}

// MustCEL is CEL that panics on a compile error.
func MustCEL(src string) Validator {
	v, err := CEL(src)
	if err != nil {
		panic(err)
	}
	return v
}
