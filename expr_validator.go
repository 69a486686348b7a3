package settings

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// ExprOption configures an expr-lang validator.
type ExprOption func(*exprValidator)

// ExprWithFunctionRegistry exposes registry functions to the expression.
func ExprWithFunctionRegistry(registry *FunctionRegistry) ExprOption {
	return func(e *exprValidator) {
		if registry == nil {
			return
		}
		e.registry = registry.Clone()
	}
}

type exprValidator struct {
	registry *FunctionRegistry
	program  *exprvm.Program
}

// Expression compiles src with github.com/expr-lang/expr into a validator.
// The candidate is bound to `value`; the expression must evaluate to true
// for the value to be accepted.
//
//	settings.Expression(`value >= 1 && value <= 65535`)
func Expression(src string, opts ...ExprOption) (Validator, error) {
	if src == "" {
		return Validator{}, fmt.Errorf("settings: expression must not be empty")
	}
	e := &exprValidator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	options := []exprlang.Option{
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	}
	for _, name := range e.registry.Names() {
		options = append(options, exprlang.Function(name, e.registryFunction(name)))
	}
	program, err := exprlang.Compile(src, options...)
	if err != nil {
		return Validator{}, fmt.Errorf("settings: compile expression %q: %w", src, err)
	}
	e.program = program
	return Validator{
		kind:   ValidatorExpression,
		source: src,
		check: func(value any) error {
			return e.run(src, value)
		},
	}, nil
}

// MustExpression is Expression that panics on a compile error.
func MustExpression(src string, opts ...ExprOption) Validator {
	v, err := Expression(src, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func (e *exprValidator) run(src string, value any) error {
	out, err := exprlang.Run(e.program, map[string]any{"value": value})
	if err != nil {
		return err
	}
	ok, isBool := out.(bool)
	if !isBool {
		return fmt.Errorf("expression %q returned %T, expected bool", src, out)
	}
	if !ok {
		return Invalidf("expression %q evaluated to false", src)
	}
	return nil
}

func (e *exprValidator) registryFunction(name string) func(...any) (any, error) {
	return func(arguments ...any) (any, error) {
		return e.registry.Call(name, arguments...)
	}
}
