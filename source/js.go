package source

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
)

// JSOption configures the JS evaluator.
type JSOption func(*jsEvaluator)

// JSWithStrict compiles sources in strict mode.
func JSWithStrict(strict bool) JSOption {
	return func(e *jsEvaluator) {
		e.strict = strict
	}
}

type jsEvaluator struct {
	strict bool
}

// NewJSEvaluator constructs an Evaluator backed by goja. The source runs as
// a script; bindings become globals before it executes. Go functions in
// bindings are callable from the script, an error return becomes a thrown
// exception.
func NewJSEvaluator(opts ...JSOption) Evaluator {
	e := &jsEvaluator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *jsEvaluator) Engine() string {
	return "js"
}

func (e *jsEvaluator) Evaluate(ctx context.Context, name string, src []byte, bindings map[string]any) (Module, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, wrapEvaluationError(e.Engine(), name, err)
	}
	program, err := goja.Compile(name, string(src), e.strict)
	if err != nil {
		return nil, wrapEvaluationError(e.Engine(), name, err)
	}

	vm := goja.New()
	for key, value := range bindings {
		if err := vm.Set(key, value); err != nil {
			return nil, wrapEvaluationError(e.Engine(), name, fmt.Errorf("bind %q: %w", key, err))
		}
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	_, err = vm.RunProgram(program)
	stop()
	vm.ClearInterrupt()
	if err != nil {
		return nil, wrapEvaluationError(e.Engine(), name, err)
	}
	return &jsModule{vm: vm}, nil
}

type jsModule struct {
	vm *goja.Runtime
}

// Lookup resolves name through the script's global scope, so top-level
// let/const declarations are visible alongside var and implicit globals.
func (m *jsModule) Lookup(name string) (any, bool) {
	if m == nil || m.vm == nil || !isIdentifier(name) {
		return nil, false
	}
	value, err := m.vm.RunString(fmt.Sprintf("typeof %[1]s === 'undefined' ? undefined : %[1]s", name))
	if err != nil || value == nil || goja.IsUndefined(value) {
		return nil, false
	}
	if goja.IsNull(value) {
		return nil, true
	}
	return value.Export(), true
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
