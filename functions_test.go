package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFunctionRegistryRegisterAndCall(t *testing.T) {
	r := NewFunctionRegistry()
	if err := r.Register("double", func(args ...any) (any, error) {
		return args[0].(int) * 2, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := r.Call("double", 21)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
	if _, err := r.Call("missing"); err == nil {
		t.Fatalf("expected unknown function error")
	}
}

func TestFunctionRegistryRejectsInvalidNames(t *testing.T) {
	r := NewFunctionRegistry()
	noop := func(...any) (any, error) { return nil, nil }
	if err := r.Register("", noop); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := r.Register("domain", noop); err == nil {
		t.Fatalf("expected reserved name error")
	}
	if err := r.Register("fn", nil); err == nil {
		t.Fatalf("expected nil function error")
	}
	if err := r.Register("fn", noop); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register("fn", noop); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestFunctionRegistryCloneIsIndependent(t *testing.T) {
	r := NewFunctionRegistry()
	noop := func(...any) (any, error) { return nil, nil }
	_ = r.Register("b", noop)
	_ = r.Register("a", noop)

	clone := r.Clone()
	_ = clone.Register("c", noop)

	if diff := cmp.Diff([]string{"a", "b"}, r.Names()); diff != "" {
		t.Fatalf("original names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, clone.Names()); diff != "" {
		t.Fatalf("clone names mismatch (-want +got):\n%s", diff)
	}

	var nilRegistry *FunctionRegistry
	if nilRegistry.Clone() != nil || nilRegistry.Names() != nil {
		t.Fatalf("expected nil registry helpers to return nil")
	}
}
