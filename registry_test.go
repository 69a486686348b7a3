package settings

import (
	"errors"
	"testing"
)

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(MustDescriptor("a/ONE"), MustDescriptor("a/TWO")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(MustDescriptor("a/THREE")); err != nil {
		t.Fatalf("register: %v", err)
	}
	got := r.Descriptors()
	want := []string{"a/ONE", "a/TWO", "a/THREE"}
	if len(got) != len(want) || r.Len() != len(want) {
		t.Fatalf("expected %d descriptors, got %d", len(want), len(got))
	}
	for i, uri := range want {
		if got[i].URI() != uri {
			t.Fatalf("descriptor %d: expected %s, got %s", i, uri, got[i].URI())
		}
	}
	if _, ok := r.Lookup("a/TWO"); !ok {
		t.Fatalf("expected lookup to find a/TWO")
	}
	if _, ok := r.Lookup("a/FOUR"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestRegistryRejectsDuplicateBatch(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(MustDescriptor("a/ONE")); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := r.Register(MustDescriptor("a/TWO"), MustDescriptor("a/ONE"))
	if !errors.Is(err, ErrDuplicateOption) {
		t.Fatalf("expected ErrDuplicateOption, got %v", err)
	}
	if _, ok := r.Lookup("a/TWO"); ok {
		t.Fatalf("expected rejected batch to leave registry unchanged")
	}

	err = r.Register(MustDescriptor("a/X"), MustDescriptor("a/X"))
	if !errors.Is(err, ErrDuplicateOption) {
		t.Fatalf("expected in-batch duplicate to fail, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected one descriptor, got %d", r.Len())
	}
}

func TestRegistryRejectsZeroDescriptor(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Descriptor{}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestRegistryDescriptorsReturnsCopy(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(MustDescriptor("a/ONE"))
	got := r.Descriptors()
	got[0] = MustDescriptor("a/OTHER")
	if d := r.Descriptors()[0]; d.URI() != "a/ONE" {
		t.Fatalf("expected registry to be unaffected, got %s", d.URI())
	}
}
