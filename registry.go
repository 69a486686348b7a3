package settings

import (
	"fmt"
	"sync"
)

// Registry is an append-only, ordered set of descriptors keyed by URI.
type Registry struct {
	mu          sync.RWMutex
	descriptors []Descriptor
	index       map[string]int
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends descriptors in order. Duplicate URIs, either within the
// batch or against earlier registrations, reject the whole batch.
func (r *Registry) Register(descriptors ...Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index == nil {
		r.index = make(map[string]int)
	}

	seen := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		if d.uri == "" {
			return fmt.Errorf("%w: descriptor without uri", ErrInvalidDescriptor)
		}
		if _, exists := r.index[d.uri]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateOption, d.uri)
		}
		if _, exists := seen[d.uri]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateOption, d.uri)
		}
		seen[d.uri] = struct{}{}
	}

	for _, d := range descriptors {
		r.index[d.uri] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}
	return nil
}

// Lookup returns the descriptor registered for uri.
func (r *Registry) Lookup(uri string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[uri]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Descriptor(nil), r.descriptors...)
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}
