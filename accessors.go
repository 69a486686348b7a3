package settings

import (
	"fmt"
	"maps"
	"reflect"
	"time"
)

// Get returns the resolved value for uri.
func (m *Manager) Get(uri string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.loaded {
		return nil, ErrNotLoaded
	}
	value, ok := m.resolved[uri]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, uri)
	}
	return value, nil
}

// MustGet is Get that panics on error.
func (m *Manager) MustGet(uri string) any {
	value, err := m.Get(uri)
	if err != nil {
		panic(err)
	}
	return value
}

// GetAs returns the resolved value for uri asserted to T.
func GetAs[T any](m *Manager, uri string) (T, error) {
	var zero T
	value, err := m.Get(uri)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T, not %s", ErrTypeMismatch, uri, value, reflect.TypeFor[T]())
	}
	return typed, nil
}

// Loaded reports whether a Load has succeeded.
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Domain returns the domain of the committed load, empty before Load.
func (m *Manager) Domain() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.domain
}

// LoadID returns the identifier assigned to the committed load.
func (m *Manager) LoadID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadID
}

// LoadedAt returns when the committed load finished.
func (m *Manager) LoadedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadedAt
}

// Snapshot returns a shallow copy of the resolved configuration, nil before
// Load.
func (m *Manager) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.loaded {
		return nil
	}
	return maps.Clone(m.resolved)
}
