// Package source evaluates configuration files into a scope of top-level
// names. The settings loader only requires a `config` name bound to a
// string-keyed mapping; everything else a source defines is ignored.
//
// Evaluators are selected by file extension through a Registry:
//
//	.js          executed with goja, bindings injected as globals
//	.yaml, .yml  decoded with gopkg.in/yaml.v3
//	.json        decoded with encoding/json
//
// Unknown extensions fall back to the JS evaluator, since a configuration
// file is treated as a program by default.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Module exposes the top-level names defined by an evaluated source.
type Module interface {
	Lookup(name string) (any, bool)
}

// Evaluator turns source bytes into a Module. bindings are names injected
// into the evaluation scope (at minimum `domain`); declarative formats may
// ignore them.
type Evaluator interface {
	Engine() string
	Evaluate(ctx context.Context, name string, src []byte, bindings map[string]any) (Module, error)
}

// MapModule is a Module backed by a plain map.
type MapModule map[string]any

// Lookup implements Module.
func (m MapModule) Lookup(name string) (any, bool) {
	if m == nil {
		return nil, false
	}
	value, ok := m[name]
	return value, ok
}

// Registry maps file extensions to evaluators.
type Registry struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
	fallback   Evaluator
}

// NewRegistry constructs a registry that resolves unknown extensions to
// fallback. A nil fallback makes unknown extensions an error.
func NewRegistry(fallback Evaluator) *Registry {
	return &Registry{
		evaluators: make(map[string]Evaluator),
		fallback:   fallback,
	}
}

// DefaultRegistry wires the JS, YAML and JSON evaluators.
func DefaultRegistry() *Registry {
	js := NewJSEvaluator()
	yaml := NewYAMLEvaluator()
	r := NewRegistry(js)
	_ = r.Register("js", js)
	_ = r.Register("yaml", yaml)
	_ = r.Register("yml", yaml)
	_ = r.Register("json", NewJSONEvaluator())
	return r
}

// Register binds ext (with or without the leading dot) to evaluator.
func (r *Registry) Register(ext string, evaluator Evaluator) error {
	ext = normalizeExt(ext)
	if ext == "" {
		return errors.New("source: extension cannot be empty")
	}
	if evaluator == nil {
		return fmt.Errorf("source: evaluator for %q is nil", ext)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.evaluators == nil {
		r.evaluators = make(map[string]Evaluator)
	}
	if _, ok := r.evaluators[ext]; ok {
		return fmt.Errorf("source: evaluator for %q already registered", ext)
	}
	r.evaluators[ext] = evaluator
	return nil
}

// ForPath returns the evaluator responsible for path.
func (r *Registry) ForPath(path string) (Evaluator, error) {
	ext := normalizeExt(filepath.Ext(path))
	r.mu.RLock()
	defer r.mu.RUnlock()
	if evaluator, ok := r.evaluators[ext]; ok {
		return evaluator, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("source: no evaluator registered for %q", path)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
