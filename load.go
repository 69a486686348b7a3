package settings

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-settings/pkg/activity"
	"github.com/google/uuid"
)

// Load reads the source at path, reconciles it against the registered
// descriptors for domain and publishes the result. Only one Load per
// Manager can succeed; later calls return ErrAlreadyLoaded. A failed Load
// leaves the Manager unloaded so it may be retried.
//
// Keys outside "<domain>/" are kept but never checked, so several domains
// can share one source.
func (m *Manager) Load(ctx context.Context, path, domain string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	event := LoadLogEvent{Domain: domain, Path: path}
	start := time.Now()
	event.Err = m.load(ctx, path, domain, &event)
	event.Duration = time.Since(start)
	event.HookErr = m.emitLoadEvent(ctx, event)

	m.cfg.logger.LogLoad(event)
	return event.Err
}

// load resolves the source unlocked; the loaded guard is checked again
// before commit.
func (m *Manager) load(ctx context.Context, path, domain string, event *LoadLogEvent) error {
	if m.Loaded() {
		return ErrAlreadyLoaded
	}

	resolved, engine, err := m.resolve(ctx, path, domain)
	event.Engine = engine
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded {
		return ErrAlreadyLoaded
	}
	m.loaded = true
	m.domain = domain
	m.loadID = uuid.NewString()
	m.loadedAt = time.Now()
	m.resolved = resolved
	event.LoadID = m.loadID
	event.Options = len(resolved)
	return nil
}

func (m *Manager) resolve(ctx context.Context, path, domain string) (map[string]any, string, error) {
	src, err := m.readSource(path)
	if err != nil {
		return nil, "", err
	}
	evaluator, err := m.cfg.sources.ForPath(path)
	if err != nil {
		return nil, "", err
	}
	engine := evaluator.Engine()

	module, err := evaluator.Evaluate(ctx, path, src, m.bindings(domain))
	if err != nil {
		return nil, engine, err
	}
	raw, ok := module.Lookup(ConfigVariable)
	if !ok {
		return nil, engine, fmt.Errorf("%w: %s", ErrConfigVariableNotFound, path)
	}
	staged, err := stageMapping(raw)
	if err != nil {
		return nil, engine, fmt.Errorf("%w: %s: %v", ErrConfigVariableNotFound, path, err)
	}

	if err := reconcile(m.registry.Descriptors(), staged, domain); err != nil {
		return nil, engine, err
	}
	return staged, engine, nil
}

func (m *Manager) readSource(path string) ([]byte, error) {
	if m.cfg.fsys != nil {
		info, err := fs.Stat(m.cfg.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s is not a regular file", ErrSourceNotFound, path)
		}
		data, err := fs.ReadFile(m.cfg.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
		}
		return data, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrSourceNotFound, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}
	return data, nil
}

func (m *Manager) bindings(domain string) map[string]any {
	bindings := m.cfg.functions.bindings()
	if bindings == nil {
		bindings = make(map[string]any, 1)
	}
	bindings[domainBinding] = domain
	return bindings
}

// stageMapping copies the source mapping so defaults never leak into the
// evaluator's value.
func stageMapping(raw any) (map[string]any, error) {
	if typed, ok := raw.(map[string]any); ok {
		return maps.Clone(typed), nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("expected a string keyed mapping, got %T", raw)
	}
	staged := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		staged[iter.Key().String()] = iter.Value().Interface()
	}
	return staged, nil
}

// reconcile checks config against descriptors in three passes: unknown
// in-domain keys (sorted key order), required/default resolution and
// validation (registration order). It stops at the first failure and
// mutates config only by inserting defaults.
func reconcile(descriptors []Descriptor, config map[string]any, domain string) error {
	known := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		known[d.uri] = struct{}{}
	}

	prefix := domain + "/"
	for _, key := range slices.Sorted(maps.Keys(config)) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if _, ok := known[key]; !ok {
			return &UnknownOptionError{URI: key}
		}
	}

	for _, d := range descriptors {
		if _, ok := config[d.uri]; ok {
			continue
		}
		if d.Required() {
			return &MissingValueError{URI: d.uri}
		}
		if value, ok := d.Default(); ok {
			config[d.uri] = value
		}
	}

	for _, d := range descriptors {
		value, ok := config[d.uri]
		if !ok {
			continue
		}
		if err := d.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) emitLoadEvent(ctx context.Context, event LoadLogEvent) error {
	if !m.emitter.Enabled() {
		return nil
	}
	input := activity.LoadEventInput{
		ActorID:  m.cfg.actorID,
		TenantID: m.cfg.tenantID,
		LoadID:   event.LoadID,
		Domain:   event.Domain,
		Path:     event.Path,
		Engine:   event.Engine,
		Options:  event.Options,
		Err:      event.Err,
	}
	if event.Err != nil {
		return m.emitter.Emit(ctx, activity.BuildLoadFailedEvent(input))
	}
	return m.emitter.Emit(ctx, activity.BuildLoadedEvent(input))
}
