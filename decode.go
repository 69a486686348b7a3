package settings

import (
	"fmt"

	"github.com/goliatone/go-settings/internal/hydrate"
)

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strict    bool
	postHooks []func(any) error
}

// DecodeStrict rejects in-domain options that have no matching struct
// field.
func DecodeStrict() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.strict = true
	}
}

// DecodeWithPostHook runs hook on the decoded value, typically to check
// cross-field constraints. T must match the type passed to Decode.
func DecodeWithPostHook[T any](hook func(*T) error) DecodeOption {
	return func(cfg *decodeConfig) {
		if hook == nil {
			return
		}
		cfg.postHooks = append(cfg.postHooks, func(value any) error {
			typed, ok := value.(*T)
			if !ok {
				return fmt.Errorf("%w: post hook expects %T, got %T", ErrTypeMismatch, typed, value)
			}
			return hook(typed)
		})
	}
}

// Decode hydrates the resolved options of the loaded domain into T. Option
// names without the "<domain>/" prefix are matched against T's json tags:
//
//	type Billing struct {
//		Currency string `json:"CURRENCY"`
//	}
//	billing, err := settings.Decode[Billing](manager)
func Decode[T any](m *Manager, opts ...DecodeOption) (T, error) {
	var zero T
	cfg := decodeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m.mu.RLock()
	loaded, domain, loadID, resolved := m.loaded, m.domain, m.loadID, m.resolved
	m.mu.RUnlock()
	if !loaded {
		return zero, ErrNotLoaded
	}

	decoderOpts := []hydrate.DecoderOption[T]{hydrate.WithPreHook[T](hydrate.StripDomain)}
	if cfg.strict {
		decoderOpts = append(decoderOpts, hydrate.WithDisallowUnknownFields[T]())
	}
	for _, hook := range cfg.postHooks {
		decoderOpts = append(decoderOpts, hydrate.WithPostHook[T](func(_ hydrate.Context, value *T) error {
			return hook(value)
		}))
	}
	return hydrate.NewDecoder(decoderOpts...).Decode(hydrate.Context{Domain: domain, LoadID: loadID}, resolved)
}
