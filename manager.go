package settings

import (
	"io/fs"
	"sync"
	"time"

	"github.com/goliatone/go-settings/pkg/activity"
	"github.com/goliatone/go-settings/source"
)

const (
	// ConfigVariable is the top-level name a source must bind to its
	// option mapping.
	ConfigVariable = "config"

	domainBinding = "domain"
)

// Option configures a Manager.
type Option func(*managerConfig)

type managerConfig struct {
	sources         *source.Registry
	fsys            fs.FS
	logger          LoadLogger
	functions       *FunctionRegistry
	activityHooks   activity.Hooks
	actorID         string
	tenantID        string
	schemaGenerator SchemaGenerator
}

func applyOptions(opts []Option) managerConfig {
	cfg := managerConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.sources == nil {
		cfg.sources = source.DefaultRegistry()
	}
	if cfg.logger == nil {
		cfg.logger = noopLoadLogger{}
	}
	return cfg
}

// WithSources replaces the extension to evaluator mapping used by Load.
func WithSources(registry *source.Registry) Option {
	return func(cfg *managerConfig) {
		cfg.sources = registry
	}
}

// WithFileSystem reads configuration sources from fsys instead of the OS.
// Paths passed to Load must then follow io/fs path rules.
func WithFileSystem(fsys fs.FS) Option {
	return func(cfg *managerConfig) {
		cfg.fsys = fsys
	}
}

// WithActivityHooks attaches hooks notified after every Load attempt.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := activity.Compact(hooks)
	return func(cfg *managerConfig) {
		cfg.activityHooks = normalized
	}
}

// WithActor sets the actor and tenant identifiers recorded on activity
// events.
func WithActor(actorID, tenantID string) Option {
	return func(cfg *managerConfig) {
		cfg.actorID = actorID
		cfg.tenantID = tenantID
	}
}

// Manager owns a descriptor registry and the configuration resolved by its
// single successful Load. It replaces process wide state: construct one at
// startup and pass it to the code that reads settings.
type Manager struct {
	cfg      managerConfig
	registry *Registry
	emitter  *activity.Emitter

	mu       sync.RWMutex
	loaded   bool
	domain   string
	loadID   string
	loadedAt time.Time
	resolved map[string]any
}

// NewManager constructs an unloaded Manager.
func NewManager(opts ...Option) *Manager {
	cfg := applyOptions(opts)
	return &Manager{
		cfg:      cfg,
		registry: NewRegistry(),
		emitter: activity.NewEmitter(cfg.activityHooks, activity.Config{
			Enabled: len(cfg.activityHooks) > 0,
		}),
	}
}

// Register appends descriptors to the manager registry. Descriptors
// registered after a successful Load do not affect the resolved
// configuration.
func (m *Manager) Register(descriptors ...Descriptor) error {
	return m.registry.Register(descriptors...)
}

// Registry exposes the descriptor registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}
