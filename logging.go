package settings

import "time"

// LoadLogEvent describes one Load attempt. Err is the error Load returned;
// HookErr collects activity hook failures, which never fail a Load.
type LoadLogEvent struct {
	Domain   string
	Path     string
	Engine   string
	LoadID   string
	Options  int
	Duration time.Duration
	Err      error
	HookErr  error
}

// LoadLogger records load attempts.
type LoadLogger interface {
	LogLoad(LoadLogEvent)
}

// LoadLoggerFunc adapts a function to LoadLogger.
type LoadLoggerFunc func(LoadLogEvent)

// LogLoad implements LoadLogger.
func (f LoadLoggerFunc) LogLoad(event LoadLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopLoadLogger struct{}

func (noopLoadLogger) LogLoad(LoadLogEvent) {}

// WithLoadLogger attaches a logger notified after every Load attempt.
func WithLoadLogger(logger LoadLogger) Option {
	return func(cfg *managerConfig) {
		if logger == nil {
			cfg.logger = noopLoadLogger{}
			return
		}
		cfg.logger = logger
	}
}
