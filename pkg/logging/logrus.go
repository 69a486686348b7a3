// Package logging adapts settings load events to structured loggers.
package logging

import (
	"github.com/sirupsen/logrus"

	settings "github.com/goliatone/go-settings"
)

// Logrus returns a settings.LoadLogger writing one entry per Load attempt.
// Successful loads are logged at info, failures at error and activity hook
// failures at warn.
func Logrus(logger logrus.FieldLogger) settings.LoadLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return settings.LoadLoggerFunc(func(event settings.LoadLogEvent) {
		entry := logger.WithFields(fields(event))
		if event.HookErr != nil {
			entry.WithField("hook_error", event.HookErr.Error()).Warn("settings activity hooks failed")
		}
		if event.Err != nil {
			entry.WithError(event.Err).Error("settings load failed")
			return
		}
		entry.Info("settings loaded")
	})
}

func fields(event settings.LoadLogEvent) logrus.Fields {
	f := logrus.Fields{
		"domain":      event.Domain,
		"path":        event.Path,
		"duration_ms": event.Duration.Milliseconds(),
	}
	if event.Engine != "" {
		f["engine"] = event.Engine
	}
	if event.LoadID != "" {
		f["load_id"] = event.LoadID
		f["options"] = event.Options
	}
	return f
}
