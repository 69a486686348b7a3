package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	settings "github.com/goliatone/go-settings"
)

func TestLogrusLogsSuccessfulLoad(t *testing.T) {
	logger, hook := test.NewNullLogger()
	Logrus(logger).LogLoad(settings.LoadLogEvent{
		Domain:   "billing",
		Path:     "billing.js",
		Engine:   "js",
		LoadID:   "load-1",
		Options:  4,
		Duration: 1500 * time.Microsecond,
	})

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatalf("expected an entry")
	}
	if entry.Level != logrus.InfoLevel || entry.Message != "settings loaded" {
		t.Fatalf("unexpected entry: %v %q", entry.Level, entry.Message)
	}
	if entry.Data["domain"] != "billing" || entry.Data["load_id"] != "load-1" || entry.Data["options"] != 4 {
		t.Fatalf("unexpected fields: %v", entry.Data)
	}
	if entry.Data["duration_ms"] != int64(1) {
		t.Fatalf("expected duration in ms, got %v", entry.Data["duration_ms"])
	}
}

func TestLogrusLogsFailuresAndHookErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	loadErr := errors.New("settings: configuration source not found")
	Logrus(logger).LogLoad(settings.LoadLogEvent{
		Domain:  "billing",
		Path:    "missing.js",
		Err:     loadErr,
		HookErr: errors.New("sink down"),
	})

	if len(hook.Entries) != 2 {
		t.Fatalf("expected warn and error entries, got %d", len(hook.Entries))
	}
	if hook.Entries[0].Level != logrus.WarnLevel || hook.Entries[0].Data["hook_error"] != "sink down" {
		t.Fatalf("unexpected hook entry: %+v", hook.Entries[0])
	}
	last := hook.LastEntry()
	if last.Level != logrus.ErrorLevel || last.Data[logrus.ErrorKey] != loadErr {
		t.Fatalf("unexpected error entry: %+v", last)
	}
	if _, ok := last.Data["load_id"]; ok {
		t.Fatalf("expected no load_id for failed load")
	}
}
