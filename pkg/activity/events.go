package activity

import (
	"strings"
	"time"
)

const (
	VerbLoaded     = "settings.loaded"
	VerbLoadFailed = "settings.load_failed"

	// ObjectTypeSettings identifies a resolved configuration.
	ObjectTypeSettings = "settings"
)

// LoadEventInput describes the outcome of a settings load.
type LoadEventInput struct {
	ActorID    string
	TenantID   string
	Channel    string
	LoadID     string
	Domain     string
	Path       string
	Engine     string
	Options    int
	Err        error
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildLoadedEvent constructs the event for a committed load.
func BuildLoadedEvent(input LoadEventInput) Event {
	return buildLoadEvent(VerbLoaded, input)
}

// BuildLoadFailedEvent constructs the event for a rejected load.
func BuildLoadFailedEvent(input LoadEventInput) Event {
	return buildLoadEvent(VerbLoadFailed, input)
}

func buildLoadEvent(verb string, input LoadEventInput) Event {
	metadata := cloneMap(input.Metadata)
	set := func(key string, value any) {
		if metadata == nil {
			metadata = map[string]any{}
		}
		metadata[key] = value
	}
	if input.Domain != "" {
		set("domain", input.Domain)
	}
	if input.Path != "" {
		set("path", input.Path)
	}
	if input.Engine != "" {
		set("engine", input.Engine)
	}
	if input.Options > 0 {
		set("options", input.Options)
	}
	if input.Err != nil {
		set("error", input.Err.Error())
	}

	objectID := strings.TrimSpace(input.LoadID)
	if objectID == "" {
		objectID = strings.TrimSpace(input.Domain)
	}
	if objectID == "" {
		objectID = ObjectTypeSettings
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: ObjectTypeSettings,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}
