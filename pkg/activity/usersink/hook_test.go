package usersink_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-settings/pkg/activity"
	"github.com/goliatone/go-settings/pkg/activity/usersink"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

type recordingSink struct {
	records []usertypes.ActivityRecord
	err     error
}

func (s *recordingSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	s.records = append(s.records, record)
	return s.err
}

func TestHookNotifyMapsLoadedEvent(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	actorID := uuid.New()
	tenantID := uuid.New()
	loadID := uuid.NewString()

	event := activity.BuildLoadedEvent(activity.LoadEventInput{
		ActorID:    actorID.String(),
		TenantID:   tenantID.String(),
		Channel:    "settings",
		LoadID:     loadID,
		Domain:     "billing",
		OccurredAt: now,
	})

	if err := hook.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	record := sink.records[0]
	if record.ActorID != actorID || record.TenantID != tenantID {
		t.Fatalf("unexpected identity: %+v", record)
	}
	if record.Verb != activity.VerbLoaded || record.ObjectType != "settings" || record.ObjectID != loadID {
		t.Fatalf("unexpected record payload: %+v", record)
	}
	if !record.OccurredAt.Equal(now) {
		t.Fatalf("expected occurred_at %v got %v", now, record.OccurredAt)
	}
	if record.Data["domain"] != "billing" || record.Data["load_id"] != loadID {
		t.Fatalf("expected metadata passthrough got %v", record.Data)
	}
}

func TestHookNotifyInvalidIdentifiersBecomeNil(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       activity.VerbLoadFailed,
		ActorID:    "not-a-uuid",
		ObjectType: "settings",
		ObjectID:   "billing",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if sink.records[0].ActorID != uuid.Nil {
		t.Fatalf("expected nil actor, got %s", sink.records[0].ActorID)
	}
	if sink.records[0].OccurredAt.IsZero() {
		t.Fatalf("expected occurred_at to be defaulted")
	}
}

func TestHookNotifySkipsIncompleteEventsAndPropagatesSinkErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("sink down")}
	hook := usersink.Hook{Sink: sink}

	if err := hook.Notify(context.Background(), activity.Event{}); err != nil {
		t.Fatalf("expected nil for empty event, got %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("expected no records for empty event, got %d", len(sink.records))
	}

	err := hook.Notify(context.Background(), activity.BuildLoadedEvent(activity.LoadEventInput{LoadID: "1"}))
	if err == nil || err.Error() != "sink down" {
		t.Fatalf("expected sink error, got %v", err)
	}

	if err := (usersink.Hook{}).Notify(context.Background(), activity.BuildLoadedEvent(activity.LoadEventInput{LoadID: "1"})); err != nil {
		t.Fatalf("expected nil sink to be a no-op, got %v", err)
	}
}
