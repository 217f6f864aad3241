package dto

import (
	"testing"

	"github.com/goliatone/go-dto/pkg/activity"
)

func TestLifecycleEventsEmitted(t *testing.T) {
	capture := &activity.CaptureHook{}
	d, err := New(map[string]any{"name": "Alex"},
		WithActivityHooks(activity.Hooks{capture}),
	)
	if err != nil {
		t.Fatalf("unexpected error from New: %v", err)
	}
	if err := d.Set("name", "Sam"); err != nil {
		t.Fatalf("unexpected error from Set: %v", err)
	}
	if err := d.Unset("name"); err != nil {
		t.Fatalf("unexpected error from Unset: %v", err)
	}
	snapshotID := d.SyncOriginal()

	verbs := make([]string, 0, len(capture.Events))
	for _, event := range capture.Events {
		verbs = append(verbs, event.Verb)
	}
	want := []string{"dto.updated", "dto.created", "dto.updated", "dto.removed", "dto.synced"}
	if len(verbs) != len(want) {
		t.Fatalf("expected %d events %v, got %v", len(want), want, verbs)
	}
	for i, verb := range want {
		if verbs[i] != verb {
			t.Fatalf("expected event %d to be %s, got %v", i, verb, verbs)
		}
	}

	for _, event := range capture.Events {
		if event.ObjectType != "dto" || event.ObjectID != d.ID() {
			t.Fatalf("expected events bound to container, got %+v", event)
		}
	}

	update := capture.Events[2]
	if update.Metadata["attribute"] != "name" || update.Metadata["old_value"] != "Alex" || update.Metadata["new_value"] != "Sam" {
		t.Fatalf("unexpected update metadata: %+v", update.Metadata)
	}
	removed := capture.Events[3]
	if removed.Metadata["attribute"] != "name" || removed.Metadata["old_value"] != "Sam" {
		t.Fatalf("unexpected removal metadata: %+v", removed.Metadata)
	}
	synced := capture.Events[4]
	if synced.Metadata["snapshot_id"] != snapshotID {
		t.Fatalf("expected snapshot metadata %q, got %+v", snapshotID, synced.Metadata)
	}
}

func TestRejectedWritesEmitNothing(t *testing.T) {
	capture := &activity.CaptureHook{}
	d, err := New(map[string]any{"name": "Alex"},
		WithActivityHooks(activity.Hooks{capture}),
		WithForbidOverrides(),
	)
	if err != nil {
		t.Fatalf("unexpected error from New: %v", err)
	}

	before := len(capture.Events)
	if err := d.Set("name", "Sam"); err == nil {
		t.Fatalf("expected override to be rejected")
	}
	if len(capture.Events) != before {
		t.Fatalf("rejected write must not emit events, got %d new", len(capture.Events)-before)
	}
}

func TestActivityHooksCloneDropsNilEntries(t *testing.T) {
	capture := &activity.CaptureHook{}
	d, err := New(nil, WithActivityHooks(activity.Hooks{nil, capture, nil}))
	if err != nil {
		t.Fatalf("unexpected error from New: %v", err)
	}
	hooks := d.ActivityHooks()
	if len(hooks) != 1 {
		t.Fatalf("expected nil hooks dropped, got %d", len(hooks))
	}

	bare, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error from New: %v", err)
	}
	if bare.ActivityHooks() != nil {
		t.Fatalf("expected nil hooks on unconfigured container")
	}
}
