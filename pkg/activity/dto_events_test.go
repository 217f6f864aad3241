package activity

import (
	"context"
	"testing"
)

func TestBuildUpdatedEventIncludesAttributeMetadata(t *testing.T) {
	meta := map[string]any{"custom": "value"}
	input := EventInput{
		ActorID:        " actor ",
		UserID:         " user ",
		TenantID:       " tenant ",
		ObjectID:       "container-1",
		Attribute:      "status",
		OldValue:       "draft",
		NewValue:       "published",
		SnapshotID:     "snap-1",
		Metadata:       meta,
		DefinitionCode: "dto:update",
		Recipients:     []string{"user@example.com"},
		Channel:        "dto",
	}

	event := BuildUpdatedEvent(input)

	if event.Verb != "dto.updated" {
		t.Fatalf("expected verb dto.updated got %s", event.Verb)
	}
	if event.ObjectType != "dto" || event.ObjectID != "container-1" {
		t.Fatalf("unexpected object fields: %+v", event)
	}
	if event.ActorID != "actor" || event.UserID != "user" || event.TenantID != "tenant" {
		t.Fatalf("unexpected identity fields: %+v", event)
	}
	if event.Metadata["attribute"] != "status" {
		t.Fatalf("expected attribute metadata, got %v", event.Metadata["attribute"])
	}
	if event.Metadata["old_value"] != "draft" || event.Metadata["new_value"] != "published" {
		t.Fatalf("expected old/new values, got %v %v", event.Metadata["old_value"], event.Metadata["new_value"])
	}
	if event.Metadata["snapshot_id"] != "snap-1" {
		t.Fatalf("expected snapshot_id, got %v", event.Metadata["snapshot_id"])
	}
	if event.Metadata["custom"] != "value" {
		t.Fatalf("expected metadata passthrough, got %v", event.Metadata["custom"])
	}
	if event.DefinitionCode != "dto:update" {
		t.Fatalf("expected definition code, got %s", event.DefinitionCode)
	}
	if len(event.Recipients) != 1 || event.Recipients[0] != "user@example.com" {
		t.Fatalf("expected recipients preserved, got %v", event.Recipients)
	}
	event.Recipients[0] = "changed"
	if input.Recipients[0] != "user@example.com" {
		t.Fatalf("expected input recipients untouched, got %v", input.Recipients)
	}
	if meta["custom"] != "value" {
		t.Fatalf("expected input metadata untouched")
	}
}

func TestBuildRemovedEventUsesFallbackObjectID(t *testing.T) {
	event := BuildRemovedEvent(EventInput{})
	if event.ObjectID != "dto" {
		t.Fatalf("expected fallback object ID 'dto', got %q", event.ObjectID)
	}
	if event.Verb != "dto.removed" {
		t.Fatalf("expected verb dto.removed got %s", event.Verb)
	}
}

func TestBuildSyncedEventPrefersSnapshotID(t *testing.T) {
	event := BuildSyncedEvent(EventInput{SnapshotID: "snapshot-42"})
	if event.Verb != "dto.synced" {
		t.Fatalf("expected verb dto.synced got %s", event.Verb)
	}
	if event.ObjectID != "snapshot-42" {
		t.Fatalf("expected snapshot fallback object ID, got %q", event.ObjectID)
	}
	if event.Metadata["snapshot_id"] != "snapshot-42" {
		t.Fatalf("expected snapshot metadata, got %+v", event.Metadata)
	}
}

func TestBuildCreatedEventWorksWithHooks(t *testing.T) {
	capture := &CaptureHook{}
	hooks := Hooks{capture}

	event := BuildCreatedEvent(EventInput{ObjectID: "container-1"})
	if err := hooks.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(capture.Events) != 1 {
		t.Fatalf("expected capture to record event, got %d", len(capture.Events))
	}
	if capture.Events[0].Verb != "dto.created" {
		t.Fatalf("expected verb dto.created, got %s", capture.Events[0].Verb)
	}
}
