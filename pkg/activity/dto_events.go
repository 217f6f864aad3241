package activity

import (
	"strings"
	"time"
)

// EventInput describes the common fields for container lifecycle events.
type EventInput struct {
	ActorID        string
	UserID         string
	TenantID       string
	ObjectID       string
	Channel        string
	DefinitionCode string
	Recipients     []string
	Metadata       map[string]any

	// Attribute is the name involved in the change, empty for whole-container
	// events such as creation and snapshot sync.
	Attribute  string
	OldValue   any
	NewValue   any
	SnapshotID string
	OccurredAt time.Time
}

// BuildCreatedEvent constructs a normalized activity event for container
// initialization.
func BuildCreatedEvent(input EventInput) Event {
	return buildContainerEvent("dto.created", input)
}

// BuildUpdatedEvent constructs a normalized activity event for attribute
// writes.
func BuildUpdatedEvent(input EventInput) Event {
	return buildContainerEvent("dto.updated", input)
}

// BuildRemovedEvent constructs a normalized activity event for attribute
// removal.
func BuildRemovedEvent(input EventInput) Event {
	return buildContainerEvent("dto.removed", input)
}

// BuildSyncedEvent constructs a normalized activity event for original
// snapshot syncs.
func BuildSyncedEvent(input EventInput) Event {
	return buildContainerEvent("dto.synced", input)
}

func buildContainerEvent(verb string, input EventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Attribute != "" {
		metadata = ensureMetadata(metadata)
		metadata["attribute"] = input.Attribute
	}
	if input.SnapshotID != "" {
		metadata = ensureMetadata(metadata)
		metadata["snapshot_id"] = input.SnapshotID
	}
	if input.OldValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["old_value"] = input.OldValue
	}
	if input.NewValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["new_value"] = input.NewValue
	}

	recipients := input.Recipients
	if len(recipients) > 0 {
		recipients = append([]string{}, input.Recipients...)
	}

	objectID := strings.TrimSpace(input.ObjectID)
	if objectID == "" {
		objectID = strings.TrimSpace(input.SnapshotID)
	}
	if objectID == "" {
		objectID = "dto"
	}

	return Event{
		Verb:           verb,
		ActorID:        strings.TrimSpace(input.ActorID),
		UserID:         strings.TrimSpace(input.UserID),
		TenantID:       strings.TrimSpace(input.TenantID),
		ObjectType:     "dto",
		ObjectID:       objectID,
		Channel:        strings.TrimSpace(input.Channel),
		DefinitionCode: strings.TrimSpace(input.DefinitionCode),
		Recipients:     recipients,
		Metadata:       metadata,
		OccurredAt:     input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
