package activity

import (
	"context"
	"strings"
)

// Config controls container activity emission defaults supplied by DI/config.
type Config struct {
	Enabled bool
	Channel string
}

// Emitter fans out container lifecycle events to hooks while applying
// defaults. Containers notify their own hooks directly; the emitter is for
// call sites that report on containers they did not construct.
type Emitter struct {
	hooks   Hooks
	enabled bool
	channel string
}

// NewEmitter constructs an emitter from hooks and configuration.
func NewEmitter(hooks Hooks, cfg Config) *Emitter {
	channel := strings.TrimSpace(cfg.Channel)
	if channel == "" {
		channel = "dto"
	}
	normalizedHooks := cloneHooks(hooks)
	return &Emitter{
		hooks:   normalizedHooks,
		enabled: cfg.Enabled && len(normalizedHooks) > 0,
		channel: channel,
	}
}

// Enabled reports whether emissions should be attempted.
func (e *Emitter) Enabled() bool {
	return e != nil && e.enabled && len(e.hooks) > 0
}

// Emit forwards the event to all hooks, applying default channel when missing.
func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() {
		return nil
	}
	if strings.TrimSpace(event.Channel) == "" && e.channel != "" {
		event.Channel = e.channel
	}
	return e.hooks.Notify(ctx, event)
}

// EmitCreated builds and emits a dto.created event from input.
func (e *Emitter) EmitCreated(ctx context.Context, input EventInput) error {
	return e.Emit(ctx, BuildCreatedEvent(input))
}

// EmitUpdated builds and emits a dto.updated event from input.
func (e *Emitter) EmitUpdated(ctx context.Context, input EventInput) error {
	return e.Emit(ctx, BuildUpdatedEvent(input))
}

// EmitRemoved builds and emits a dto.removed event from input.
func (e *Emitter) EmitRemoved(ctx context.Context, input EventInput) error {
	return e.Emit(ctx, BuildRemovedEvent(input))
}

// EmitSynced builds and emits a dto.synced event from input.
func (e *Emitter) EmitSynced(ctx context.Context, input EventInput) error {
	return e.Emit(ctx, BuildSyncedEvent(input))
}

func cloneHooks(hooks Hooks) Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	return Hooks(normalized)
}
