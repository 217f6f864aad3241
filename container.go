package dto

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/goliatone/go-dto/pkg/activity"
	"github.com/google/uuid"
)

// Dto is the attribute container. It tracks the current attribute map, the
// original snapshot captured when each attribute was first assigned, and the
// set of attributes whose value has since diverged from that snapshot. A
// container is born uninitialized; the first Fill drives it to initialized
// exactly once and the flag never reverts.
//
// Dto is not safe for concurrent use; callers must serialize access per
// instance.
type Dto struct {
	id          string
	attributes  map[string]any
	original    map[string]any
	dirty       map[string]any
	fillable    []string
	options     Options
	initialized bool
	snapshotID  string

	cfg containerConfig
}

// Container is satisfied by any struct embedding Dto. The unexported method
// keeps foreign implementations out so the factory can rely on reaching the
// embedded container.
type Container interface {
	mount() *Dto
}

func (d *Dto) mount() *Dto { return d }

// New builds a container and fills it with attrs, leaving it initialized.
// Policy violations during the fill propagate to the caller.
func New(attrs map[string]any, opts ...Option) (*Dto, error) {
	d := &Dto{}
	d.configure(applyContainerOptions(opts))
	if err := d.Fill(attrs); err != nil {
		return nil, err
	}
	return d, nil
}

// Init wires a struct embedding Dto: it resolves the concrete type's
// capability markers, applies opts, and fills attrs. Use it when
// constructing typed DTOs directly instead of through a factory.
func Init(container Container, attrs map[string]any, opts ...Option) error {
	if container == nil {
		return ErrInvalidArgument
	}
	d := container.mount()
	cfg := applyContainerOptions(opts)
	if !cfg.optionsSet {
		cfg.options = ResolveOptions(container)
		cfg.optionsSet = true
	}
	if cfg.fillable == nil {
		cfg.fillable = fillableOf(container)
	}
	d.configure(cfg)
	return d.Fill(attrs)
}

func (d *Dto) configure(cfg containerConfig) {
	d.cfg = cfg
	d.options = cfg.options
	d.fillable = cfg.fillable
	d.ensure()
}

func (d *Dto) ensure() {
	if d.id == "" {
		d.id = uuid.NewString()
	}
	if d.attributes == nil {
		d.attributes = map[string]any{}
	}
	if d.original == nil {
		d.original = map[string]any{}
	}
	if d.dirty == nil {
		d.dirty = map[string]any{}
	}
}

// ID returns the identifier minted for this container instance. It is used
// as the object ID on emitted activity events.
func (d *Dto) ID() string {
	d.ensure()
	return d.id
}

// Set validates name, runs the policy checks in fixed order (read-only,
// fillable, forbid-overrides, rules) and stores value. The first failing
// check wins and the container is left untouched.
func (d *Dto) Set(name string, value any) error {
	d.ensure()
	property, err := NewProperty(name, value)
	if err != nil {
		return err
	}
	if d.options.ReadOnly && d.initialized {
		return attributeError(name, ErrReadOnly)
	}
	if len(d.fillable) > 0 && !slices.Contains(d.fillable, name) {
		return attributeError(name, ErrNotFillable)
	}
	previous, exists := d.attributes[name]
	if d.options.ForbidOverrides && exists {
		return attributeError(name, ErrOverrideForbidden)
	}
	if err := d.evaluateRules(property); err != nil {
		return err
	}

	original, tracked := d.original[name]
	if exists || tracked {
		// A name removed by Unset keeps its original entry, so a later
		// re-assignment is still measured against the first-assignment value.
		if valuesEqual(property.Value, original) {
			delete(d.dirty, name)
		} else {
			d.dirty[name] = property.Value
		}
	} else {
		d.original[name] = property.Value
	}
	d.attributes[name] = property.Value
	d.notifyUpdated(name, previous, property.Value)
	return nil
}

// Get returns the stored value for name. Absent names fail with
// ErrUnknownAttribute unless the ignore-unknown policy is active, in which
// case they yield nil.
func (d *Dto) Get(name string) (any, error) {
	d.ensure()
	value, ok := d.attributes[name]
	if !ok && !d.options.IgnoreUnknown {
		return nil, attributeError(name, ErrUnknownAttribute)
	}
	return value, nil
}

// Has reports whether name is currently present. It never fails.
func (d *Dto) Has(name string) bool {
	d.ensure()
	_, ok := d.attributes[name]
	return ok
}

// Fill applies Set for every entry of attrs, then runs the initialization
// transition. The transition happens exactly once per container; later
// fills only mutate attributes. Fill stops at the first failing entry and
// skips the transition in that case.
func (d *Dto) Fill(attrs map[string]any) error {
	d.ensure()
	for name, value := range attrs {
		if err := d.Set(name, value); err != nil {
			return err
		}
	}
	d.initialize()
	return nil
}

func (d *Dto) initialize() {
	if d.initialized {
		return
	}
	d.initialized = true
	// The transition re-baselines both maps: whatever accumulated through
	// pre-initialization writes is the original now, so nothing is dirty.
	d.original = cloneAttributes(d.attributes)
	d.dirty = map[string]any{}
	d.notify(activity.BuildCreatedEvent(d.eventInput("", nil, nil)))
}

// Unset removes name from the container. Read-only containers reject the
// removal after initialization; removing an absent name is a no-op. The
// original snapshot is left untouched until the next SyncOriginal.
func (d *Dto) Unset(name string) error {
	d.ensure()
	if err := validateKey(name); err != nil {
		return err
	}
	if d.options.ReadOnly && d.initialized {
		return attributeError(name, ErrReadOnly)
	}
	previous, ok := d.attributes[name]
	if !ok {
		return nil
	}
	delete(d.attributes, name)
	delete(d.dirty, name)
	d.notify(activity.BuildRemovedEvent(d.eventInput(name, previous, nil)))
	return nil
}

// SyncOriginal replaces the original snapshot wholesale with the current
// attribute map and returns the freshly minted snapshot identifier. Dirty
// and initialization state are left untouched.
func (d *Dto) SyncOriginal() string {
	d.ensure()
	d.original = cloneAttributes(d.attributes)
	d.snapshotID = uuid.NewString()
	d.notify(activity.BuildSyncedEvent(d.eventInput("", nil, nil)))
	return d.snapshotID
}

// SnapshotID returns the identifier of the last explicit snapshot, empty
// until SyncOriginal has run.
func (d *Dto) SnapshotID() string {
	return d.snapshotID
}

// Original returns a detached copy of the original snapshot.
func (d *Dto) Original() map[string]any {
	d.ensure()
	return cloneAttributes(d.original)
}

// GetOriginal returns the original value recorded for name, or nil when the
// name was never assigned. It never fails.
func (d *Dto) GetOriginal(name string) any {
	d.ensure()
	return d.original[name]
}

// Dirty returns a detached copy of the attributes whose current value
// diverged from the original snapshot.
func (d *Dto) Dirty() map[string]any {
	d.ensure()
	return cloneAttributes(d.dirty)
}

// GetDirty returns the dirty value recorded for name, or nil when the name
// is clean. It never fails.
func (d *Dto) GetDirty(name string) any {
	d.ensure()
	return d.dirty[name]
}

// All returns a deep defensive copy of the current attribute map.
func (d *Dto) All() map[string]any {
	d.ensure()
	return cloneAttributes(d.attributes)
}

// ToMap is an alias for All.
func (d *Dto) ToMap() map[string]any {
	return d.All()
}

// IsEmpty reports whether every stored value is nil. An attribute explicitly
// set to nil still counts as empty for its slot, so a container holding only
// nil values is empty even though it has entries.
func (d *Dto) IsEmpty() bool {
	d.ensure()
	for _, value := range d.attributes {
		if value != nil {
			return false
		}
	}
	return true
}

// IsFilled is the logical negation of IsEmpty.
func (d *Dto) IsFilled() bool {
	return !d.IsEmpty()
}

// IsInitialized reports whether the container completed its first fill.
func (d *Dto) IsInitialized() bool {
	return d.initialized
}

// ToJSON serialises the current attribute map. Non-serialisable values
// propagate the underlying encoding failure.
func (d *Dto) ToJSON() ([]byte, error) {
	d.ensure()
	return json.Marshal(d.attributes)
}

// SetOptions merges the recognized policy keys (forbid_overrides,
// ignore_unknown, read_only) into the container's flag set, coercing each
// value to bool. Unrecognized keys are ignored.
func (d *Dto) SetOptions(partial map[string]any) {
	for key, value := range partial {
		switch key {
		case "forbid_overrides":
			d.options.ForbidOverrides = coerceBool(value)
		case "ignore_unknown":
			d.options.IgnoreUnknown = coerceBool(value)
		case "read_only":
			d.options.ReadOnly = coerceBool(value)
		}
	}
}

// GetOptions returns the currently active policy flags.
func (d *Dto) GetOptions() Options {
	return d.options
}

// Fillable returns a copy of the active whitelist, nil when every name is
// permitted.
func (d *Dto) Fillable() []string {
	if len(d.fillable) == 0 {
		return nil
	}
	return append([]string(nil), d.fillable...)
}

func coerceBool(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		return typed == "true" || typed == "1"
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case float64:
		return typed != 0
	default:
		return false
	}
}

// GetAs reads name from d and asserts the stored value to T. Absent names
// follow Get's policy; a present value of the wrong type fails with
// ErrInvalidArgument.
func GetAs[T any](d *Dto, name string) (T, error) {
	var zero T
	value, err := d.Get(name)
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		return zero, attributeError(name, ErrInvalidArgument)
	}
	return typed, nil
}

func (d *Dto) notifyUpdated(name string, oldValue, newValue any) {
	d.notify(activity.BuildUpdatedEvent(d.eventInput(name, oldValue, newValue)))
}

func (d *Dto) notify(event activity.Event) {
	if !d.cfg.activityHooks.Enabled() {
		return
	}
	// Hook failures never surface through container operations.
	_ = d.cfg.activityHooks.Notify(context.Background(), event)
}

func (d *Dto) eventInput(name string, oldValue, newValue any) activity.EventInput {
	return activity.EventInput{
		ObjectID:   d.id,
		Attribute:  name,
		OldValue:   oldValue,
		NewValue:   newValue,
		SnapshotID: d.snapshotID,
	}
}
