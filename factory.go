package dto

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-dto/internal/hydrate"
)

// MakeAs builds a *T from source, where T is a struct embedding Dto. The
// concrete type's capability markers resolve the policy flags, source is
// normalized to a flat attribute map, and every entry is applied through the
// policy-checked setter. Per-attribute policy violations are dropped rather
// than aborting construction; only structural problems (bad type, empty
// data) fail, with ErrInvalidArgument.
func MakeAs[T any](source any, opts ...Option) (*T, error) {
	target := new(T)
	container, ok := any(target).(Container)
	if !ok {
		return nil, fmt.Errorf("%w: type %T does not embed dto.Dto", ErrInvalidArgument, *target)
	}
	if err := construct(target, container, source, opts); err != nil {
		return nil, err
	}
	return target, nil
}

// Constructor produces a fresh container instance for a registered type
// name.
type Constructor func() Container

// Factory builds containers from registered type names, for call sites that
// resolve the target type at runtime instead of compile time.
type Factory struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewFactory constructs an empty factory.
func NewFactory() *Factory {
	return &Factory{constructors: map[string]Constructor{}}
}

// Register stores constructor under name, guarding against duplicates.
func (f *Factory) Register(name string, constructor Constructor) error {
	if name == "" {
		return fmt.Errorf("%w: type name must not be empty", ErrInvalidArgument)
	}
	if constructor == nil {
		return fmt.Errorf("%w: constructor for %q is nil", ErrInvalidArgument, name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.constructors == nil {
		f.constructors = map[string]Constructor{}
	}
	if _, exists := f.constructors[name]; exists {
		return fmt.Errorf("%w: type %q already registered", ErrInvalidArgument, name)
	}
	f.constructors[name] = constructor
	return nil
}

// Names returns the registered type names.
func (f *Factory) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.constructors))
	for name := range f.constructors {
		names = append(names, name)
	}
	return names
}

// Make builds the container registered under typeName from source. Empty or
// unknown names, constructors yielding nil, and unnormalizable sources all
// fail with ErrInvalidArgument; per-attribute policy violations are absorbed.
func (f *Factory) Make(source any, typeName string, opts ...Option) (Container, error) {
	if typeName == "" {
		return nil, fmt.Errorf("%w: type name must not be empty", ErrInvalidArgument)
	}
	f.mu.RLock()
	constructor := f.constructors[typeName]
	f.mu.RUnlock()
	if constructor == nil {
		return nil, fmt.Errorf("%w: type %q is not registered", ErrInvalidArgument, typeName)
	}
	container := constructor()
	if container == nil {
		return nil, fmt.Errorf("%w: type %q cannot be instantiated", ErrInvalidArgument, typeName)
	}
	if err := construct(container, container, source, opts); err != nil {
		return nil, err
	}
	return container, nil
}

// construct wires capabilities from the concrete outer type, normalizes
// source, applies every entry discarding per-attribute errors, and runs the
// initialization transition.
func construct(outer any, container Container, source any, opts []Option) error {
	attrs, err := normalizeSource(source)
	if err != nil {
		return err
	}
	cfg := applyContainerOptions(opts)
	if !cfg.optionsSet {
		cfg.options = ResolveOptions(outer)
		cfg.optionsSet = true
	}
	if cfg.fillable == nil {
		cfg.fillable = fillableOf(outer)
	}
	d := container.mount()
	d.configure(cfg)
	for name, value := range attrs {
		// Best-effort: entries violating policy are dropped, never raised.
		_ = d.Set(name, value)
	}
	d.initialize()
	return nil
}

// As decodes the container's current attributes into a typed value through
// the hydrate decoder, applying json tags on T's fields.
func As[T any](d *Dto, opts ...hydrate.DecoderOption[T]) (T, error) {
	var zero T
	if d == nil {
		return zero, fmt.Errorf("%w: container is nil", ErrInvalidArgument)
	}
	decoder := hydrate.NewDecoder[T](opts...)
	return decoder.Decode(hydrate.Context{Name: d.ID()}, d.All())
}
