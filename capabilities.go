package dto

// Capability markers are declared on concrete DTO types; the container
// resolves them once per type the first time an instance initializes. A type
// may declare any subset, the three policy flags are independent.

// ReadOnlyCapable marks a type whose attributes reject writes after the
// container has initialized.
type ReadOnlyCapable interface {
	ReadOnlyAttributes() bool
}

// OverrideGuarded marks a type that rejects overwriting an existing
// attribute.
type OverrideGuarded interface {
	ForbidsOverrides() bool
}

// UnknownTolerant marks a type whose reads of absent attributes yield nil
// instead of failing with ErrUnknownAttribute.
type UnknownTolerant interface {
	IgnoresUnknown() bool
}

// FillableProvider restricts assignable attribute names to the returned
// whitelist. An empty slice permits every name.
type FillableProvider interface {
	FillableAttributes() []string
}

// Options is the resolved policy flag set applied on every container
// mutation and read.
type Options struct {
	ForbidOverrides bool
	IgnoreUnknown   bool
	ReadOnly        bool
}

// resolveCapabilities derives the flag set from the marker interfaces the
// concrete value declares.
func resolveCapabilities(value any) Options {
	options := Options{}
	if capable, ok := value.(ReadOnlyCapable); ok {
		options.ReadOnly = capable.ReadOnlyAttributes()
	}
	if guarded, ok := value.(OverrideGuarded); ok {
		options.ForbidOverrides = guarded.ForbidsOverrides()
	}
	if tolerant, ok := value.(UnknownTolerant); ok {
		options.IgnoreUnknown = tolerant.IgnoresUnknown()
	}
	return options
}

func fillableOf(value any) []string {
	provider, ok := value.(FillableProvider)
	if !ok {
		return nil
	}
	names := provider.FillableAttributes()
	if len(names) == 0 {
		return nil
	}
	return append([]string(nil), names...)
}
