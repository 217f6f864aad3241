package dto

import (
	"reflect"
	"sync"
)

// optionsRegistry caches resolved capability flags per concrete type so
// repeated construction of the same DTO type skips the interface probing.
// It is the only process-wide mutable state in the package.
type optionsRegistry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]Options
}

var bootedTypes = &optionsRegistry{entries: map[reflect.Type]Options{}}

// ResolveOptions returns the policy flags declared by value's concrete type,
// resolving and caching them on first use. A nil value yields the zero flag
// set.
func ResolveOptions(value any) Options {
	if value == nil {
		return Options{}
	}
	key := reflect.TypeOf(value)

	bootedTypes.mu.RLock()
	options, ok := bootedTypes.entries[key]
	bootedTypes.mu.RUnlock()
	if ok {
		return options
	}

	options = resolveCapabilities(value)
	bootedTypes.mu.Lock()
	bootedTypes.entries[key] = options
	bootedTypes.mu.Unlock()
	return options
}

// resetBootedTypes clears the cache; tests use it to exercise first-use
// resolution.
func resetBootedTypes() {
	bootedTypes.mu.Lock()
	bootedTypes.entries = map[reflect.Type]Options{}
	bootedTypes.mu.Unlock()
}
