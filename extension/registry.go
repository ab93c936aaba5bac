// registry.go implements the extension registration system.
//
// Extensions self-register during init(), before main() runs, so the root
// command can add their commands in a stable order. Duplicate names panic
// like database/sql.Register: they are programmer errors, not runtime
// conditions.

package extension

import (
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	registry []Extension // registration order
)

// Register adds an extension to the registry. Called from init() functions.
// Panics if an extension with the same name is already registered.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if slices.ContainsFunc(registry, func(x Extension) bool { return x.Name() == name }) {
		panic("extension already registered: " + name)
	}
	registry = append(registry, e)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Clone(registry)
}

// Get returns a specific extension by name, or nil if not found.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	i := slices.IndexFunc(registry, func(x Extension) bool { return x.Name() == name })
	if i < 0 {
		return nil
	}
	return registry[i]
}

// Names returns the names of all registered extensions.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name()
	}
	return names
}
