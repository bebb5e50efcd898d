package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ResolverFunc is the signature for custom resolvers. Args is JSON-decoded map.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var (
	mu      sync.RWMutex
	locked  bool
	entries = make(map[string]ResolverFunc)
)

// Register adds a resolver. Call from init() in custom packages. Name must be unique. Panics if locked.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if locked {
		panic("graphql/registry: locked (register only during init before first request)")
	}
	if _, ok := entries[name]; ok {
		panic("graphql/registry: duplicate " + name)
	}
	entries[name] = resolve
}

// Unregister removes a registration and unlocks the registry (for tests).
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	locked = false
	delete(entries, name)
}

// UnlockForTesting reopens the registry for registration.
func UnlockForTesting() {
	mu.Lock()
	defer mu.Unlock()
	locked = false
}

// Resolve calls the resolver for the given field. Locks the registry on first call.
func Resolve(ctx context.Context, field string, args map[string]interface{}) (interface{}, error) {
	mu.Lock()
	locked = true
	resolve, ok := entries[field]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown extension: %s", field)
	}
	return resolve(ctx, args)
}

// Names returns all registered names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
