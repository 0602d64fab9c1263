package label

import (
	"fmt"
	"slices"
	"sync"
)

// Set is the type-erased view of a Table used by the registry.
type Set interface {
	Name() string
	Rule() Case
	Labels() []string
	Contains(label string) bool
	LookupAny(label string) (any, bool)
	LabelAny(v any) (string, bool)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Set)
)

// Register registers a set in the global registry
func Register(s Set) error {
	if s == nil {
		return fmt.Errorf("cannot register nil set")
	}
	if s.Name() == "" {
		return fmt.Errorf("set must have a name")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[s.Name()]; exists {
		return fmt.Errorf("set %q already registered", s.Name())
	}

	registry[s.Name()] = s
	return nil
}

// Lookup looks up a set by name
func Lookup(name string) Set {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered sets, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// All returns all registered sets
func All() map[string]Set {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]Set, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}
