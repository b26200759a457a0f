package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]RecordDefinition)
	registryMu sync.RWMutex
)

// Register adds a record definition to the registry.
// Panics if the kind is already registered.
func Register(def RecordDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Kind]; exists {
		panic(fmt.Sprintf("record kind already registered: %s", def.Kind))
	}

	registry[def.Kind] = def
}

// Lookup returns a record definition by kind.
// Returns false if not found.
func Lookup(kind string) (RecordDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[kind]
	return def, ok
}

// Kinds returns the registered importable kinds, sorted for consistent
// ordering.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
