// Package registry provides a global registry of built-in layout presets.
// Preset packages register themselves in init() functions, allowing the
// CLI and the inspector to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gearlogo/internal/config"
)

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh copy of a preset configuration.
type Factory func() config.LogoConfig

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PresetInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the configuration of a preset by its ID.
// Returns an error if the preset ID is not registered.
func Create(id string) (config.LogoConfig, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return config.LogoConfig{}, fmt.Errorf("registry: unknown preset %q", id)
	}

	return f(), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
