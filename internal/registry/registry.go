// Package registry provides a global registry for cast scenarios.
// Scenarios register themselves in init() functions, allowing the CLI and
// the viewer to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/crisscross/internal/config"
)

// Kind selects which query a scenario runs.
type Kind string

const (
	KindRay      Kind = "ray"
	KindBeam     Kind = "beam"
	KindCrossing Kind = "crossing"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindRay, KindBeam, KindCrossing:
		return true
	default:
		return false
	}
}

// Scenario is a named scene together with the query to run on it.
type Scenario struct {
	ID    string
	Title string
	Kind  Kind
	Scene config.Scene
}

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID    string
	Title string
	Kind  Kind
}

// Factory creates a fresh copy of a scenario.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ScenarioInfo)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	sc := f()
	factories[id] = f
	infos[id] = ScenarioInfo{ID: id, Title: sc.Title, Kind: sc.Kind}
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Scenario{}, fmt.Errorf("registry: unknown scenario %q", id)
	}

	sc := f()
	sc.ID = id
	return sc, nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
