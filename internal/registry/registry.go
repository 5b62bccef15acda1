// Package registry provides a global registry of replay rule variants.
// Variants register themselves in init() functions, allowing the CLI and
// the verification service to pick rules by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tilescore/internal/core"
)

// Variant is a named rule set that can recompute a score from a seed and a
// packed move log. Implementations must be pure: the same inputs always give
// the same outputs and no state is shared between calls.
type Variant interface {
	// ID returns a unique identifier (e.g., "tiles"). Used for CLI arguments
	// and as the leaderboard key in storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Score decodes movesLen moves from the packed log and replays them.
	Score(seed uint64, moves []byte, movesLen uint64) uint32

	// Replay returns the start position followed by one frame per
	// supplied move, stopping at the first terminal position.
	Replay(seed uint64, moves []byte, movesLen uint64) []core.Frame
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a variant instance.
type Factory func() Variant

// Default is the variant used when none is requested.
const Default = "tiles"

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for id := range factories {
		result = append(result, VariantInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID. An empty ID selects Default.
func Create(id string) (Variant, error) {
	if id == "" {
		id = Default
	}

	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
