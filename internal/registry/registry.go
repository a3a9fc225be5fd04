// Package registry holds the catalogue of playable game modes.
// Modes register themselves in init() functions so the platform and
// CLI can discover and instantiate them without import cycles.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/smolin/blockade/internal/core"
)

// Game is the contract every playable mode implements. Modes are pure
// simulations: no terminal I/O, no Bubble Tea. The platform owns input
// mapping, the tick loop, and drawing the Screen to the terminal.
type Game interface {
	// ID returns the mode identifier (e.g. "blockade", "blockade_endless").
	// Used for CLI subcommands and score storage.
	ID() string

	// Title returns a human-readable name for menus and headers.
	Title() string

	// Reset initializes or restarts the simulation. Called once at start
	// and again when the player restarts after a game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, pause, and game-over status.
	State() core.GameState
}

// Info describes a registered mode.
type Info struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode to the catalogue. Called from init();
// panics on a duplicate ID since that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Instantiate once to capture the display title.
	g := f()
	titles[id] = g.Title()
}

// List returns all registered modes sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
