// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the host loop and the
// SSH server can create fresh sessions without importing game packages.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the interface a playable session implements.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g., "breakout").
	// Used for CLI commands and as the storage key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset loads configuration and levels and returns to the menu.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick of 1/TickRate seconds.
	// Returns the state after the tick and the events it produced.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns score, lives and the in-play flag.
	State() core.GameState
}

// Resumable is implemented by games whose session can be persisted and
// restored byte-for-byte.
type Resumable interface {
	SaveSession() ([]byte, error)
	RestoreSession(data []byte) error
}

// Leveled is implemented by games that expose the active level name.
type Leveled interface {
	LevelName() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
