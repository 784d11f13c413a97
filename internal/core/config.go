package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaTime returns the simulated seconds covered by one tick.
func (c RuntimeConfig) DeltaTime() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float32(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Lives  int  // Remaining lives
	InPlay bool // Whether a run is in progress (not in a menu or win screen)
	Paused bool // Whether the game is paused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventBrickHit  EventKind = iota // Destructible brick destroyed
	EventSolidHit                   // Ball bounced off an indestructible brick
	EventPaddleHit                  // Ball bounced off the paddle
	EventPowerUp                    // Power-up collected
	EventLifeLost                   // Ball left the play area
	EventRunOver                    // Run finished (all lives lost or level cleared), Value is the final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickHit:
		return "brick"
	case EventSolidHit:
		return "solid"
	case EventPaddleHit:
		return "paddle"
	case EventPowerUp:
		return "powerup"
	case EventLifeLost:
		return "life_lost"
	case EventRunOver:
		return "run_over"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by a game step for the platform
// (sound, score persistence).
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
