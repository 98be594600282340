package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 20)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The 20 ticks per second rate is the classic 50ms frame cadence.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the simulated duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 50 * time.Millisecond
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score of this process
	Lives     int  // Lives remaining
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventObstacleHit   EventKind = iota // Obstacle hit cost a life
	EventShieldBlocked                  // Obstacle hit absorbed by the shield
	EventPowerUp                        // Power-up collected (Detail holds the kind)
	EventEscalated                      // Difficulty went up
	EventIntensify                      // Music should get louder
	EventGameOver                       // Last life lost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventObstacleHit:
		return "ObstacleHit"
	case EventShieldBlocked:
		return "ShieldBlocked"
	case EventPowerUp:
		return "PowerUp"
	case EventEscalated:
		return "Escalated"
	case EventIntensify:
		return "Intensify"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is emitted by a game tick for the platform (audio, logging).
type Event struct {
	Kind   EventKind
	Detail string
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
