package core

import "time"

// HighScoreKeeper is the persisted high score collaborator.
// Submit reports a finished game's score and returns the best known score,
// or -1 when the stored value is unknown.
type HighScoreKeeper interface {
	Submit(score int) int
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for grid dimensions, timing and deterministic simulation.
type RuntimeConfig struct {
	GridW        int           // Grid width in cells
	GridH        int           // Grid height in cells
	TickInterval time.Duration // Overrides the variant's interval when > 0
	Seed         int64         // RNG seed for deterministic gameplay

	// HighScores is consulted once per game over. May be nil.
	HighScores HighScoreKeeper
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW: 20,
		GridH: 20,
		Seed:  0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best persisted score, -1 if unknown
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// Event is something noteworthy that happened during a tick.
type Event int

const (
	EventAte Event = iota + 1
	EventGameOver
)

// StepResult is returned by Game.Tick() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
