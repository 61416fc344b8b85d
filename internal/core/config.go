package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from flags and the terminal size.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
	Level        int           // Level chosen in the selector
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 150 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
		Level:        1,
	}
}

// GameState is the status the game reports to the platform after each step.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by a game step.
type StepResult struct {
	State GameState
}
