package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It matches defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size: 15,
		},
		Timing: TimingConfig{
			TickInterval: 150 * time.Millisecond,
		},
		Food: FoodConfig{
			ReversalChance: 0.3,
			InitialOffset:  5,
			MaxDraws:       0,
		},
		Levels: []LevelConfig{
			{ID: 1, Name: "Classic", Obstacles: false},
			{ID: 2, Name: "Obstacles", Obstacles: true, Density: 0.08, MinObstacles: 8},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
