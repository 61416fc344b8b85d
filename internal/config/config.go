// Package config provides YAML-based configuration loading for the snake game.
package config

import "time"

// SnakeConfig contains all tunable settings of the game.
type SnakeConfig struct {
	Board  BoardConfig   `yaml:"board"`
	Timing TimingConfig  `yaml:"timing"`
	Food   FoodConfig    `yaml:"food"`
	Levels []LevelConfig `yaml:"levels"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Size int `yaml:"size"` // Side length N of the N×N board
}

// TimingConfig defines the fixed tick rate.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	ReversalChance float64 `yaml:"reversal_chance"` // Probability that new food reverses the snake
	InitialOffset  int     `yaml:"initial_offset"`  // First food is this many cells after the start cell
	MaxDraws       int     `yaml:"max_draws"`       // Random draws before scanning; 0 = 4·N²
}

// LevelConfig describes one selectable level.
type LevelConfig struct {
	ID           int     `yaml:"id"`
	Name         string  `yaml:"name"`
	Obstacles    bool    `yaml:"obstacles"`
	Density      float64 `yaml:"density,omitempty"`       // Fraction of the board blocked
	MinObstacles int     `yaml:"min_obstacles,omitempty"` // Lower bound on the obstacle count
}

// ObstacleCount returns how many obstacles the level places on an n×n board:
// max(MinObstacles, floor(Density·n²)) when obstacles are enabled, else 0.
func (l LevelConfig) ObstacleCount(n int) int {
	if !l.Obstacles {
		return 0
	}
	count := int(l.Density * float64(n*n))
	return max(l.MinObstacles, count)
}

// Level looks up a level by ID.
func (c SnakeConfig) Level(id int) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// LevelIDs returns the configured level IDs in declaration order.
func (c SnakeConfig) LevelIDs() []int {
	ids := make([]int, len(c.Levels))
	for i, l := range c.Levels {
		ids[i] = l.ID
	}
	return ids
}

// MaxDraws returns the effective rejection-sampling cap for an n×n board.
func (c SnakeConfig) MaxDraws() int {
	if c.Food.MaxDraws > 0 {
		return c.Food.MaxDraws
	}
	return 4 * c.Board.Size * c.Board.Size
}
