package config

import "fmt"

// ValidationError names the offending setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// MinBoardSize is the smallest supported board side.
const MinBoardSize = 5

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	n := c.Board.Size
	if n < MinBoardSize {
		return ValidationError{Field: "board.size", Message: fmt.Sprintf("must be at least %d, got %d", MinBoardSize, n)}
	}
	if c.Timing.TickInterval <= 0 {
		return ValidationError{Field: "timing.tick_interval", Message: "must be positive"}
	}
	if c.Food.ReversalChance < 0 || c.Food.ReversalChance > 1 {
		return ValidationError{Field: "food.reversal_chance", Message: fmt.Sprintf("must be within [0, 1], got %g", c.Food.ReversalChance)}
	}
	if c.Food.InitialOffset < 0 {
		return ValidationError{Field: "food.initial_offset", Message: "must not be negative"}
	}
	if c.Food.MaxDraws < 0 {
		return ValidationError{Field: "food.max_draws", Message: "must not be negative"}
	}
	if len(c.Levels) == 0 {
		return ValidationError{Field: "levels", Message: "at least one level is required"}
	}

	seen := make(map[int]bool, len(c.Levels))
	for i, l := range c.Levels {
		field := fmt.Sprintf("levels[%d]", i)
		if l.ID <= 0 {
			return ValidationError{Field: field + ".id", Message: "must be positive"}
		}
		if seen[l.ID] {
			return ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate level %d", l.ID)}
		}
		seen[l.ID] = true
		if l.Density < 0 || l.Density >= 1 {
			return ValidationError{Field: field + ".density", Message: fmt.Sprintf("must be within [0, 1), got %g", l.Density)}
		}
		if l.MinObstacles < 0 {
			return ValidationError{Field: field + ".min_obstacles", Message: "must not be negative"}
		}
		// The start cell must stay free, and the snake needs somewhere to go.
		if count := l.ObstacleCount(n); count >= n*n-1 {
			return ValidationError{Field: field, Message: fmt.Sprintf("%d obstacles do not fit on a %dx%d board", count, n, n)}
		}
	}
	return nil
}
