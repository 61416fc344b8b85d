package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Food is the single active food item.
type Food struct {
	Cell     core.Cell
	Reverses bool // Eating it flips the snake end for end
}

// FoodSpawner draws the next food item.
type FoodSpawner struct {
	grid     core.Grid
	chance   float64
	maxDraws int
	rng      Rand
}

// NewFoodSpawner creates a spawner. chance is the probability that a new
// item reverses the snake.
func NewFoodSpawner(g core.Grid, chance float64, maxDraws int, rng Rand) *FoodSpawner {
	return &FoodSpawner{
		grid:     g,
		chance:   chance,
		maxDraws: maxDraws,
		rng:      rng,
	}
}

// Spawn picks a cell that is not occupied, not an obstacle and not the
// previous food cell, then independently decides whether it reverses.
// Cell is core.NoCell when the board has no free cell left.
func (f *FoodSpawner) Spawn(occupied, obstacles Occupancy, previous core.Cell) Food {
	cell := drawFree(f.grid, f.rng, f.maxDraws, func(c core.Cell) bool {
		return occupied.Has(c) || c == previous || obstacles.Has(c)
	})
	return Food{
		Cell:     cell,
		Reverses: f.rng.Float64() < f.chance,
	}
}
