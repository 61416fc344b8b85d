package snake

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rand is the randomness the game draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Occupancy answers whether a cell is taken. Body and mapset.Set satisfy it.
type Occupancy interface {
	Has(cell core.Cell) bool
}

// GenerateObstacles places count distinct obstacles uniformly at random,
// never on avoid. count is capped so that at least one cell besides avoid
// stays free. maxDraws bounds the random draws per obstacle (0 = unbounded);
// see drawFree.
func GenerateObstacles(g core.Grid, count int, avoid core.Cell, rng Rand, maxDraws int) mapset.Set[core.Cell] {
	obstacles := mapset.New[core.Cell]()
	count = min(count, g.Cells()-2)

	blocked := func(c core.Cell) bool {
		return c == avoid || obstacles.Has(c)
	}
	for obstacles.Size() < count {
		cell := drawFree(g, rng, maxDraws, blocked)
		if cell == core.NoCell {
			break
		}
		obstacles.Put(cell)
	}
	return obstacles
}

// drawFree rejection-samples a uniformly random cell that is not blocked.
// After maxDraws failed draws (when maxDraws > 0) it scans the board from a
// random starting cell instead, so it terminates even on a nearly full board.
// It returns core.NoCell when every cell is blocked.
func drawFree(g core.Grid, rng Rand, maxDraws int, blocked func(core.Cell) bool) core.Cell {
	total := g.Cells()
	for draws := 0; maxDraws <= 0 || draws < maxDraws; draws++ {
		cell := core.Cell(rng.Intn(total) + 1)
		if !blocked(cell) {
			return cell
		}
	}

	offset := rng.Intn(total)
	for i := 0; i < total; i++ {
		cell := core.Cell((offset+i)%total + 1)
		if !blocked(cell) {
			return cell
		}
	}
	return core.NoCell
}
