package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Level        int
	Score        int
	SnakeLen     int
	Head         core.Coords
	Dir          core.Direction
	Food         core.Cell
	FoodReverses bool
	Obstacles    int
	Collision    Collision
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	s := g.state

	state := StatePlaying
	switch {
	case s.GameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         s.Ticks,
		Level:        s.Level.ID,
		Score:        s.Score,
		SnakeLen:     s.Body.Len(),
		Head:         s.Body.Head().Coords,
		Dir:          s.Direction,
		Food:         s.Food.Cell,
		FoodReverses: s.Food.Reverses,
		Obstacles:    s.Obstacles.Size(),
		Collision:    s.Collision,
		State:        state,
	}
}
