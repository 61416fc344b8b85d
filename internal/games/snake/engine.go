// Package snake implements the turn-based snake game: the body deque, the
// obstacle and food generators, the tick engine and the platform-facing Game.
package snake

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownLevel is returned when a game is requested for a level that is
// not configured.
var ErrUnknownLevel = errors.New("snake: unknown level")

// Collision names what ended a game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
	CollisionObstacle
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Status is the lifecycle state of a single game.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

// GameState is everything that changes while a game is played.
type GameState struct {
	ID        string
	Level     config.LevelConfig
	Body      *Body
	Food      Food
	Obstacles mapset.Set[core.Cell]
	Score     int
	GameOver  bool
	Collision Collision
	Ticks     uint64

	// Direction is the direction of travel committed by the last tick.
	Direction core.Direction
	// Pending holds the most recent accepted direction change. It is
	// consumed by the next tick.
	Pending    core.Direction
	HasPending bool
}

// Status reports whether the game is still running.
func (s *GameState) Status() Status {
	if s.GameOver {
		return StatusGameOver
	}
	return StatusRunning
}

// Heading is the direction the next tick will move in.
func (s *GameState) Heading() core.Direction {
	if s.HasPending {
		return s.Pending
	}
	return s.Direction
}

// Outcome is what a tick reports back to the presentation layer.
type Outcome struct {
	Occupied  []core.Cell // Tail to head
	Head      core.Coords
	Score     int
	GameOver  bool
	Collision Collision
	Ate       bool
	Grew      bool
	Reversed  bool
}

// Engine runs games on one board. It owns the random source, so a given
// seed and input sequence always produce the same games.
type Engine struct {
	cfg      config.SnakeConfig
	grid     core.Grid
	rng      *rand.Rand
	food     *FoodSpawner
	maxDraws int
}

// NewEngine creates an engine. cfg is expected to be validated.
func NewEngine(cfg config.SnakeConfig, seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	grid := core.NewGrid(cfg.Board.Size)
	maxDraws := cfg.MaxDraws()
	return &Engine{
		cfg:      cfg,
		grid:     grid,
		rng:      rng,
		food:     NewFoodSpawner(grid, cfg.Food.ReversalChance, maxDraws, rng),
		maxDraws: maxDraws,
	}
}

// Grid returns the board geometry.
func (e *Engine) Grid() core.Grid {
	return e.grid
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() config.SnakeConfig {
	return e.cfg
}

// Start returns the starting square: (round(N/3), round(N/3)).
func (e *Engine) Start() Segment {
	r := int(math.Round(float64(e.grid.N) / 3))
	coords := core.Coords{Row: r, Col: r}
	return Segment{Coords: coords, Cell: e.grid.CellAt(coords)}
}

// NewGame sets up a fresh game on the given level: a length-1 snake on the
// start square heading right, the level's obstacles and the first food.
func (e *Engine) NewGame(level int) (*GameState, error) {
	lvl, ok := e.cfg.Level(level)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}

	start := e.Start()
	obstacles := GenerateObstacles(e.grid, lvl.ObstacleCount(e.grid.N), start.Cell, e.rng, e.maxDraws)
	body := NewBody(start)

	return &GameState{
		ID:        uuid.NewString(),
		Level:     lvl,
		Body:      body,
		Food:      e.initialFood(start.Cell, body, obstacles),
		Obstacles: obstacles,
		Direction: core.DirRight,
	}, nil
}

// initialFood places the first food a fixed offset after the start cell.
// When that cell is unusable the spawner picks one instead.
func (e *Engine) initialFood(start core.Cell, body *Body, obstacles mapset.Set[core.Cell]) Food {
	cell := start + core.Cell(e.cfg.Food.InitialOffset)
	if cell != start && e.grid.Valid(cell) && !obstacles.Has(cell) {
		return Food{Cell: cell}
	}
	food := e.food.Spawn(body, obstacles, core.NoCell)
	food.Reverses = false
	return food
}

// ChangeDirection records d as the pending direction. Reversing straight
// back into the body is refused while the snake is longer than one square;
// a length-1 snake may turn any way. Later calls before the next tick
// overwrite earlier ones.
func (e *Engine) ChangeDirection(s *GameState, d core.Direction) bool {
	if s.GameOver || !d.Valid() {
		return false
	}
	if d == s.Direction.Opposite() && s.Body.Len() > 1 {
		return false
	}
	s.Pending = d
	s.HasPending = true
	return true
}

// Tick advances the game by one move in direction d. A tick on a finished
// game changes nothing.
func (e *Engine) Tick(s *GameState, d core.Direction) Outcome {
	if s.GameOver {
		return e.outcome(s)
	}

	if !d.Valid() {
		d = s.Direction
	}
	s.Ticks++
	s.HasPending = false
	s.Direction = d

	next := d.Step(s.Body.Head().Coords)
	if !e.grid.InBounds(next) {
		return e.finish(s, CollisionWall)
	}
	cell := e.grid.CellAt(next)

	// The tail has not moved yet, so running into it counts.
	if s.Body.Occupies(cell) {
		return e.finish(s, CollisionSelf)
	}
	if s.Obstacles.Has(cell) {
		return e.finish(s, CollisionObstacle)
	}

	s.Body.GrowHead(Segment{Coords: next, Cell: cell})
	s.Body.ReleaseTail()

	if cell != s.Food.Cell {
		return e.outcome(s)
	}

	grew := e.growTail(s)
	reversed := s.Food.Reverses
	if reversed {
		e.reverse(s)
	}
	s.Food = e.food.Spawn(s.Body, s.Obstacles, s.Food.Cell)
	s.Score++

	out := e.outcome(s)
	out.Ate = true
	out.Grew = grew
	out.Reversed = reversed
	return out
}

// tailTravel is the direction the tail is moving in: from the tail towards
// the next segment, or the direction of travel for a length-1 snake.
func (e *Engine) tailTravel(s *GameState) core.Direction {
	if s.Body.Len() > 1 {
		if d, ok := core.DirectionBetween(s.Body.Tail().Coords, s.Body.At(1).Coords); ok {
			return d
		}
	}
	return s.Direction
}

// growTail extends the snake by one square behind the tail. Nothing is
// added when that square is off the board or already taken.
func (e *Engine) growTail(s *GameState) bool {
	at := e.tailTravel(s).Opposite().Step(s.Body.Tail().Coords)
	if !e.grid.InBounds(at) {
		return false
	}
	cell := e.grid.CellAt(at)
	if s.Body.Occupies(cell) || s.Obstacles.Has(cell) {
		return false
	}
	s.Body.GrowTail(Segment{Coords: at, Cell: cell})
	return true
}

// reverse swaps head and tail. The snake then travels away from its
// former second-to-last square.
func (e *Engine) reverse(s *GameState) {
	s.Direction = e.tailTravel(s).Opposite()
	s.Body.Reverse()
}

func (e *Engine) finish(s *GameState, c Collision) Outcome {
	s.GameOver = true
	s.Collision = c
	return e.outcome(s)
}

func (e *Engine) outcome(s *GameState) Outcome {
	return Outcome{
		Occupied:  s.Body.Cells(),
		Head:      s.Body.Head().Coords,
		Score:     s.Score,
		GameOver:  s.GameOver,
		Collision: s.Collision,
	}
}
