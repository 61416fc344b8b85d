package snake

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the board: status line and separator.
const hudHeight = 2

// Game is the playable snake: an Engine plus pause, restart, screen fitting
// and high score bookkeeping. The platform calls Step once per tick.
type Game struct {
	cfg    config.SnakeConfig
	engine *Engine
	state  *GameState
	keeper *HighScoreKeeper
	logger *log.Logger

	level   int
	last    Outcome
	newBest bool

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
}

// New creates a game. keeper and logger may be nil.
func New(cfg config.SnakeConfig, keeper *HighScoreKeeper, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	if keeper == nil {
		keeper = NewHighScoreKeeper(nil, logger)
	}
	return &Game{
		cfg:    cfg,
		keeper: keeper,
		logger: logger,
		level:  1,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new game on rc.Level, seeding the engine from rc.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.engine = NewEngine(g.cfg, rc.Seed)
	g.level = rc.Level
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)
	return g.newGame()
}

func (g *Game) newGame() error {
	s, err := g.engine.NewGame(g.level)
	if err != nil {
		return err
	}
	g.state = s
	g.last = g.engine.outcome(s)
	g.newBest = false

	g.logger.Debug("new game",
		"game", s.ID,
		"level", s.Level.ID,
		"obstacles", s.Obstacles.Size(),
		"food", s.Food.Cell,
	)
	return nil
}

// Resize records the terminal size. The game pauses itself while the board
// does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	needW, needH := g.RequiredSize()
	g.tooSmall = w < needW || h < needH
}

// RequiredSize returns the smallest screen the board fits on. Every board
// cell is two characters wide.
func (g *Game) RequiredSize() (w, h int) {
	n := g.cfg.Board.Size
	return 2*n + 2, n + 2 + hudHeight
}

// Steer requests a direction change for the next tick.
func (g *Game) Steer(d core.Direction) bool {
	if g.state == nil || g.paused {
		return false
	}
	return g.engine.ChangeDirection(g.state, d)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{}
	}

	if input.Has(core.ActionRestart) && g.state.GameOver {
		if err := g.newGame(); err != nil {
			g.logger.Error("could not restart game", "level", g.level, "err", err)
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.state.GameOver {
		g.paused = !g.paused
	}

	if g.state.GameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.last = g.engine.Tick(g.state, g.state.Heading())

	if g.last.Ate {
		g.logger.Debug("food eaten",
			"game", g.state.ID,
			"score", g.state.Score,
			"length", g.state.Body.Len(),
			"grew", g.last.Grew,
			"reversed", g.last.Reversed,
		)
	}
	if g.last.GameOver {
		g.newBest = g.keeper.Record(g.state.Score)
		g.logger.Info("game over",
			"game", g.state.ID,
			"level", g.state.Level.ID,
			"score", g.state.Score,
			"collision", g.state.Collision,
			"ticks", g.state.Ticks,
			"high", g.keeper.Best(),
		)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Level returns the level being played.
func (g *Game) Level() int {
	return g.level
}

// HighScore returns the best score known to the game.
func (g *Game) HighScore() int {
	return g.keeper.Best()
}

// Outcome returns the result of the most recent tick.
func (g *Game) Outcome() Outcome {
	return g.last
}

// Current exposes the running game state.
func (g *Game) Current() *GameState {
	return g.state
}
