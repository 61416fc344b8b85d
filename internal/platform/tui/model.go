package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the row reserved under the board for the key help.
const helpHeight = 1

// GameModel is the Bubble Tea model that runs one snake game.
// Ticks arrive at a fixed interval; key presses steer immediately.
type GameModel struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	standalone bool // Quit the program on back instead of handing control to a parent
	quitting   bool
	backToMenu bool
}

// NewGameModel starts a game on cfg.Level and wraps it in a model.
func NewGameModel(game *snake.Game, cfg core.RuntimeConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}

	boardH := max(cfg.ScreenH-helpHeight, 0)
	if err := game.Reset(core.RuntimeConfig{
		ScreenW:      cfg.ScreenW,
		ScreenH:      boardH,
		TickInterval: cfg.TickInterval,
		Seed:         cfg.Seed,
		Level:        cfg.Level,
	}); err != nil {
		return GameModel{}, err
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		boardH := max(msg.Height-helpHeight, 0)
		m.screen.Resize(msg.Width, boardH)
		m.game.Resize(msg.Width, boardH)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := action.Direction(); ok {
		m.game.Steer(dir)
		return m, nil
	}

	state := m.game.State()
	switch action {
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)

	case core.ActionRestart:
		if state.GameOver {
			// The tick loop stopped at game over; restart it.
			frame := core.NewInputFrame()
			frame.Set(core.ActionRestart)
			m.game.Step(frame)
			m.inputFrame.Clear()
			return m, tickCmd(m.config.TickInterval)
		}

	case core.ActionBack:
		if state.GameOver || state.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.game.State().GameOver {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal. It returns true when the player
// asked to go back to the level selector and false when they quit.
func Run(game *snake.Game, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model, err := NewGameModel(game, cfg)
	if err != nil {
		return false, err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
