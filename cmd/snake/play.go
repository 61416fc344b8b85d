package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Pick a level and play. After a game ends you can start a new one on the
same level or go back to the level selector.

Controls:
  Arrows/WASD/hjkl  - Steer
  P                 - Pause
  R                 - New game (after game over)
  B/Esc             - Back to level select (after game over or while paused)
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --level 2
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start this level directly, skipping the selector")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal; logs only go somewhere with --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagLevel != 0 {
		if _, ok := cfg.Level(flagLevel); !ok {
			return fmt.Errorf("unknown level %d (see 'snake levels')", flagLevel)
		}
	}

	store := openStore(logger)
	defer store.Close()

	keeper := snake.NewHighScoreKeeper(store, logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	level := flagLevel
	for {
		if level == 0 {
			chosen, ok, selErr := tui.RunLevelSelector(cfg, keeper.Best(), width, height)
			if selErr != nil {
				return fmt.Errorf("level selector: %w", selErr)
			}
			if !ok {
				return nil
			}
			level = chosen
		}

		rc := core.RuntimeConfig{
			ScreenW:      width,
			ScreenH:      height,
			TickInterval: cfg.Timing.TickInterval,
			Seed:         flagSeed,
			Level:        level,
		}
		logger.Info("starting game", "level", level, "seed", rc.Seed)

		back, runErr := tui.Run(snake.New(cfg, keeper, logger), rc)
		if runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		if !back {
			return nil
		}
		level = 0
	}
}
