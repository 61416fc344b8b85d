package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagResetScore bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored high score",
	Long: `Display the high score and when it was set.

Examples:
  snake scores
  snake scores --reset
  snake scores --db ./snake.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScore, "reset", false, "Delete the stored high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening high score database: %w", err)
	}
	defer store.Close()

	if flagResetScore {
		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Println("High score cleared.")
		return nil
	}

	entry, err := store.HighScoreEntry()
	if err != nil {
		return err
	}

	if entry == nil {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first one!")
		return nil
	}

	fmt.Printf("Highest Score: %d\n", entry.Score)
	if !entry.UpdatedAt.IsZero() {
		fmt.Printf("Set on:        %s\n", entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
