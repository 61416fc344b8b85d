package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long:  `Shows every level with the number of obstacles it places on the configured board.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n := cfg.Board.Size
	fmt.Printf("Board: %dx%d, tick every %s\n", n, n, cfg.Timing.TickInterval)
	fmt.Println()

	fmt.Printf("  %-5s  %-14s  %s\n", "Level", "Name", "Obstacles")
	fmt.Printf("  %-5s  %-14s  %s\n", "-----", "----", "---------")
	for _, l := range cfg.Levels {
		fmt.Printf("  %-5d  %-14s  %d\n", l.ID, l.Name, l.ObstacleCount(n))
	}

	fmt.Println()
	fmt.Println("Run 'snake play --level <n>' to start a level directly.")
	return nil
}
