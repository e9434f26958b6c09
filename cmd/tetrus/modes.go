package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetrus/internal/game"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available game modes",
	Long:  `Shows the standard game modes and the flags that select them.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	modes := game.Presets()

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Goal")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")

	for _, m := range modes {
		goal := "play until top-out"
		switch {
		case m.TargetLines > 0:
			goal = fmt.Sprintf("clear %d lines", m.TargetLines)
		case m.TimeLimit > 0:
			goal = fmt.Sprintf("best score in %s", m.TimeLimit)
		}
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, m.ID, m.Name, goal)
	}

	fmt.Println()
	fmt.Println("Run 'tetrus play' for marathon, or use --sprint N / --ultra DURATION.")
}
