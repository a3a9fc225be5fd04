package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smolin/blockade/internal/level"
)

var flagLevelGrids bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in level catalogue",
	Long: `Show the built-in levels with their bonus timers.
Pass --grids to also print each level's block layout.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagLevelGrids, "grids", false, "Print block layouts")
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := level.Builtin()

	fmt.Println("Built-in levels:")
	fmt.Println()

	maxIDLen := 2
	for _, lv := range levels {
		if len(lv.ID) > maxIDLen {
			maxIDLen = len(lv.ID)
		}
	}

	fmt.Printf("  %-3s %-*s  %-20s %s\n", "#", maxIDLen, "ID", "Title", "Bonus")
	fmt.Printf("  %-3s %-*s  %-20s %s\n", "-", maxIDLen, "--", "-----", "-----")

	for i, lv := range levels {
		fmt.Printf("  %-3d %-*s  %-20s %ds\n", i+1, maxIDLen, lv.ID, lv.Title, lv.TimeBonus)
		if flagLevelGrids {
			fmt.Println()
			for _, row := range lv.Grid {
				fmt.Printf("      %s\n", row)
			}
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'blockade play --level <#>' to start at a specific level.")
}
