// blockade is a terminal block-breaking game.
//
// Usage:
//
//	blockade play [mode]      - Play (campaign by default, or endless)
//	blockade menu             - Interactive mode picker
//	blockade levels           - List the built-in level catalogue
//	blockade scores [mode]    - Show high scores
//	blockade serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes
	_ "github.com/smolin/blockade/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockade",
	Short: "Blockade - break blocks in your terminal",
	Long: `Blockade is a terminal block-breaking game. Bounce the ball off your
paddle, clear the wall before the bonus timer runs out, and spend
collected ammo firing bullets at the stubborn blocks.

Available commands:
  play     - Play directly (campaign or endless)
  menu     - Interactive mode picker
  levels   - Show the built-in level catalogue
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  blockade play
  blockade play endless --difficulty hard
  blockade menu
  blockade serve --ssh :2222
  blockade scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockade/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
