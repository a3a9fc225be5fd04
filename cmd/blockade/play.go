package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smolin/blockade/internal/core"
	"github.com/smolin/blockade/internal/game"
	"github.com/smolin/blockade/internal/platform/tui"
	"github.com/smolin/blockade/internal/registry"
	"github.com/smolin/blockade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the game",
	Long: `Start playing. Without arguments this runs the campaign; pass
"endless" to cycle the level catalogue forever.

Controls:
  A/D, Left/Right - Move paddle
  Space           - Launch ball
  F/W/Up          - Fire bullet (needs ammo)
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty presets:
  easy   - 5 lives, wider paddle, slower ball
  normal - defaults
  hard   - 2 lives, narrower paddle, faster ball
  fixed  - no speed ramp-up during a run

Examples:
  blockade play
  blockade play endless
  blockade play --difficulty hard
  blockade play --level 3
  blockade play --config ./my-blockade.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at a specific level (1-based)")
}

// modeIDFromArgs maps the optional positional argument to a mode ID.
func modeIDFromArgs(args []string) (string, bool) {
	if len(args) == 0 {
		return "blockade", true
	}
	switch args[0] {
	case "campaign", "blockade":
		return "blockade", true
	case "endless", "blockade_endless":
		return "blockade_endless", true
	}
	return "", false
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID, ok := modeIDFromArgs(args)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want \"campaign\" or \"endless\")\n", args[0])
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	game.SetStartLevel(flagLevel)

	// Without explicit flags, offer the setup screen.
	if flagDifficulty == "" && flagLevel == 0 {
		selection, selErr := tui.RunSetup(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if selection == nil {
			return // back or quit
		}
		game.SetDifficultyPreset(string(selection.Preset))
		game.SetStartLevel(selection.Level)
	}

	g, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
