package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without a variant a menu lets you pick one, starting on
the variant that matches the configured food policy.

Controls:
  Arrows/WASD/HJKL  - Steer
  P                 - Pause
  Enter/R           - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play snake_classic
  snake play snake --config ./my-snake.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the variant menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
			os.Exit(1)
		}
	} else {
		policy, _ := cfg.FoodPolicy()
		gameID, err = tui.RunVariantMenu(width, height, snake.IDForPolicy(policy))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User quit the menu
		if gameID == "" {
			return
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	rc.Seed = flagSeed
	rc = cfg.Runtime(rc)

	if err := tui.Run(game, rc, logger); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
