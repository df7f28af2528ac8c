// snake is a terminal Snake game.
//
// Usage:
//
//	snake play [variant]     - Play a variant, or pick one from a menu
//	snake list               - List available variants
//	snake replay <script>    - Run a scripted round headless and print the result
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.snake/configs, ./configs)
//	--tick <ms>        - Override the tick interval in milliseconds
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file (default: discarded)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagTickMS   int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game: steer the snake,
eat the food and avoid the walls and your own tail.

Available commands:
  play     - Play a variant
  list     - Show all available variants
  replay   - Run a scripted round without a terminal

Examples:
  snake play
  snake play snake_classic --tick 100
  snake replay ./round.yaml --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Tick interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger opens the log destination. The returned closer must be called
// once the command finishes.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the config file and applies the --tick override.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagTickMS != 0 {
		cfg.TickMS = flagTickMS
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("--tick: %w", err)
		}
	}

	logger.Info("config loaded", "source", source,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tick", cfg.TickInterval(),
		"policy", cfg.Food.Policy)
	return cfg, nil
}
