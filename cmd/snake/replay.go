package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a scripted round without a terminal",
	Long: `Plays a seeded round from a script and prints the final state as YAML.

Script format:
  seed: 42          # RNG seed (--seed overrides it)
  ticks: 60         # number of ticks to run
  policy: classic   # optional, defaults to the configured policy
  inputs:           # applied just before the given 1-based tick
    - {tick: 3, input: up}
    - {tick: 9, input: left}
    - {tick: 30, input: restart}

Grid size and reward come from the config unless the script sets width,
height or reward.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	applyDefaults(&script, cfg)
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}

	res, err := replay.Run(script)
	if err != nil {
		return err
	}
	logger.Info("replay finished",
		"round", res.Round,
		"ticks", res.Tick,
		"status", res.Status,
		"score", res.Score)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("replay: encode result: %w", err)
	}
	return enc.Close()
}

// applyDefaults fills board settings the script leaves out from cfg.
func applyDefaults(s *replay.Script, cfg config.SnakeConfig) {
	if s.Width == 0 {
		s.Width = cfg.Grid.Width
	}
	if s.Height == 0 {
		s.Height = cfg.Grid.Height
	}
	if s.Reward == 0 {
		s.Reward = cfg.Food.Reward
	}
	if s.Policy == "" {
		s.Policy = cfg.Food.Policy
	}
}
