package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  snake.DefaultWidth,
			Height: snake.DefaultHeight,
		},
		TickMS: 150,
		Food: FoodConfig{
			Reward: snake.DefaultReward,
			Policy: string(snake.PolicyStrict),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
