// Package config provides YAML-based configuration loading for the snake
// game with environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig `yaml:"grid"`
	TickMS int        `yaml:"tick_ms" env:"SNAKE_TICK_MS"`
	Food   FoodConfig `yaml:"food"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width" env:"SNAKE_GRID_WIDTH"`
	Height int `yaml:"height" env:"SNAKE_GRID_HEIGHT"`
}

// FoodConfig defines scoring and food placement.
type FoodConfig struct {
	Reward int    `yaml:"reward" env:"SNAKE_FOOD_REWARD"`
	Policy string `yaml:"policy" env:"SNAKE_FOOD_POLICY"` // "strict" or "classic"
}

// TickInterval returns the configured time between ticks.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// FoodPolicy returns the parsed food policy.
func (c SnakeConfig) FoodPolicy() (snake.FoodPolicy, error) {
	return snake.ParseFoodPolicy(c.Food.Policy)
}

// Validate checks that every value is usable.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < snake.MinWidth || c.Grid.Height < snake.MinHeight {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height, snake.MinWidth, snake.MinHeight)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.TickMS)
	}
	if c.Food.Reward <= 0 {
		return fmt.Errorf("%w: food reward must be positive, got %d", ErrInvalidConfig, c.Food.Reward)
	}
	if _, err := c.FoodPolicy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Runtime copies the board settings into rc.
func (c SnakeConfig) Runtime(rc core.RuntimeConfig) core.RuntimeConfig {
	rc.GridW = c.Grid.Width
	rc.GridH = c.Grid.Height
	rc.FoodReward = c.Food.Reward
	rc.TickInterval = c.TickInterval()
	return rc
}
