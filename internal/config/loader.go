package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const fileName = "snake.yaml"

// Source names reported by Load when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceDefaults = "defaults"
)

// Load loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/configs/snake.yaml ->
// ./configs/snake.yaml -> embedded default -> hardcoded defaults.
// SNAKE_* environment variables override the result.
func Load(customPath string) (SnakeConfig, string, error) {
	cfg, source, err := loadFile(customPath)
	if err != nil {
		return cfg, source, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, source, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, source, nil
}

func loadFile(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, customPath, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SnakeConfig{}, customPath, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultSnakeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultSnakeConfig(), SourceDefaults, nil
}

// parse decodes YAML on top of the defaults so omitted keys keep them.
func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", fileName)
}
