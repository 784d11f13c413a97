package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names tried in each config directory, in order.
var configNames = []string{"breakout.yaml", "breakout.yml", "breakout.toml"}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.{yaml,toml} ->
// ./configs/breakout.{yaml,toml} -> embedded default.
// Files only need to name the settings they change; the rest keep their
// default values.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return BreakoutConfig{}, err
		}
		if err := cfg.Validate(); err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files fall through to the next candidate.
	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decode("breakout.yaml", defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the defaults, picking the format from the
// file extension.
func decode(path string, data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// searchDirs returns the implicit config directories, most specific first.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".breakout", "configs"))
	}
	return append(dirs, "configs")
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 150
		cfg.Ball.VelocityX *= 0.85
		cfg.Ball.VelocityY *= 0.85
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.VelocityX *= 1.2
		cfg.Ball.VelocityY *= 1.2
	}
}
