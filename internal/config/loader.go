package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the miner configuration.
// Search order: customPath -> ~/.madminer/config.yaml -> ./configs/madminer.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.fillZero()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.fillZero()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/madminer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.fillZero()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.fillZero()
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".madminer", filename)
}

// fillZero substitutes defaults for fields a partial file left unset.
func (c *Config) fillZero() {
	def := Default()
	if c.Viewport.Width <= 0 {
		c.Viewport.Width = def.Viewport.Width
	}
	if c.Viewport.Height <= 0 {
		c.Viewport.Height = def.Viewport.Height
	}
	if c.Viewport.Tile <= 0 {
		c.Viewport.Tile = def.Viewport.Tile
	}
	if c.Run.DurationSeconds <= 0 {
		c.Run.DurationSeconds = def.Run.DurationSeconds
	}
	if c.Run.PuzzleIntervalSeconds <= 0 {
		c.Run.PuzzleIntervalSeconds = def.Run.PuzzleIntervalSeconds
	}
	if c.Events.PeriodSeconds <= 0 {
		c.Events.PeriodSeconds = def.Events.PeriodSeconds
	}
	if c.Events.TriggerWindowMillis <= 0 {
		c.Events.TriggerWindowMillis = def.Events.TriggerWindowMillis
	}
	if c.Resources.Fuel <= 0 {
		c.Resources.Fuel = def.Resources.Fuel
	}
	if c.Resources.O2 <= 0 {
		c.Resources.O2 = def.Resources.O2
	}
}
