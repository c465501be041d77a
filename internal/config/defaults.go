package config

import (
	_ "embed"
)

//go:embed defaults/madminer.yaml
var defaultYAML []byte

// Default returns the default miner configuration.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{
			Width:  320,
			Height: 480,
			Tile:   12,
		},
		Run: RunConfig{
			DurationSeconds:       90,
			PuzzleIntervalSeconds: 30,
		},
		Events: EventConfig{
			PeriodSeconds:       10,
			TriggerWindowMillis: 50,
		},
		Resources: ResourcesConfig{
			Fuel: 100,
			O2:   100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
