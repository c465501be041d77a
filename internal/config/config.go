// Package config provides YAML-based tuning for the miner simulation.
package config

// Config contains all tunable parameters for a run. Values the tests
// pin as exact game constants live in the miner package; this file
// carries the knobs a deployment may reasonably adjust.
type Config struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	Run       RunConfig       `yaml:"run"`
	Events    EventConfig     `yaml:"events"`
	Resources ResourcesConfig `yaml:"resources"`
}

// ViewportConfig defines the simulation viewport in world units.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Tile   float64 `yaml:"tile"`
}

// RunConfig defines run-level timing.
type RunConfig struct {
	DurationSeconds       float64 `yaml:"duration_seconds"`
	PuzzleIntervalSeconds float64 `yaml:"puzzle_interval_seconds"`
}

// EventConfig defines the random-event scheduler. The trigger window is
// deliberately a tunable: the firing condition samples elapsed time
// modulo the period, and the window width decides how many ticks per
// period can start an event.
type EventConfig struct {
	PeriodSeconds       float64 `yaml:"period_seconds"`
	TriggerWindowMillis float64 `yaml:"trigger_window_millis"`
}

// ResourcesConfig defines the starting gauge values.
type ResourcesConfig struct {
	Fuel float64 `yaml:"fuel"`
	O2   float64 `yaml:"o2"`
}
