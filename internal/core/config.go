package core

// RuntimeConfig contains configuration passed to the simulation at run
// start. The viewport is measured in world units, not terminal cells;
// the platform layer owns the mapping between the two.
type RuntimeConfig struct {
	Width    float64 // Viewport width in world units
	Height   float64 // Viewport height in world units
	Tile     float64 // Terrain cell edge length in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic runs
}

// DefaultRuntime returns a RuntimeConfig with sensible defaults.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		Width:    320,
		Height:   480,
		Tile:     12,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed simulation timestep in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
