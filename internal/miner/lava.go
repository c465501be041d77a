package miner

import "math"

const (
	lavaBaseRate     = 0.02
	lavaProgressRate = 0.05
	lavaHeatRange    = 8.0
	lavaHeatPerRow   = 0.6
)

// updateLava raises the lava floor. The rise accelerates linearly over
// the course of the run.
func (g *Game) updateLava(dt float64) {
	progress := (g.time - g.runStart) / g.runDuration
	g.tiles.RiseLava((lavaBaseRate + progress*lavaProgressRate) * dt)
}

// lavaProximityHeat returns the extra heat per second from standing
// close to the lava line. Zero outside the danger band.
func (g *Game) lavaProximityHeat() float64 {
	row := math.Floor(g.player.Pos.Y / g.rt.Tile)
	dist := g.tiles.LavaLevel - row
	if dist >= lavaHeatRange {
		return 0
	}
	return (lavaHeatRange - dist) * lavaHeatPerRow
}
