package miner

import (
	"math"

	"github.com/madminer-game/madminer/internal/core"
)

const (
	strokeSampleSpacing = 4.0 // world units between carve samples
	strokeDigRadius     = 1.0
)

// applyStroke converts a drawn polyline into a carved channel. Each
// segment is resampled at roughly 4-unit spacing and every sample digs
// a radius-1 hole, the same probe offset as drill digging. Strokes with
// fewer than two points carve nothing. Either way the puzzle resolves
// into the shop.
func (g *Game) applyStroke(points []core.Vec2) {
	if g.mode != ModePuzzle {
		return
	}
	if len(points) > 1 {
		for i := 1; i < len(points); i++ {
			a := points[i-1]
			b := points[i]
			steps := core.Max(2, int(math.Floor(core.Dist(a, b)/strokeSampleSpacing)))
			for k := 0; k <= steps; k++ {
				t := float64(k) / float64(steps)
				x := a.X + (b.X-a.X)*t
				y := a.Y + (b.Y-a.Y)*t
				g.tiles.DigAt(math.Floor(x/g.rt.Tile), math.Floor((y+digProbeOffset)/g.rt.Tile), strokeDigRadius)
			}
		}
	}
	g.mode = ModeShop
}
