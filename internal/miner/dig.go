package miner

import (
	"math"

	"github.com/madminer-game/madminer/internal/core"
)

const (
	digBaseSpeed    = 60.0
	digClampMargin  = 8.0
	movingThreshold = 0.2
	digRadius       = 2.0
	// Vertical probe offset so the drill bites the tile under the feet.
	digProbeOffset = 2.0
)

// updateDigging moves the player through the mine and carves tiles on
// the way. Movement speed scales with the drill upgrade and the active
// event multiplier. Returns the gold freed this tick.
func (g *Game) updateDigging(dt float64, move core.Vec2) int {
	if g.mode != ModeDig {
		return 0
	}
	p := &g.player

	speed := digBaseSpeed * (1 + float64(g.upgrades.DigSpeed)*0.2) * g.digMul()
	dir := move.Norm()
	p.Pos.X = core.ClampF(p.Pos.X+dir.X*speed*dt, digClampMargin, g.rt.Width-digClampMargin)
	p.Pos.Y = core.ClampF(p.Pos.Y+dir.Y*speed*dt, digClampMargin, g.rt.Height-digClampMargin)

	p.Depth = math.Max(p.Depth, p.Pos.Y)

	if move.Len() <= movingThreshold {
		return 0
	}
	cx := math.Floor(p.Pos.X / g.rt.Tile)
	cy := math.Floor((p.Pos.Y + digProbeOffset) / g.rt.Tile)
	_, gold := g.tiles.DigAt(cx, cy, digRadius)
	if gold > 0 {
		g.res.Gold += float64(gold)
	}
	return gold
}
