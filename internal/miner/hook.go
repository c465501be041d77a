package miner

import (
	"math"

	"github.com/madminer-game/madminer/internal/core"
)

const (
	swingLimit      = math.Pi / 2.2
	idleHeadOffset  = 10.0
	firedRopeLen    = 10.0
	extendSpeed     = 200.0 // units per second
	returnSpeedBase = 250.0
	hitPadding      = 6.0 // added to ore radius for the hit test
	collectDistance = 8.0
)

// fireHook launches the grapple. It is a no-op outside HOOK mode or
// while a shot is in flight.
func (g *Game) fireHook() {
	if g.mode != ModeHook || g.hook.Fired {
		return
	}
	g.hook.Fired = true
	g.hook.Returning = false
	g.hook.RopeLen = firedRopeLen
}

// updateHook advances the grapple state machine:
// idle-rotate -> fired-extending -> returning -> collected.
// Inert outside HOOK mode.
func (g *Game) updateHook(dt float64) {
	if g.mode != ModeHook {
		return
	}
	h := &g.hook
	p := &g.player

	// Bounded pendulum while idle.
	if !h.Fired && h.Rotating {
		h.Angle += h.Speed * dt
		if h.Angle > swingLimit {
			h.Speed = -math.Abs(h.Speed)
		}
		if h.Angle < -swingLimit {
			h.Speed = math.Abs(h.Speed)
		}
		h.Head.X = p.Pos.X + math.Cos(h.Angle)*idleHeadOffset
		h.Head.Y = p.Pos.Y + math.Sin(h.Angle)*idleHeadOffset
	}

	if !h.Fired {
		return
	}

	h.RopeLen += extendSpeed * dt
	h.Head.X = p.Pos.X + math.Cos(h.Angle)*h.RopeLen
	h.Head.Y = p.Pos.Y + math.Sin(h.Angle)*h.RopeLen

	// Leaving the viewport forces the return leg.
	if h.Head.X < 0 || h.Head.X > g.rt.Width || h.Head.Y < 0 || h.Head.Y > g.rt.Height {
		h.Returning = true
	}

	// First ore the head touches becomes the target and forces return.
	if h.TargetID == 0 {
		if hit := g.hitOre(h.Head); hit != nil {
			h.TargetID = hit.ID
			h.Returning = true
		}
	}

	if !h.Returning {
		return
	}

	dx := p.Pos.X - h.Head.X
	dy := p.Pos.Y - h.Head.Y
	dist := math.Hypot(dx, dy)
	retSpeed := returnSpeedBase * (1 + float64(g.upgrades.HookPower)*0.15)
	step := math.Min(retSpeed*dt, dist)
	div := dist
	if div == 0 {
		div = 1
	}
	h.Head.X += dx / div * step
	h.Head.Y += dy / div * step
	h.RopeLen = math.Max(0, h.RopeLen-step)

	// The target is reeled in: snapped to the head each tick.
	if target := g.oreByID(h.TargetID); target != nil {
		target.Pos = h.Head
	}

	if dist < collectDistance {
		g.collectHook()
	}
}

// collectHook credits the attached ore, resets the grapple to its idle
// invariant (fired=false, ropeLen=0, no target) and hands the run over
// to digging.
func (g *Game) collectHook() {
	h := &g.hook
	if target := g.oreByID(h.TargetID); target != nil {
		g.res.Gold += math.Floor(target.Value * g.priceMul())
		g.removeOre(target.ID)
	}
	h.Fired = false
	h.Returning = false
	h.TargetID = 0
	h.RopeLen = 0
	g.mode = ModeDig
}

// hitOre returns the first ore whose padded radius contains the point.
func (g *Game) hitOre(pt core.Vec2) *Ore {
	for i := range g.ores {
		if core.Dist(g.ores[i].Pos, pt) < g.ores[i].Radius+hitPadding {
			return &g.ores[i]
		}
	}
	return nil
}
