package miner

import (
	"math"

	"github.com/madminer-game/madminer/internal/core"
)

const (
	fuelUseDigging = 8.0
	fuelUseIdle    = 2.0
	o2Use          = 3.0
	heatGainDig    = 7.0
	heatGainIdle   = 2.0
	maxHeat        = 100.0
)

// updateResources drains fuel and o2 and accumulates heat. The burn
// rate depends on whether the drill is actually cutting this tick, not
// merely on the current mode.
func (g *Game) updateResources(dt float64, digging bool) {
	fuelRate := fuelUseIdle
	heatRate := heatGainIdle
	if digging {
		fuelRate = fuelUseDigging
		heatRate = heatGainDig
	}

	// Fuel efficiency caps out at half consumption; event slowdowns
	// make every unit of progress cost proportionally more fuel.
	eff := 1 - math.Min(0.5, float64(g.upgrades.FuelEff)*0.1)
	fuelRate *= eff * (1 / math.Max(0.5, g.digMul()))

	g.res.Fuel = core.ClampF(g.res.Fuel-fuelRate*dt, 0, g.baseRes.Fuel)
	g.res.O2 = core.ClampF(g.res.O2-o2Use*dt, 0, g.baseRes.O2)
	g.res.Heat = core.ClampF(g.res.Heat+heatRate*g.heatMul()*dt, 0, maxHeat)
}
