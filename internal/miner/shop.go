package miner

import "math"

// UpgradeKey selects one of the three persistent upgrade tracks.
type UpgradeKey int

const (
	UpgradeFuelEff UpgradeKey = iota
	UpgradeHookPower
	UpgradeDigSpeed
)

func (k UpgradeKey) String() string {
	switch k {
	case UpgradeFuelEff:
		return "fuel efficiency"
	case UpgradeHookPower:
		return "hook power"
	case UpgradeDigSpeed:
		return "dig speed"
	default:
		return "unknown"
	}
}

const costGrowth = 1.6

func baseCost(k UpgradeKey) int {
	switch k {
	case UpgradeFuelEff:
		return 30
	case UpgradeHookPower:
		return 40
	default:
		return 50
	}
}

// Cost returns the gold price of buying the given upgrade at a level.
func Cost(k UpgradeKey, level int) int {
	return int(math.Floor(float64(baseCost(k)) * math.Pow(costGrowth, float64(level))))
}

// CostNext returns the price of the next level of an upgrade track.
func (g *Game) CostNext(k UpgradeKey) int {
	return Cost(k, g.upgradeLevel(k))
}

func (g *Game) upgradeLevel(k UpgradeKey) int {
	switch k {
	case UpgradeFuelEff:
		return g.upgrades.FuelEff
	case UpgradeHookPower:
		return g.upgrades.HookPower
	default:
		return g.upgrades.DigSpeed
	}
}

// Purchase spends run gold on one level of an upgrade. Returns false
// without side effects when the player cannot afford it.
func (g *Game) Purchase(k UpgradeKey) bool {
	cost := g.CostNext(k)
	if g.res.Gold < float64(cost) {
		return false
	}
	g.res.Gold -= float64(cost)
	switch k {
	case UpgradeFuelEff:
		g.upgrades.FuelEff++
	case UpgradeHookPower:
		g.upgrades.HookPower++
	default:
		g.upgrades.DigSpeed++
	}
	return true
}

// CloseShop resumes digging. No-op outside SHOP mode.
func (g *Game) CloseShop() {
	if g.mode == ModeShop {
		g.mode = ModeDig
	}
}
