package tui

import (
	"fmt"

	"github.com/madminer-game/madminer/internal/core"
	"github.com/madminer-game/madminer/internal/miner"
)

var shopItems = []struct {
	key   miner.UpgradeKey
	title string
	desc  string
}{
	{miner.UpgradeFuelEff, "Fuel Efficiency", "burn less fuel"},
	{miner.UpgradeHookPower, "Hook Power", "faster hook return"},
	{miner.UpgradeDigSpeed, "Dig Speed", "move and dig faster"},
}

// drawShop renders the upgrade shop panel into the screen buffer.
func (r Renderer) drawShop(s *core.Screen, g *miner.Game, snap miner.Snapshot) {
	top := hudRows + 1
	up := g.Upgrades()
	levels := []int{up.FuelEff, up.HookPower, up.DigSpeed}

	s.DrawTextCentered(top, "====== SHOP ======")
	s.DrawTextCentered(top+1, fmt.Sprintf("gold: %d", int(snap.Resources.Gold)))

	for i, item := range shopItems {
		cost := g.CostNext(item.key)
		mark := " "
		if float64(cost) > snap.Resources.Gold {
			mark = "x"
		}
		line := fmt.Sprintf("%d) %-16s lv%-2d %4dg %s (%s)",
			i+1, item.title, levels[i], cost, mark, item.desc)
		s.DrawTextCentered(top+3+i, line)
	}
	s.DrawTextCentered(top+7, "1/2/3: buy   b: back to digging")
}
