package miner

import "testing"

func TestCostProgression(t *testing.T) {
	if c := Cost(UpgradeHookPower, 0); c != 40 {
		t.Errorf("Hook power at level 0 should cost 40, got %d", c)
	}
	if c := Cost(UpgradeHookPower, 1); c != 64 {
		t.Errorf("Hook power at level 1 should cost 64, got %d", c)
	}
	if c := Cost(UpgradeFuelEff, 0); c != 30 {
		t.Errorf("Fuel efficiency at level 0 should cost 30, got %d", c)
	}
	if c := Cost(UpgradeDigSpeed, 0); c != 50 {
		t.Errorf("Dig speed at level 0 should cost 50, got %d", c)
	}
}

func TestPurchaseSpendsGoldAndLevels(t *testing.T) {
	g := newTestGame(1)
	g.res.Gold = 100

	if !g.Purchase(UpgradeHookPower) {
		t.Fatal("Purchase with enough gold should succeed")
	}
	if g.upgrades.HookPower != 1 {
		t.Errorf("Level should be 1 after purchase, got %d", g.upgrades.HookPower)
	}
	if g.res.Gold != 60 {
		t.Errorf("Gold should be 60 after paying 40, got %f", g.res.Gold)
	}
	if c := g.CostNext(UpgradeHookPower); c != 64 {
		t.Errorf("Next level should cost 64, got %d", c)
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	g := newTestGame(2)
	g.res.Gold = 10

	if g.Purchase(UpgradeDigSpeed) {
		t.Fatal("Purchase without enough gold should fail")
	}
	if g.upgrades.DigSpeed != 0 || g.res.Gold != 10 {
		t.Error("A failed purchase must leave level and gold untouched")
	}
}

func TestCloseShopResumesDigging(t *testing.T) {
	g := newTestGame(3)
	g.mode = ModeShop

	g.CloseShop()
	if g.mode != ModeDig {
		t.Errorf("Closing the shop should resume DIG, got %s", g.mode)
	}

	g.mode = ModeHook
	g.CloseShop()
	if g.mode != ModeHook {
		t.Error("CloseShop outside SHOP mode must be a no-op")
	}
}

func TestPurchasesShareSaveRecord(t *testing.T) {
	g := newTestGame(4)
	g.res.Gold = 1000
	rec := g.Upgrades()

	g.Purchase(UpgradeFuelEff)
	g.Purchase(UpgradeFuelEff)

	if rec.FuelEff != 2 {
		t.Errorf("Purchases should write through the shared record, got %d", rec.FuelEff)
	}
}
