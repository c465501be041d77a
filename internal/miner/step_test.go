package miner

import (
	"testing"

	"github.com/madminer-game/madminer/internal/core"
)

// script produces the same input frame for any identically seeded run.
func script(i int) core.Input {
	var in core.Input
	if i == 30 {
		in.Fire = true
	}
	if i > 120 {
		switch (i / 60) % 3 {
		case 0:
			in.Move = core.Vec2{Y: 1}
		case 1:
			in.Move = core.Vec2{X: 1, Y: 0.5}
		default:
			in.Move = core.Vec2{X: -1}
		}
	}
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 1200; i++ {
		g1.Step(script(i))
		g2.Step(script(i))
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Mode != s2.Mode {
		t.Errorf("Run summary diverged: score %d/%d mode %s/%s", s1.Score, s2.Score, s1.Mode, s2.Mode)
	}
	if s1.Player.Pos != s2.Player.Pos || s1.Player.Depth != s2.Player.Depth {
		t.Errorf("Player diverged: %+v vs %+v", s1.Player, s2.Player)
	}
	if s1.Resources != s2.Resources {
		t.Errorf("Resources diverged: %+v vs %+v", s1.Resources, s2.Resources)
	}
	if s1.LavaLevel != s2.LavaLevel {
		t.Errorf("Lava diverged: %f vs %f", s1.LavaLevel, s2.LavaLevel)
	}
	for i := range g1.tiles.Cells {
		if g1.tiles.Cells[i] != g2.tiles.Cells[i] {
			t.Fatalf("Terrain diverged at cell %d", i)
		}
	}
}

func TestGaugeBoundsHold(t *testing.T) {
	g := newTestGame(777)
	for i := 0; i < 2000; i++ {
		g.Step(script(i))
		r := g.res
		if r.Fuel < 0 || r.Fuel > 100 || r.O2 < 0 || r.O2 > 100 || r.Heat < 0 || r.Heat > 100 {
			t.Fatalf("Gauge out of bounds at tick %d: %+v", i, r)
		}
		if r.Gold < 0 {
			t.Fatalf("Gold went negative at tick %d", i)
		}
	}
}

func TestDepthNeverDecreases(t *testing.T) {
	g := newTestGame(55)
	g.mode = ModeDig
	g.time = 1 // clear of the run-start event window

	prev := g.player.Depth
	for i := 0; i < 900; i++ {
		dir := core.Vec2{Y: 1}
		if i%120 >= 60 {
			dir = core.Vec2{Y: -1} // climb back up
		}
		g.Step(core.Input{Move: dir})
		if g.player.Depth < prev {
			t.Fatalf("Depth decreased at tick %d: %f -> %f", i, prev, g.player.Depth)
		}
		prev = g.player.Depth
	}
	if g.player.Depth <= g.rt.Height*0.2 {
		t.Error("Downward digging should extend the depth high-water mark")
	}
}

func TestLavaNeverRecedes(t *testing.T) {
	g := newTestGame(66)
	g.mode = ModeDig

	prev := g.tiles.LavaLevel
	for i := 0; i < 1200; i++ {
		g.Step(core.Input{})
		if g.tiles.LavaLevel > prev {
			t.Fatalf("Lava level receded at tick %d", i)
		}
		prev = g.tiles.LavaLevel
	}
	if g.tiles.LavaLevel >= float64(g.tiles.H) {
		t.Error("Lava should have begun rising over 20 seconds")
	}
}

func TestRunEndsAtTimeLimit(t *testing.T) {
	g := newTestGame(88)
	g.runDuration = 0.5

	var st Status
	for i := 0; i < 120; i++ {
		st = g.Step(core.Input{})
		if st.GameOver {
			break
		}
	}
	if !st.GameOver {
		t.Fatal("Run should end once the duration elapses")
	}
	if !st.Paused {
		t.Error("Game over freezes the run")
	}

	// Further ticks must not advance anything.
	tick := g.tick
	g.Step(core.Input{Move: core.Vec2{Y: 1}})
	if g.tick != tick {
		t.Error("Steps after game over must not advance the simulation")
	}
}

func TestDeathUpdatesHighScore(t *testing.T) {
	g := newTestGame(99)
	g.mode = ModeDig
	g.res.Gold = 42
	g.res.O2 = 0.001

	for i := 0; i < 10 && g.mode != ModeGameOver; i++ {
		g.Step(core.Input{})
	}
	if g.mode != ModeGameOver {
		t.Fatal("Oxygen starvation should end the run")
	}
	if g.highScore < 42 {
		t.Errorf("High score should absorb the final score, got %d", g.highScore)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(111)

	st := g.Step(core.Input{Pause: true})
	if !st.Paused || st.Mode != ModePause {
		t.Fatalf("Pause input should pause: %+v", st)
	}

	tick := g.tick
	g.Step(core.Input{Move: core.Vec2{Y: 1}})
	if g.tick != tick {
		t.Error("Paused steps must not advance time")
	}

	// The resuming step itself runs a full tick.
	st = g.Step(core.Input{Pause: true})
	if st.Paused {
		t.Error("A second pause input should resume")
	}
	if g.tick != tick+1 {
		t.Error("Resumed steps should advance time again")
	}
}

func TestPuzzleTriggersOnSchedule(t *testing.T) {
	g := newTestGame(222)
	g.mode = ModeDig
	g.time = 1 // clear of the run-start event window
	g.nextPuzzle = g.time + 0.1

	for i := 0; i < 30 && g.mode != ModePuzzle; i++ {
		g.Step(core.Input{})
	}
	if g.mode != ModePuzzle {
		t.Fatal("The puzzle should open when its deadline passes")
	}
	if g.nextPuzzle <= g.time {
		t.Error("Opening the puzzle must re-arm the next deadline")
	}

	st := g.Step(core.Input{StrokeDone: true})
	if st.Mode != ModeShop {
		t.Errorf("Completing the stroke should open the shop, got %s", st.Mode)
	}
}

func TestResetKeepsProgress(t *testing.T) {
	g := newTestGame(333)
	g.res.Gold = 500
	g.Purchase(UpgradeDigSpeed)
	g.highScore = 77
	rec := g.Upgrades()

	rt := g.rt
	g.Reset(rt)

	if g.HighScore() != 77 {
		t.Errorf("Reset must keep the high score, got %d", g.HighScore())
	}
	if g.Upgrades() != rec || rec.DigSpeed != 1 {
		t.Error("Reset must keep the shared upgrade record")
	}
	if g.res.Gold != 0 || g.mode != ModeHook || g.time != 0 {
		t.Error("Reset must rebuild the run state")
	}
	if len(g.ores) != 6 {
		t.Errorf("A fresh run starts with 6 ores, got %d", len(g.ores))
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(444)
	snap := g.Snapshot()
	if len(snap.Ores) != len(g.ores) {
		t.Fatalf("Snapshot should list all ores")
	}

	snap.Ores[0].Pos.X = -999
	if g.ores[0].Pos.X == -999 {
		t.Error("Mutating a snapshot must not touch the live state")
	}
}
