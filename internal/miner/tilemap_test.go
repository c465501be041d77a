package miner

import (
	"testing"

	"github.com/madminer-game/madminer/internal/rng"
)

func countCells(m *TileMap, kind Cell) int {
	n := 0
	for _, c := range m.Cells {
		if c == kind {
			n++
		}
	}
	return n
}

func TestGenerateKeepsSurfaceOpen(t *testing.T) {
	m := NewTileMap(20, 50)
	m.Generate(rng.New(7))

	for y := 0; y < surfaceRows; y++ {
		for x := 0; x < m.W; x++ {
			if m.Tile(x, y) != CellAir {
				t.Errorf("Surface cell (%d,%d) should be air, got %d", x, y, m.Tile(x, y))
			}
		}
	}
}

func TestGenerateKnownCells(t *testing.T) {
	// Seed 1 produces the raw sequence 48271, 182605794, 1291394886,
	// so the first three uniforms are ~0.0000225, ~0.0850, ~0.6013.
	// At row 6 of a 20x50 grid the gold threshold is 0.0576: the first
	// cell is gold, the next two plain rock.
	m := NewTileMap(20, 50)
	m.Generate(rng.New(1))

	if got := m.Tile(0, 6); got != CellGold {
		t.Errorf("Cell (0,6) should be gold, got %d", got)
	}
	if got := m.Tile(1, 6); got != CellRock {
		t.Errorf("Cell (1,6) should be rock, got %d", got)
	}
	if got := m.Tile(2, 6); got != CellRock {
		t.Errorf("Cell (2,6) should be rock, got %d", got)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	m1 := NewTileMap(20, 50)
	m1.Generate(rng.New(99))
	m2 := NewTileMap(20, 50)
	m2.Generate(rng.New(99))

	for i := range m1.Cells {
		if m1.Cells[i] != m2.Cells[i] {
			t.Fatalf("Cell %d differs between identically seeded maps", i)
		}
	}
}

func TestDigIdempotence(t *testing.T) {
	m := NewTileMap(20, 50)
	m.Generate(rng.New(5))

	dug1, _ := m.DigAt(10, 20, 2)
	if dug1 == 0 {
		t.Fatal("First dig should clear at least one cell")
	}
	dug2, gold2 := m.DigAt(10, 20, 2)
	if dug2 != 0 || gold2 != 0 {
		t.Errorf("Second dig at same spot should be a no-op, got dug=%d gold=%d", dug2, gold2)
	}
}

func TestDigAwardsGoldPerCell(t *testing.T) {
	m := NewTileMap(20, 50)
	m.setTile(10, 20, CellGold)
	m.setTile(10, 21, CellGold)

	_, gold := m.DigAt(10.5, 20.5, 1)
	if gold != 2*goldPerCell {
		t.Errorf("Expected %d gold from two gold cells, got %d", 2*goldPerCell, gold)
	}
}

func TestDigSkipsLava(t *testing.T) {
	m := NewTileMap(20, 50)
	m.setTile(10, 20, CellLava)

	before := countCells(m, CellLava)
	m.DigAt(10.5, 20.5, 1)
	if countCells(m, CellLava) != before {
		t.Error("Digging must not clear lava cells")
	}
}

func TestDigOutOfBoundsSafe(t *testing.T) {
	m := NewTileMap(20, 50)
	// Corner digs reach outside the grid; reads come back as rock and
	// writes are dropped, so this must neither panic nor wrap.
	m.DigAt(0, 0, 3)
	m.DigAt(19, 49, 3)
	if m.Tile(-1, 0) != CellRock || m.Tile(0, 50) != CellRock {
		t.Error("Out-of-bounds reads should return rock")
	}
}

func TestRiseLavaForcesRows(t *testing.T) {
	m := NewTileMap(10, 20)
	m.Generate(rng.New(3))

	m.RiseLava(2.5)
	if m.LavaLevel != 17.5 {
		t.Errorf("LavaLevel should be 17.5, got %f", m.LavaLevel)
	}
	for y := 18; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.Tile(x, y) != CellLava {
				t.Errorf("Cell (%d,%d) below lava level should be lava", x, y)
			}
		}
	}

	prev := m.LavaLevel
	m.RiseLava(1)
	if m.LavaLevel >= prev {
		t.Error("LavaLevel must decrease on every rise")
	}

	m.RiseLava(1000)
	if m.LavaLevel != 0 {
		t.Errorf("LavaLevel floors at 0, got %f", m.LavaLevel)
	}
	if countCells(m, CellLava) != m.W*m.H {
		t.Error("Fully risen lava should cover the whole map")
	}
}

func TestApplyQuakeOpensShafts(t *testing.T) {
	m := NewTileMap(26, 100)
	airBefore := countCells(m, CellAir)

	m.ApplyQuake(rng.New(11))
	airAfter := countCells(m, CellAir)
	if airAfter <= airBefore {
		t.Error("Quake should open air shafts")
	}

	// Shafts stay off the outer columns.
	for y := 0; y < m.H; y++ {
		if m.Tile(0, y) == CellAir || m.Tile(m.W-1, y) == CellAir {
			t.Fatal("Quake shafts must not touch the boundary columns")
		}
	}
}
