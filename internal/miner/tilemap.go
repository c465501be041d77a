package miner

import (
	"math"

	"github.com/madminer-game/madminer/internal/core"
	"github.com/madminer-game/madminer/internal/rng"
)

// Cell is a terrain cell kind.
type Cell uint8

const (
	CellAir Cell = iota
	CellRock
	CellGold
	CellLava
)

// Gold awarded per gold cell cleared by digging.
const goldPerCell = 5

// Terrain kept open at the top of the map (the starting shaft).
const surfaceRows = 6

// TileMap is the mutable terrain grid plus the lava level. The grid is
// row-major; reads outside the bounds return rock and writes outside
// the bounds are dropped, so the terrain is implicitly walled.
type TileMap struct {
	W, H  int
	Cells []Cell
	// LavaLevel is the row index above which lava has not yet risen.
	// It only ever decreases; rows at or below it are lava.
	LavaLevel float64
}

// NewTileMap creates a solid-rock map with the lava parked below the
// bottom row.
func NewTileMap(w, h int) *TileMap {
	m := &TileMap{W: w, H: h, Cells: make([]Cell, w*h), LavaLevel: float64(h)}
	for i := range m.Cells {
		m.Cells[i] = CellRock
	}
	return m
}

// Tile returns the cell at (x, y), or rock when out of bounds.
func (m *TileMap) Tile(x, y int) Cell {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return CellRock
	}
	return m.Cells[y*m.W+x]
}

// setTile writes the cell at (x, y). Out-of-bounds writes are no-ops.
func (m *TileMap) setTile(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Cells[y*m.W+x] = c
}

// seedSurface opens the starting shaft and scatters near-surface gold.
// Generate overwrites everything below the shaft afterwards; the pass
// exists so the draw sequence matches run setup exactly.
func (m *TileMap) seedSurface(r *rng.LCG) {
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if y < surfaceRows {
				m.Cells[y*m.W+x] = CellAir
			}
			if r.Float() < math.Max(0, 0.05-float64(y)*0.0005) {
				m.Cells[y*m.W+x] = CellGold
			}
		}
	}
}

// Generate synthesizes the cave terrain: one uniform sample per cell
// below the surface shaft. Gold probability decays linearly with depth;
// high samples open air pockets; everything else is rock. Called once
// per run, never persisted.
func (m *TileMap) Generate(r *rng.LCG) {
	for y := surfaceRows; y < m.H; y++ {
		depth := float64(y) / float64(m.H)
		for x := 0; x < m.W; x++ {
			c := CellRock
			noise := r.Float()
			if noise < 0.06-depth*0.02 {
				c = CellGold
			}
			if noise > 0.9 {
				c = CellAir
			}
			m.Cells[y*m.W+x] = c
		}
	}
	for y := 0; y < surfaceRows; y++ {
		for x := 0; x < m.W; x++ {
			m.Cells[y*m.W+x] = CellAir
		}
	}
}

// DigAt clears every rock or gold cell whose center lies within radius
// of (cx, cy), in tile coordinates. Gold cells award currency. Returns
// the number of cells cleared and the gold earned; callers use the
// counts for feedback and crediting.
func (m *TileMap) DigAt(cx, cy, radius float64) (dug, gold int) {
	r2 := radius * radius
	for y := int(math.Floor(cy - radius)); y <= int(math.Ceil(cy+radius)); y++ {
		for x := int(math.Floor(cx - radius)); x <= int(math.Ceil(cx+radius)); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			t := m.Tile(x, y)
			if t != CellRock && t != CellGold {
				continue
			}
			if t == CellGold {
				gold += goldPerCell
			}
			m.setTile(x, y, CellAir)
			dug++
		}
	}
	return dug, gold
}

// ApplyQuake carves a handful of random vertical shafts, simulating a
// structural collapse opening shortcuts.
func (m *TileMap) ApplyQuake(r *rng.LCG) {
	columns := 2 + r.Int(0, core.Max(1, m.W/6))
	for i := 0; i < columns; i++ {
		x := r.Int(1, m.W-2)
		height := r.Int(surfaceRows, m.H/2)
		start := r.Int(surfaceRows, m.H-height-1)
		for y := start; y < start+height; y++ {
			m.setTile(x, y, CellAir)
		}
	}
}

// RiseLava lowers the lava level by amount (floor 0) and converts every
// row at or below the new level to lava, overwriting rock, gold and air
// alike. Lava is irreversible terrain.
func (m *TileMap) RiseLava(amount float64) {
	m.LavaLevel = math.Max(0, m.LavaLevel-amount)
	for y := int(math.Ceil(m.LavaLevel)); y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			m.setTile(x, y, CellLava)
		}
	}
}
