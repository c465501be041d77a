// Package miner implements the Mad Miner simulation: a deterministic,
// fixed-timestep state machine covering the grapple-hook mini-game,
// digging through procedurally generated terrain, fuel/oxygen/heat
// management, rising lava, randomized global events, the draw-a-line
// puzzle interlude and the upgrade economy. The package contains pure
// logic with no platform dependencies; the host owns rendering, input
// mapping and persistence.
package miner

import (
	"math"

	"github.com/madminer-game/madminer/internal/config"
	"github.com/madminer-game/madminer/internal/core"
	"github.com/madminer-game/madminer/internal/rng"
	"github.com/madminer-game/madminer/internal/save"
)

// Mode identifies the current stage of a run.
type Mode int

const (
	ModeHook Mode = iota // grapple mini-game, waiting for a fire input
	ModeDig              // free movement and digging
	ModePuzzle           // single-stroke line-to-dig interlude
	ModeEvent            // a global event modifier is active
	ModeShop             // upgrade shop is open
	ModePause            // reported when paused; overlays the real mode
	ModeGameOver         // terminal until restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeHook:
		return "HOOK"
	case ModeDig:
		return "DIG"
	case ModePuzzle:
		return "PUZZLE"
	case ModeEvent:
		return "EVENT"
	case ModeShop:
		return "SHOP"
	case ModePause:
		return "PAUSE"
	case ModeGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// Resources holds the run currency and the three survival gauges.
// Gauges stay within [0,100]; gold is unbounded and non-negative.
type Resources struct {
	Gold float64
	Fuel float64
	O2   float64
	Heat float64
}

// Player is the miner avatar.
type Player struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Angle float64
	// Depth is the high-water mark of Pos.Y; it never decreases.
	Depth float64
}

// OreType is the ore variant. Only gold is exercised by the current
// systems; the others are reserved extension points.
type OreType int

const (
	OreGold OreType = iota
	OreBomb
	OreToxic
	OreMag
)

// Ore is a collectible placed for the hook mini-game.
type Ore struct {
	ID     int
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Value  float64
	Weight float64
	Type   OreType
}

// Hook is the grapple sub-state. Invariant: Fired=false implies
// RopeLen=0 and TargetID=0.
type Hook struct {
	Rotating    bool
	Angle       float64
	Speed       float64 // signed; reverses at the swing limits
	RopeLen     float64
	Fired       bool
	Head        core.Vec2
	TargetID    int // id into the ore collection; 0 means none
	Returning   bool
	Magnetizing bool
}

// Game is the aggregate simulation state. It has exactly one writer:
// the host must sequence input mutation and Step calls on a single
// task queue, so no internal locking exists.
type Game struct {
	rt  core.RuntimeConfig
	tun config.Config
	rng *rng.LCG

	mode    Mode
	time    float64
	tick    uint64
	res     Resources
	baseRes Resources
	player  Player
	hook    Hook
	ores    []Ore
	tiles   *TileMap

	// upgrades is a shared reference owned by the save collaborator;
	// the simulation re-reads it every tick and only writes it through
	// Purchase.
	upgrades *save.Upgrades

	event          *ActiveEvent
	lastQuakeBlock int64

	highScore   int
	runStart    float64
	runDuration float64
	paused      bool
	nextPuzzle  float64
	nextOreID   int
}

// New creates a game bound to the given tuning and persistent progress.
// Reset must be called before the first Step.
func New(tun config.Config, upgrades *save.Upgrades, highScore int) *Game {
	if upgrades == nil {
		upgrades = &save.Upgrades{}
	}
	return &Game{
		tun:       tun,
		upgrades:  upgrades,
		highScore: highScore,
	}
}

// Reset initializes or restarts a run. The high score and the shared
// upgrades reference survive across resets; everything else is rebuilt
// from the seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rng.New(rt.Seed)
	g.mode = ModeHook
	g.time = 0
	g.tick = 0
	g.paused = false
	g.event = nil
	g.lastQuakeBlock = -1
	g.runStart = 0
	g.runDuration = g.tun.Run.DurationSeconds
	g.nextPuzzle = g.runStart + g.tun.Run.PuzzleIntervalSeconds

	g.baseRes = Resources{
		Fuel: g.tun.Resources.Fuel,
		O2:   g.tun.Resources.O2,
	}
	g.res = g.baseRes

	g.player = Player{
		Pos: core.Vec2{X: rt.Width / 2, Y: rt.Height * 0.2},
	}
	g.hook = Hook{
		Rotating: true,
		Angle:    -math.Pi / 3,
		Speed:    1.2,
		Head:     g.player.Pos,
	}

	w := int(rt.Width / rt.Tile)
	h := int(rt.Height/rt.Tile) * 5
	g.tiles = NewTileMap(w, h)
	g.tiles.seedSurface(g.rng)
	g.spawnOres()
	g.tiles.Generate(g.rng)
}

// spawnOres places the initial ore field for the hook stage.
func (g *Game) spawnOres() {
	const initialOres = 6
	g.ores = g.ores[:0]
	g.nextOreID = 1
	for i := 0; i < initialOres; i++ {
		g.ores = append(g.ores, Ore{
			ID:     g.nextOreID,
			Pos:    core.Vec2{X: g.rng.Range(20, g.rt.Width-20), Y: g.rng.Range(60, 140)},
			Radius: g.rng.Range(8, 14),
			Value:  10 + float64(g.rng.Int(0, 20)),
			Weight: g.rng.Range(1, 3),
			Type:   OreGold,
		})
		g.nextOreID++
	}
}

// oreByID returns a pointer into the ore collection, or nil. The hook
// holds ores by id, never by pointer: removal from the collection is
// the single point of ownership.
func (g *Game) oreByID(id int) *Ore {
	for i := range g.ores {
		if g.ores[i].ID == id {
			return &g.ores[i]
		}
	}
	return nil
}

// removeOre deletes an ore by id and clears the hook's reference to it.
func (g *Game) removeOre(id int) {
	for i := range g.ores {
		if g.ores[i].ID == id {
			g.ores = append(g.ores[:i], g.ores[i+1:]...)
			break
		}
	}
	if g.hook.TargetID == id {
		g.hook.TargetID = 0
	}
}

// Map exposes the terrain for rendering. Callers must treat it as
// read-only; all mutation goes through Step.
func (g *Game) Map() *TileMap {
	return g.tiles
}

// Upgrades returns the shared persistent upgrade record.
func (g *Game) Upgrades() *save.Upgrades {
	return g.upgrades
}

// Runtime returns the per-run viewport configuration.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.rt
}

// HighScore returns the best score observed so far, including the
// value loaded from the save collaborator.
func (g *Game) HighScore() int {
	return g.highScore
}

// Score is the run score: gold plus a tenth of the best depth reached.
func (g *Game) Score() int {
	return int(math.Floor(g.res.Gold + g.player.Depth*0.1))
}

// dead reports the death condition. It is re-evaluated every tick
// regardless of mode.
func (g *Game) dead() bool {
	return g.res.Fuel <= 0 || g.res.O2 <= 0 || g.res.Heat >= 100
}
