package miner

import (
	"math"

	"github.com/madminer-game/madminer/internal/core"
)

// Snapshot is a render-ready copy of the visible simulation state.
// It shares no mutable references with the game except the terrain,
// which hosts already access read-only through Map.
type Snapshot struct {
	Mode      Mode
	Time      float64
	TimeLeft  float64
	Score     int
	HighScore int
	Paused    bool

	Resources Resources
	Player    Player
	Hook      HookView
	Ores      []OreView
	Event     *EventView

	LavaLevel    float64
	NextPuzzleIn float64
}

// HookView is the grapple state as the renderer needs it.
type HookView struct {
	Fired     bool
	Returning bool
	Angle     float64
	Head      core.Vec2
	RopeLen   float64
}

// OreView is the render projection of an ore.
type OreView struct {
	Pos    core.Vec2
	Radius float64
	Type   OreType
}

// EventView describes the active event for the HUD.
type EventView struct {
	Type     EventType
	Label    string
	TimeLeft float64
}

// Snapshot captures the current state for rendering. Slices are copied
// so the host may keep a snapshot across ticks.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         g.mode,
		Time:         g.time,
		TimeLeft:     math.Max(0, g.runDuration-(g.time-g.runStart)),
		Score:        g.Score(),
		HighScore:    g.highScore,
		Paused:       g.paused,
		Resources:    g.res,
		Player:       g.player,
		LavaLevel:    g.tiles.LavaLevel,
		NextPuzzleIn: math.Max(0, g.nextPuzzle-g.time),
		Hook: HookView{
			Fired:     g.hook.Fired,
			Returning: g.hook.Returning,
			Angle:     g.hook.Angle,
			Head:      g.hook.Head,
			RopeLen:   g.hook.RopeLen,
		},
	}
	if g.paused && g.mode != ModeGameOver {
		s.Mode = ModePause
	}
	s.Ores = make([]OreView, len(g.ores))
	for i, o := range g.ores {
		s.Ores[i] = OreView{Pos: o.Pos, Radius: o.Radius, Type: o.Type}
	}
	if g.event != nil {
		s.Event = &EventView{
			Type:     g.event.Type,
			Label:    eventLabel(g.event.Type),
			TimeLeft: math.Max(0, g.event.EndsAt-g.time),
		}
	}
	return s
}

func eventLabel(t EventType) string {
	switch t {
	case EventQuake:
		return "Quake"
	case EventCrash:
		return "Price Crash"
	case EventOverload:
		return "Overload Storm"
	default:
		return ""
	}
}
