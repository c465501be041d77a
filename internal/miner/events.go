package miner

import "math"

// EventType labels a global modifier affecting prices, dig speed and
// heat buildup for a bounded duration.
type EventType int

const (
	EventQuake EventType = iota
	EventCrash
	EventOverload
)

func (t EventType) String() string {
	switch t {
	case EventQuake:
		return "quake"
	case EventCrash:
		return "crash"
	case EventOverload:
		return "overload"
	default:
		return "unknown"
	}
}

// ActiveEvent carries the multipliers other systems read while the
// event runs. Cleared when time passes EndsAt.
type ActiveEvent struct {
	Type     EventType
	EndsAt   float64
	PriceMul float64
	DigMul   float64
	HeatMul  float64
}

const quakePulsePeriod = 0.5 // seconds per quake block

func newEvent(t EventType, now float64) *ActiveEvent {
	switch t {
	case EventQuake:
		return &ActiveEvent{Type: t, EndsAt: now + 30, PriceMul: 1, DigMul: 0.9, HeatMul: 1}
	case EventCrash:
		return &ActiveEvent{Type: t, EndsAt: now + 25, PriceMul: 0.6, DigMul: 1, HeatMul: 1}
	default:
		return &ActiveEvent{Type: EventOverload, EndsAt: now + 20, PriceMul: 1.2, DigMul: 1.2, HeatMul: 1.5}
	}
}

// maybeStartEvent rolls for a new event inside the short trigger
// window that opens once per period. The roll consumes one RNG draw
// only when the window is open, keeping seeded runs reproducible.
func (g *Game) maybeStartEvent(now float64) {
	if g.mode != ModeDig || g.event != nil {
		return
	}
	elapsedMS := (now - g.runStart) * 1000
	periodMS := g.tun.Events.PeriodSeconds * 1000
	if periodMS <= 0 || math.Mod(elapsedMS, periodMS) >= g.tun.Events.TriggerWindowMillis {
		return
	}
	r := g.rng.Float()
	var t EventType
	switch {
	case r < 0.33:
		t = EventQuake
	case r < 0.66:
		t = EventCrash
	default:
		t = EventOverload
	}
	g.event = newEvent(t, now)
	g.mode = ModeEvent
}

// quakePulse reshapes the terrain on the first tick of every eighth
// half-second block, so a quake shakes in bursts instead of grinding
// the map every frame.
func (g *Game) quakePulse(now float64) {
	if g.event == nil || g.event.Type != EventQuake {
		return
	}
	block := int64(math.Floor((now - g.runStart) / quakePulsePeriod))
	if block%8 != 0 || block == g.lastQuakeBlock {
		return
	}
	g.lastQuakeBlock = block
	g.tiles.ApplyQuake(g.rng)
}

// updateEvent expires the active event and hands control back to DIG.
func (g *Game) updateEvent(now float64) {
	if g.event == nil {
		return
	}
	if now >= g.event.EndsAt {
		g.event = nil
		g.mode = ModeDig
	}
}

// Event multiplier accessors default to 1 when nothing is active.

func (g *Game) priceMul() float64 {
	if g.event == nil {
		return 1
	}
	return g.event.PriceMul
}

func (g *Game) digMul() float64 {
	if g.event == nil {
		return 1
	}
	return g.event.DigMul
}

func (g *Game) heatMul() float64 {
	if g.event == nil {
		return 1
	}
	return g.event.HeatMul
}
