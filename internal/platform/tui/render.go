package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/madminer-game/madminer/internal/core"
	"github.com/madminer-game/madminer/internal/miner"
)

// Terrain and entity glyphs. The renderer writes plain runes into the
// screen buffer; RenderScreen maps glyph runs to lipgloss styles.
const (
	glyphRock   = '#'
	glyphGold   = '$'
	glyphLava   = '~'
	glyphPlayer = '@'
	glyphOre    = 'O'
	glyphHook   = '+'
	glyphRope   = '.'
	glyphStroke = '*'
	glyphGauge  = '='
)

// Each terrain tile renders as two terminal columns by one row, which
// roughly squares it up in common fonts.
const (
	tileCols = 2
	hudRows  = 3
)

// glyphStyles maps glyphs to lipgloss styles. Runs of equally styled
// cells are rendered together to keep escape sequences short.
var glyphStyles = map[rune]lipgloss.Style{
	glyphRock:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	glyphGold:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	glyphLava:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	glyphPlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	glyphOre:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	glyphHook:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	glyphRope:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	glyphStroke: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

var defaultStyle = lipgloss.NewStyle()

// Renderer draws the simulation into a Screen buffer. It is stateless:
// the camera is derived from the snapshot every frame, so the same
// mapping is available to input translation without shared state.
type Renderer struct{}

// Draw renders one frame: terrain, entities, HUD and mode overlays.
func (r Renderer) Draw(s *core.Screen, g *miner.Game, stroke []core.Vec2) {
	s.Clear()
	snap := g.Snapshot()
	m := g.Map()
	rt := g.Runtime()

	viewRows := s.Height() - hudRows
	if viewRows < 1 {
		return
	}

	cam := cameraRow(snap, m, rt, viewRows)

	// Terrain.
	for row := 0; row < viewRows; row++ {
		my := cam + row
		if my >= m.H {
			break
		}
		for mx := 0; mx < m.W; mx++ {
			var glyph rune
			switch m.Tile(mx, my) {
			case miner.CellRock:
				glyph = glyphRock
			case miner.CellGold:
				glyph = glyphGold
			case miner.CellLava:
				glyph = glyphLava
			default:
				continue
			}
			for i := 0; i < tileCols; i++ {
				s.Set(mx*tileCols+i, hudRows+row, glyph)
			}
		}
	}

	// Ores only matter during the hook stage.
	if snap.Mode == miner.ModeHook {
		for _, o := range snap.Ores {
			x, y := worldToCell(o.Pos, rt, cam)
			s.Set(x, y, glyphOre)
			s.Set(x+1, y, glyphOre)
		}
		drawRope(s, snap, rt, cam)
	}

	// Player.
	px, py := worldToCell(snap.Player.Pos, rt, cam)
	s.Set(px, py, glyphPlayer)

	// The in-progress puzzle stroke.
	for _, p := range stroke {
		x, y := worldToCell(p, rt, cam)
		s.Set(x, y, glyphStroke)
	}

	drawHUD(s, snap)
	r.drawOverlay(s, g, snap)
}

// cameraRow follows the player underground and parks at the surface
// for the hook stage.
func cameraRow(snap miner.Snapshot, m *miner.TileMap, rt core.RuntimeConfig, viewRows int) int {
	switch snap.Mode {
	case miner.ModeHook, miner.ModeGameOver:
		return 0
	default:
		playerRow := int(snap.Player.Pos.Y / rt.Tile)
		return core.Clamp(playerRow-viewRows*3/10, 0, core.Max(0, m.H-viewRows))
	}
}

// worldToCell maps a world position to screen coordinates under the
// given camera row.
func worldToCell(p core.Vec2, rt core.RuntimeConfig, cam int) (int, int) {
	x := int(p.X/rt.Tile) * tileCols
	y := int(p.Y/rt.Tile) - cam + hudRows
	return x, y
}

// CellToWorld maps a screen cell back to the world point at its
// center, recomputing the same camera Draw uses. The model uses it to
// translate mouse strokes into simulation space.
func (r Renderer) CellToWorld(x, y int, g *miner.Game, screenH int) core.Vec2 {
	rt := g.Runtime()
	cam := cameraRow(g.Snapshot(), g.Map(), rt, core.Max(1, screenH-hudRows))
	return core.Vec2{
		X: (float64(x)/tileCols)*rt.Tile + rt.Tile/2,
		Y: float64(y-hudRows+cam)*rt.Tile + rt.Tile/2,
	}
}

func drawRope(s *core.Screen, snap miner.Snapshot, rt core.RuntimeConfig, cam int) {
	if !snap.Hook.Fired && snap.Hook.RopeLen == 0 {
		// Idle: only the head marker swings.
		x, y := worldToCell(snap.Hook.Head, rt, cam)
		s.Set(x, y, glyphHook)
		return
	}
	// Sample the rope from player to head.
	steps := int(core.Dist(snap.Player.Pos, snap.Hook.Head) / rt.Tile)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		p := core.Vec2{
			X: core.Lerp(snap.Player.Pos.X, snap.Hook.Head.X, t),
			Y: core.Lerp(snap.Player.Pos.Y, snap.Hook.Head.Y, t),
		}
		x, y := worldToCell(p, rt, cam)
		s.Set(x, y, glyphRope)
	}
	x, y := worldToCell(snap.Hook.Head, rt, cam)
	s.Set(x, y, glyphHook)
}

func drawHUD(s *core.Screen, snap miner.Snapshot) {
	title := fmt.Sprintf("MAD MINER  [%s]", snap.Mode)
	right := fmt.Sprintf("SCORE %d  BEST %d", snap.Score, snap.HighScore)
	s.DrawText(0, 0, title)
	s.DrawText(core.Max(0, s.Width()-len(right)), 0, right)

	res := snap.Resources
	s.DrawText(0, 1, fmt.Sprintf("F%s O%s H%s",
		gauge(res.Fuel, 100), gauge(res.O2, 100), gauge(res.Heat, 100)))

	status := fmt.Sprintf("GOLD %d  DEPTH %dm  TIME %ds",
		int(res.Gold), int(snap.Player.Depth/10), int(snap.TimeLeft))
	if snap.Event != nil {
		status += fmt.Sprintf("  !%s %ds", snap.Event.Label, int(snap.Event.TimeLeft))
	}
	s.DrawText(0, 2, status)
}

// gauge renders a 10-slot bar like [====      ].
func gauge(value, max float64) string {
	filled := core.Clamp(int(value/max*10+0.5), 0, 10)
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < 10; i++ {
		if i < filled {
			b.WriteRune(glyphGauge)
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (r Renderer) drawOverlay(s *core.Screen, g *miner.Game, snap miner.Snapshot) {
	mid := s.Height() / 2
	switch snap.Mode {
	case miner.ModeHook:
		s.DrawTextCentered(s.Height()-1, "space: fire hook   q: quit")
	case miner.ModePuzzle:
		s.DrawTextCentered(hudRows+1, "Draw a line to carve a path (mouse), enter to finish")
	case miner.ModeShop:
		r.drawShop(s, g, snap)
	case miner.ModePause:
		s.DrawTextCentered(mid, "PAUSED  --  p to resume")
	case miner.ModeGameOver:
		s.DrawTextCentered(mid-1, fmt.Sprintf("RUN OVER  --  score %d", snap.Score))
		s.DrawTextCentered(mid+1, "r: new run   q: quit")
	}
}

// RenderScreen converts a Screen buffer to a styled string for
// display. Adjacent same-glyph cells share one style application.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.Get(x, y)
			style, styled := glyphStyles[start]
			if !styled {
				style = defaultStyle
			}

			var run strings.Builder
			for x < s.Width() {
				c := s.Get(x, y)
				_, cStyled := glyphStyles[c]
				if (cStyled || styled) && c != start {
					break
				}
				run.WriteRune(c)
				x++
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
