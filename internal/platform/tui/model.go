package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/madminer-game/madminer/internal/config"
	"github.com/madminer-game/madminer/internal/core"
	"github.com/madminer-game/madminer/internal/miner"
	"github.com/madminer-game/madminer/internal/save"
)

// Model is the Bubble Tea model for a Mad Miner run. It translates
// terminal events into input frames, steps the simulation on ticks and
// persists progress through the save store.
type Model struct {
	game     *miner.Game
	renderer Renderer
	screen   *core.Screen
	store    *save.Store
	data     save.Data
	tun      config.Config
	rt       core.RuntimeConfig

	input    core.Input
	status   miner.Status
	stroke   []core.Vec2
	drawing  bool
	quitting bool
	runSaved bool
}

// NewModel creates a model bound to the given tuning, save data and
// runtime. A zero seed is replaced with the wall clock.
func NewModel(tun config.Config, store *save.Store, data save.Data, rt core.RuntimeConfig) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	g := miner.New(tun, &data.Upgrades, data.HighScore)
	g.Reset(rt)

	return Model{
		game:   g,
		screen: core.NewScreen(80, 24),
		store:  store,
		data:   data,
		tun:    tun,
		rt:     rt,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.persist()
		m.quitting = true
		return m, tea.Quit
	case "p", "esc":
		m.input.Pause = true
		return m, nil
	case "r":
		if m.status.GameOver {
			m.restart()
		}
		return m, nil
	}

	switch m.status.Mode {
	case miner.ModeHook:
		if s := msg.String(); s == " " || s == "enter" {
			m.input.Fire = true
		}
	case miner.ModeDig, miner.ModeEvent:
		switch msg.String() {
		case "w", "up":
			m.input.Move = core.Vec2{Y: -1}
		case "s", "down":
			m.input.Move = core.Vec2{Y: 1}
		case "a", "left":
			m.input.Move = core.Vec2{X: -1}
		case "d", "right":
			m.input.Move = core.Vec2{X: 1}
		case " ":
			m.input.Move = core.Vec2{}
		}
	case miner.ModePuzzle:
		if msg.String() == "enter" {
			m.finishStroke()
		}
	case miner.ModeShop:
		switch msg.String() {
		case "1":
			m.game.Purchase(miner.UpgradeFuelEff)
		case "2":
			m.game.Purchase(miner.UpgradeHookPower)
		case "3":
			m.game.Purchase(miner.UpgradeDigSpeed)
		case "b":
			m.game.CloseShop()
			m.persist()
		}
	}
	return m, nil
}

// handleMouse captures puzzle strokes. Cell coordinates are translated
// back to world units through the renderer's camera.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.status.Mode != miner.ModePuzzle {
		m.drawing = false
		m.stroke = nil
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drawing = true
			m.stroke = nil
			m.stroke = append(m.stroke, m.renderer.CellToWorld(msg.X, msg.Y, m.game, m.screen.Height()))
		}
	case tea.MouseActionMotion:
		if m.drawing {
			m.stroke = append(m.stroke, m.renderer.CellToWorld(msg.X, msg.Y, m.game, m.screen.Height()))
		}
	case tea.MouseActionRelease:
		if m.drawing {
			m.finishStroke()
		}
	}
	return m, nil
}

func (m *Model) finishStroke() {
	m.input.Stroke = append([]core.Vec2(nil), m.stroke...)
	m.input.StrokeDone = true
	m.drawing = false
	m.stroke = nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.status = m.game.Step(m.input)
	m.input.Clear()

	// Movement stops outside DIG so a held direction does not leak
	// into the next stage.
	if m.status.Mode != miner.ModeDig && m.status.Mode != miner.ModeEvent {
		m.input.Move = core.Vec2{}
	}

	if m.status.GameOver && !m.runSaved {
		m.persist()
		m.recordRun()
		m.runSaved = true
	}

	return m, tickCmd(m.rt.TickRate)
}

// restart begins a fresh run with a new seed. Upgrades and the high
// score carry over.
func (m *Model) restart() {
	m.rt.Seed = time.Now().UnixNano()
	m.game.Reset(m.rt)
	m.status = miner.Status{}
	m.input = core.Input{}
	m.runSaved = false
}

// persist writes the profile (high score and upgrade levels) through
// the store. Best effort: a broken database never interrupts play.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	m.data.HighScore = m.game.HighScore()
	// The simulation mutates the upgrade record it was constructed
	// with; fold it back so purchases reach the store.
	m.data.Upgrades = *m.game.Upgrades()
	//nolint:errcheck // Best-effort save, the run continues regardless
	m.store.Save(m.data)
}

// recordRun appends the finished run to the history table.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	//nolint:errcheck // Best-effort save
	m.store.RecordRun(snap.Score, int(snap.Resources.Gold), snap.Player.Depth)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Draw(m.screen, m.game, m.stroke)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(tun config.Config, store *save.Store, data save.Data, rt core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(tun, store, data, rt),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // puzzle strokes are drawn with the mouse
	)
	_, err := p.Run()
	return err
}
