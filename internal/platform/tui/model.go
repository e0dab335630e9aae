package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crisscross/internal/canvas"
	"github.com/vovakirdan/crisscross/internal/config"
	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/registry"
	"github.com/vovakirdan/crisscross/internal/scenarios"
	"github.com/vovakirdan/crisscross/internal/storage"
)

// Viewer tuning.
const (
	rotateStep   = 5.0 // degrees
	nudgeStep    = 1.0 // degrees
	moveStep     = 0.1 // tiles
	widthStep    = 0.1 // tiles
	minBeamWidth = 0.1 // tiles
	chromeRows   = 4   // title, status, help and spacing
)

// ViewerScenarioID is the scenario id under which viewer casts are recorded.
const ViewerScenarioID = "viewer"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for the interactive cast viewer.
type Model struct {
	scene  config.Scene
	kind   registry.Kind
	result scenarios.Result
	err    error

	store  *storage.Store
	logger *log.Logger

	keys    KeyMap
	help    help.Model
	history HistoryModel

	showHistory bool
	width       int
	height      int
	status      string
	statusID    int
	quitting    bool
}

// NewModel creates a viewer for scene. Store and logger may be nil.
func NewModel(scene config.Scene, kind registry.Kind, store *storage.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !kind.Valid() {
		kind = registry.KindRay
	}
	if kind == registry.KindBeam {
		scene.Beam.Enabled = true
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		scene:  scene,
		kind:   kind,
		store:  store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
	}
	m.recast()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showHistory {
			m.history = m.history.resize(msg.Width, msg.Height)
		}
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHistory {
			return m.updateHistory(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// updateHistory forwards input to the history table until it is closed.
func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	newHistory, cmd := m.history.Update(msg)
	if hm, ok := newHistory.(HistoryModel); ok {
		m.history = hm
	}
	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		m.showHistory = false
		return m, nil
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.RotateLeft):
		m.rotate(rotateStep)
	case key.Matches(msg, m.keys.RotateRight):
		m.rotate(-rotateStep)
	case key.Matches(msg, m.keys.NudgeLeft):
		m.rotate(nudgeStep)
	case key.Matches(msg, m.keys.NudgeRight):
		m.rotate(-nudgeStep)

	case key.Matches(msg, m.keys.Up):
		return m.moveOrigin(0, 1)
	case key.Matches(msg, m.keys.Down):
		return m.moveOrigin(0, -1)
	case key.Matches(msg, m.keys.Left):
		return m.moveOrigin(-1, 0)
	case key.Matches(msg, m.keys.Right):
		return m.moveOrigin(1, 0)

	case key.Matches(msg, m.keys.Beam):
		if m.kind == registry.KindBeam {
			m.kind = registry.KindRay
		} else {
			m.kind = registry.KindBeam
			m.scene.Beam.Enabled = true
			if m.scene.Beam.Width <= 0 {
				m.scene.Beam.Width = config.DefaultScene().Beam.Width
			}
		}
	case key.Matches(msg, m.keys.Wider):
		m.resizeBeam(widthStep)
	case key.Matches(msg, m.keys.Narrower):
		m.resizeBeam(-widthStep)

	case key.Matches(msg, m.keys.Crossing):
		if m.kind == registry.KindCrossing {
			m.kind = registry.KindRay
		} else {
			m.kind = registry.KindCrossing
		}

	case key.Matches(msg, m.keys.Record):
		return m.record()

	case key.Matches(msg, m.keys.History):
		m.history = NewHistoryModel(m.store, m.width, m.height)
		m.showHistory = true
		return m, nil

	default:
		return m, nil
	}

	m.recast()
	return m, nil
}

// rotate turns the cast by deg degrees, keeping the angle in [0, 360).
func (m *Model) rotate(deg float64) {
	a := math.Mod(m.scene.Angle+deg, 360)
	if a < 0 {
		a += 360
	}
	m.scene.Angle = core.Round(a, 6)
}

// moveOrigin shifts the origin by one move step along (dx, dy).
func (m Model) moveOrigin(dx, dy float64) (tea.Model, tea.Cmd) {
	grid, err := m.scene.GridValue()
	if err != nil {
		return m, nil
	}
	step := moveStep * grid.TileSize
	wc, ok := m.scene.OriginPosition().World(grid.TileSize).Translated(dx*step, dy*step).BoundsChecked(grid)
	if !ok {
		return m.setStatus("origin would leave the grid")
	}
	tp, err := wc.ToTilePosition()
	if err != nil {
		return m.setStatus(err.Error())
	}
	m.scene.Origin = config.PositionConfig{X: tp.X, RelX: tp.RelX, Y: tp.Y, RelY: tp.RelY}
	m.recast()
	return m, nil
}

// resizeBeam changes the beam width by d tiles.
func (m *Model) resizeBeam(d float64) {
	tile := m.scene.Grid.TileSize
	w := m.scene.Beam.Width + d*tile
	m.scene.Beam.Width = core.Round(math.Max(w, minBeamWidth*tile), 6)
}

// recast rebuilds the cast for the current scene.
func (m *Model) recast() {
	m.result, m.err = scenarios.Cast(m.scene, m.kind)
}

// record saves the current cast to the store.
func (m Model) record() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m.setStatus("no cast database")
	}
	if m.err != nil {
		return m.setStatus("nothing to record")
	}
	id, err := m.store.SaveCast(ViewerScenarioID, string(m.kind), m.scene.Angle, m.result.Records())
	if err != nil {
		m.logger.Error("could not record cast", "error", err)
		return m.setStatus("record failed: " + err.Error())
	}
	m.logger.Info("cast recorded", "id", id, "kind", m.kind, "angle", m.scene.Angle)
	return m.setStatus(fmt.Sprintf("recorded cast #%d", id))
}

// setStatus shows a transient status message.
func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = s
	return m, clearStatusCmd(m.statusID)
}

// Scene returns the scene as currently edited.
func (m Model) Scene() config.Scene {
	return m.scene
}

// Kind returns the active query kind.
func (m Model) Kind() registry.Kind {
	return m.kind
}

// Result returns the latest cast result.
func (m Model) Result() scenarios.Result {
	return m.result
}

// Status returns the current status message.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// scale picks the canvas scale for the current window.
func (m Model) scale(grid core.Grid) int {
	preferred := m.scene.Canvas.Scale
	if preferred < canvas.MinScale {
		preferred = canvas.MinScale
	}
	if m.width <= 0 || m.height <= 0 {
		return preferred
	}
	return min(canvas.FitScale(grid, m.width, m.height-chromeRows), preferred)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("crisscross %s  %dx%d", m.kind, m.scene.Grid.Cols, m.scene.Grid.Rows)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else if grid, err := m.scene.GridValue(); err == nil {
		if c, err := m.result.Draw(m.scale(grid)); err == nil {
			b.WriteString(c.Render())
		} else {
			b.WriteString(errorStyle.Render(err.Error()))
		}
	}
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(m.summary()))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summary describes the current cast in one line.
func (m Model) summary() string {
	head := fmt.Sprintf("angle %.1f°  origin %s", m.scene.Angle, m.scene.OriginPosition().Rounded(3))
	if m.err != nil {
		return head
	}
	switch m.kind {
	case registry.KindBeam:
		return fmt.Sprintf("%s  width %.2f  rays %d  intersects %d",
			head, m.scene.Beam.Width, len(m.result.Origins), len(m.result.Intersects))
	case registry.KindCrossing:
		return fmt.Sprintf("%s  valid %s  invalid %s",
			head, describe(m.result.Crossing.Valid), describe(m.result.Crossing.Invalid))
	default:
		return fmt.Sprintf("%s  tiles %d", head, len(m.result.Tiles))
	}
}

func describe(tp *core.TilePosition) string {
	if tp == nil {
		return "none"
	}
	return tp.Rounded(3).String()
}

// Run starts the Bubble Tea viewer for scene.
func Run(scene config.Scene, kind registry.Kind, store *storage.Store, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(scene, kind, store, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
