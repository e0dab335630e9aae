package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crisscross/internal/config"
	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/registry"
	"github.com/vovakirdan/crisscross/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, expected Model", next)
		}
	}
	return m
}

func newViewer(t *testing.T, kind registry.Kind) Model {
	t.Helper()
	m := NewModel(config.DefaultScene(), kind, nil, nil)
	if m.err != nil {
		t.Fatalf("NewModel() cast failed: %v", m.err)
	}
	return m
}

func TestKeyMapBindings(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, keys.RotateLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, keys.RotateRight},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, keys.NudgeLeft},
		{tea.KeyMsg{Type: tea.KeyShiftRight}, keys.NudgeRight},
		{runeKey('w'), keys.Up},
		{runeKey('a'), keys.Left},
		{runeKey('+'), keys.Wider},
		{runeKey('='), keys.Wider},
		{runeKey('-'), keys.Narrower},
		{tea.KeyMsg{Type: tea.KeyTab}, keys.History},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit},
	}
	for _, tc := range tests {
		if !key.Matches(tc.msg, tc.binding) {
			t.Errorf("%q should match %v", tc.msg.String(), tc.binding.Help())
		}
	}
	if len(keys.FullHelp()) != 4 || len(keys.ShortHelp()) == 0 {
		t.Error("help should list bindings")
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		msg      tea.KeyMsg
		expected float64
	}{
		{"left", 30, tea.KeyMsg{Type: tea.KeyLeft}, 35},
		{"right", 30, tea.KeyMsg{Type: tea.KeyRight}, 25},
		{"shift left", 30, tea.KeyMsg{Type: tea.KeyShiftLeft}, 31},
		{"shift right", 30, tea.KeyMsg{Type: tea.KeyShiftRight}, 29},
		{"wraps below zero", 2, tea.KeyMsg{Type: tea.KeyRight}, 357},
		{"wraps at 360", 355, tea.KeyMsg{Type: tea.KeyLeft}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scene := config.DefaultScene()
			scene.Angle = tc.start
			m := press(t, NewModel(scene, registry.KindRay, nil, nil), tc.msg)
			if !core.FloatsEqual(m.Scene().Angle, tc.expected) {
				t.Errorf("Angle = %v, expected %v", m.Scene().Angle, tc.expected)
			}
		})
	}
}

func TestRotateRecasts(t *testing.T) {
	m := newViewer(t, registry.KindRay)
	before := len(m.Result().Tiles)

	// 30 -> 0 from (1, .5)/(1, .5) on 4x4 crosses x = 2 and x = 3 only
	for i := 0; i < 6; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if !core.FloatsEqual(m.Scene().Angle, 0) {
		t.Fatalf("Angle = %v, expected 0", m.Scene().Angle)
	}
	if got := len(m.Result().Tiles); got != 2 || got == before {
		t.Errorf("tiles after rotation = %d, expected 2 (was %d)", got, before)
	}
}

func TestMoveOrigin(t *testing.T) {
	m := press(t, newViewer(t, registry.KindRay), runeKey('d'), runeKey('w'), runeKey('w'))

	expected := core.NewTilePosition(1, 1, 0.6, 0.7)
	if got := m.Scene().OriginPosition().Rounded(3); !got.Equal(expected) {
		t.Errorf("origin = %v, expected %v", got, expected)
	}
}

func TestMoveOriginAcrossTiles(t *testing.T) {
	scene := config.DefaultScene()
	scene.Origin = config.PositionConfig{X: 1, RelX: 0.05, Y: 1, RelY: 0.5}
	m := press(t, NewModel(scene, registry.KindRay, nil, nil), runeKey('a'))

	expected := core.NewTilePosition(0, 1, 0.95, 0.5)
	if got := m.Scene().OriginPosition().Rounded(3); !got.Equal(expected) {
		t.Errorf("origin = %v, expected %v", got, expected)
	}
}

func TestMoveOriginOffGrid(t *testing.T) {
	scene := config.DefaultScene()
	scene.Origin = config.PositionConfig{}
	m := press(t, NewModel(scene, registry.KindRay, nil, nil), runeKey('s'))

	if m.Scene().Origin != (config.PositionConfig{}) {
		t.Errorf("origin moved off grid: %+v", m.Scene().Origin)
	}
	if m.Status() == "" {
		t.Error("expected a status message")
	}
}

func TestToggleBeam(t *testing.T) {
	m := press(t, newViewer(t, registry.KindRay), runeKey('b'))
	if m.Kind() != registry.KindBeam {
		t.Fatalf("Kind() = %v, expected beam", m.Kind())
	}
	if len(m.Result().Origins) == 0 {
		t.Error("beam cast should have fan origins")
	}

	m = press(t, m, runeKey('b'))
	if m.Kind() != registry.KindRay {
		t.Errorf("Kind() = %v, expected ray", m.Kind())
	}
}

func TestBeamWidth(t *testing.T) {
	m := press(t, newViewer(t, registry.KindBeam), runeKey('+'), runeKey('+'))
	if !core.FloatsEqual(m.Scene().Beam.Width, 1.0) {
		t.Errorf("Width = %v, expected 1.0", m.Scene().Beam.Width)
	}

	for i := 0; i < 20; i++ {
		m = press(t, m, runeKey('-'))
	}
	if !core.FloatsEqual(m.Scene().Beam.Width, minBeamWidth) {
		t.Errorf("Width = %v, expected floor %v", m.Scene().Beam.Width, minBeamWidth)
	}
}

func TestToggleCrossing(t *testing.T) {
	m := press(t, newViewer(t, registry.KindRay), runeKey('c'))
	if m.Kind() != registry.KindCrossing {
		t.Fatalf("Kind() = %v, expected crossing", m.Kind())
	}

	// Default region is x <= 3, y <= 1: the 30° ray leaves it at (2, .366)/(2, 0)
	c := m.Result().Crossing
	if c.Valid == nil || c.Invalid == nil {
		t.Fatalf("Crossing = %+v, expected both sides", c)
	}
	expected := core.NewTilePosition(2, 2, 0.366, 0)
	if !c.Invalid.Rounded(3).Equal(expected) {
		t.Errorf("Invalid = %v, expected %v", c.Invalid, expected)
	}
	if !strings.Contains(m.View(), "invalid (2, 0.366)/(2, 0.000)") {
		t.Errorf("View() should summarize the crossing:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m := newViewer(t, registry.KindRay)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newViewer(t, registry.KindRay)
	short := m.View()
	m = press(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	if !strings.Contains(m.View(), "origin up") || strings.Contains(short, "origin up") {
		t.Error("full help should list movement keys")
	}
}

func TestStatusExpires(t *testing.T) {
	m := press(t, newViewer(t, registry.KindRay), runeKey('r'))
	if m.Status() != "no cast database" {
		t.Fatalf("Status() = %q", m.Status())
	}

	stale := press(t, m, clearStatusMsg{id: m.statusID - 1})
	if stale.Status() == "" {
		t.Error("stale clear should not remove a newer status")
	}
	m = press(t, m, clearStatusMsg{id: m.statusID})
	if m.Status() != "" {
		t.Errorf("Status() = %q, expected cleared", m.Status())
	}
}

func TestRecordAndHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "casts.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(config.DefaultScene(), registry.KindRay, store, nil)
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}, runeKey('r'))
	if !strings.HasPrefix(m.Status(), "recorded cast #") {
		t.Fatalf("Status() = %q", m.Status())
	}

	c, err := store.LatestCast(ViewerScenarioID)
	if err != nil {
		t.Fatalf("LatestCast() failed: %v", err)
	}
	if c.TileCount != len(m.Result().Tiles) {
		t.Errorf("TileCount = %d, expected %d", c.TileCount, len(m.Result().Tiles))
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory {
		t.Fatal("tab should open the history")
	}
	if len(m.history.Casts()) != 1 {
		t.Errorf("history has %d casts, expected 1", len(m.history.Casts()))
	}
	if !strings.Contains(m.View(), ViewerScenarioID) {
		t.Errorf("history view should list the cast:\n%s", m.View())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHistory {
		t.Error("esc should close the history")
	}
}

func TestViewDrawsCanvas(t *testing.T) {
	m := press(t, newViewer(t, registry.KindRay), tea.WindowSizeMsg{Width: 80, Height: 30})
	view := m.View()
	if !strings.Contains(view, "@") {
		t.Errorf("View() should draw the origin:\n%s", view)
	}
	if !strings.Contains(view, "tiles 3") {
		t.Errorf("View() should summarize the cast:\n%s", view)
	}
}

func TestCastRows(t *testing.T) {
	rows := CastRows([]storage.Cast{{ID: 7, ScenarioID: "ray-30", Kind: "ray", AngleDeg: 30, TileCount: 3}})
	if len(rows) != 1 {
		t.Fatalf("CastRows() = %v", rows)
	}
	if rows[0][0] != "7" || rows[0][1] != "ray-30" || rows[0][3] != "30.0" || rows[0][4] != "3" {
		t.Errorf("row = %v", rows[0])
	}
}
