package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crisscross/internal/storage"
)

// History layout constants
const (
	maxCasts      = 100 // Max casts to load
	historyChrome = 8   // Rows taken by title, borders and help
	minTableRows  = 3
)

// HistoryKeyMap defines the key bindings for the cast history.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists recorded casts in a table.
type HistoryModel struct {
	store     *storage.Store
	casts     []storage.Cast
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history view. A nil store shows an empty table.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadCasts()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Scenario", Width: 16},
		{Title: "Kind", Width: 9},
		{Title: "Angle", Width: 7},
		{Title: "Tiles", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, minTableRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadCasts loads the most recent casts from the store.
func (m *HistoryModel) loadCasts() {
	if m.store == nil {
		m.casts = nil
	} else {
		m.casts, m.loadErr = m.store.ListCasts(maxCasts)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current casts.
func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(CastRows(m.casts))
	m.table.GotoTop()
}

// CastRows formats casts as table rows.
func CastRows(casts []storage.Cast) []table.Row {
	rows := make([]table.Row, len(casts))
	for i, c := range casts {
		rows[i] = table.Row{
			fmt.Sprintf("%d", c.ID),
			c.ScenarioID,
			c.Kind,
			fmt.Sprintf("%.1f", c.AngleDeg),
			fmt.Sprintf("%d", c.TileCount),
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// resize adapts the table to a new window size.
func (m HistoryModel) resize(width, height int) HistoryModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("RECORDED CASTS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return errorStyle.Render(m.loadErr.Error())
	case len(m.casts) == 0:
		return emptyStyle.Render("No casts recorded yet.\nPress r in the viewer or run crisscross record.")
	}
	return m.table.View()
}

// Casts returns the loaded casts.
func (m HistoryModel) Casts() []storage.Cast {
	return m.casts
}

// IsGoingBack returns true if the user wants to go back to the viewer.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
