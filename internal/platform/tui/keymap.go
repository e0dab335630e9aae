package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the viewer.
type KeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	NudgeLeft   key.Binding
	NudgeRight  key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Beam        key.Binding
	Wider       key.Binding
	Narrower    key.Binding
	Crossing    key.Binding
	Record      key.Binding
	History     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateLeft, k.RotateRight, k.Beam, k.Crossing, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateLeft, k.RotateRight, k.NudgeLeft, k.NudgeRight},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Beam, k.Wider, k.Narrower, k.Crossing},
		{k.Record, k.History, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "rotate +5°"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "rotate -5°"),
		),
		NudgeLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("S-←", "rotate +1°"),
		),
		NudgeRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("S-→", "rotate -1°"),
		),
		Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "origin up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "origin down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "origin left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "origin right"),
		),
		Beam: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "beam"),
		),
		Wider: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider"),
		),
		Narrower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrower"),
		),
		Crossing: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "crossing"),
		),
		Record: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "record"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
