// Package tui provides the Bubble Tea viewer for crisscross casts.
// It handles the terminal UI loop, key bindings, cast history and serving
// the viewer over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg expires the status message with the matching id.
type clearStatusMsg struct {
	id int
}

// clearStatusCmd returns a Bubble Tea command that clears status id after the timeout.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
