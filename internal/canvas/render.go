package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:      lipgloss.NewStyle(),
	ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Render converts the canvas to a styled string for terminal display.
// Adjacent cells with the same color are emitted as one styled run.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.width {
			startColor := c.cells[y][x].Color

			var run strings.Builder
			for x < c.width && c.cells[y][x].Color == startColor {
				run.WriteRune(c.cells[y][x].Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
