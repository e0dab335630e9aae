// Package canvas draws grids, rays and beams onto a terminal character
// buffer. It is a diagnostic renderer: one tile spans Scale columns and
// Scale/2 rows, and world y grows upwards while canvas rows grow downwards.
package canvas

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/crisscross/internal/core"
)

// MinScale is the smallest number of columns per tile.
const MinScale = 2

// Cell is a single character with its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Canvas is a 2D cell buffer sized to fit a grid.
type Canvas struct {
	grid   core.Grid
	scale  int
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a canvas for grid with scale columns per tile.
func NewCanvas(grid core.Grid, scale int) (*Canvas, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if scale < MinScale {
		return nil, fmt.Errorf("canvas: scale %d below %d", scale, MinScale)
	}
	c := &Canvas{
		grid:   grid,
		scale:  scale,
		width:  int(grid.Cols)*scale + 1,
		height: int(grid.Rows)*(scale/2) + 1,
	}
	c.allocate()
	c.Clear()
	return c, nil
}

// FitScale returns the largest scale at which grid fits in a cols x rows
// terminal area, never below MinScale.
func FitScale(grid core.Grid, cols, rows int) int {
	byWidth := (cols - 1) / int(grid.Cols)
	byHeight := 2 * ((rows - 1) / int(grid.Rows))
	return max(min(byWidth, byHeight), MinScale)
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Scale returns the number of columns per tile.
func (c *Canvas) Scale() int {
	return c.scale
}

// Clear fills the entire canvas with spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the rune at the given cell.
// Returns space for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (c *Canvas) DrawHLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, r, color)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (c *Canvas) DrawVLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x, y+i, r, color)
	}
}

// CellOf maps world coordinates to the nearest canvas cell.
func (c *Canvas) CellOf(wc core.WorldCoords) (int, int) {
	rowsPerTile := float64(c.scale / 2)
	x := int(math.Round(wc.X / c.grid.TileSize * float64(c.scale)))
	y := int(math.Round(wc.Y / c.grid.TileSize * rowsPerTile))
	return x, c.height - 1 - y
}

// String converts the canvas to plain text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
