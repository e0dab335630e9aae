package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGrid is returned for grids without tiles or with a non-positive tile size.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrInvalidAngle is returned for NaN or infinite angles.
	ErrInvalidAngle = errors.New("invalid angle")

	// ErrOffGrid is returned when a signed tile position has a negative index.
	ErrOffGrid = errors.New("tile position is off grid")
)

// Grid describes a uniform tile lattice. Origin (0, 0) is the bottom-left tile.
type Grid struct {
	Cols     uint32
	Rows     uint32
	TileSize float64
}

// NewGrid creates a grid with the given dimensions.
// Returns ErrInvalidGrid when the grid has no tiles or a non-positive tile size.
func NewGrid(cols, rows uint32, tileSize float64) (Grid, error) {
	g := Grid{Cols: cols, Rows: rows, TileSize: tileSize}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks the grid invariants.
func (g Grid) Validate() error {
	if g.Cols == 0 || g.Rows == 0 {
		return fmt.Errorf("%w: %dx%d tiles", ErrInvalidGrid, g.Cols, g.Rows)
	}
	if math.IsNaN(g.TileSize) || math.IsInf(g.TileSize, 0) || g.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v", ErrInvalidGrid, g.TileSize)
	}
	return nil
}

// Width returns the grid width in world units.
func (g Grid) Width() float64 {
	return float64(g.Cols) * g.TileSize
}

// Height returns the grid height in world units.
func (g Grid) Height() float64 {
	return float64(g.Rows) * g.TileSize
}

// InBounds returns true if the tile index is within the grid.
func (g Grid) InBounds(x, y uint32) bool {
	return x < g.Cols && y < g.Rows
}

// Contains returns true if the world point lies inside the grid area.
// The right and top edges are exclusive.
func (g Grid) Contains(wc WorldCoords) bool {
	return wc.X >= 0 && wc.Y >= 0 && wc.X < g.Width() && wc.Y < g.Height()
}

// String returns a compact description like "4x4@1".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d@%g", g.Cols, g.Rows, g.TileSize)
}
