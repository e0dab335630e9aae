package core

import "math"

// WorldCoords is a continuous position in world space.
// Coordinates are rounded to WorldPrecision decimals on every construction so
// that points reached through different arithmetic paths compare equal.
type WorldCoords struct {
	X        float64
	Y        float64
	TileSize float64
}

// NewWorldCoords creates rounded world coordinates.
func NewWorldCoords(x, y, tileSize float64) WorldCoords {
	return WorldCoords{
		X:        Round(x, WorldPrecision),
		Y:        Round(y, WorldPrecision),
		TileSize: tileSize,
	}
}

// WorldFromTile converts a tile position into world coordinates.
func WorldFromTile(tp TilePosition, tileSize float64) WorldCoords {
	x := tileSize*float64(tp.X) + tp.RelX
	y := tileSize*float64(tp.Y) + tp.RelY
	return NewWorldCoords(x, y, tileSize)
}

// WorldFromSigned converts a signed tile position into world coordinates.
// The offsets may lie outside [0, tileSize), which is how accumulated deltas
// get folded back into canonical form.
func WorldFromSigned(stp SignedTilePosition, tileSize float64) WorldCoords {
	x := tileSize*float64(stp.X) + stp.RelX
	y := tileSize*float64(stp.Y) + stp.RelY
	return NewWorldCoords(x, y, tileSize)
}

// Translated returns the coordinates moved by (dx, dy).
func (wc WorldCoords) Translated(dx, dy float64) WorldCoords {
	return NewWorldCoords(wc.X+dx, wc.Y+dy, wc.TileSize)
}

// Distance returns the Euclidean distance to other.
func (wc WorldCoords) Distance(other WorldCoords) float64 {
	return math.Hypot(wc.X-other.X, wc.Y-other.Y)
}

// ToSigned splits the coordinates into tile index and offset using floor
// division, so offsets are always in [0, tileSize) and negative positions get
// negative indices.
func (wc WorldCoords) ToSigned() SignedTilePosition {
	x, relX := splitAxis(wc.X, wc.TileSize)
	y, relY := splitAxis(wc.Y, wc.TileSize)
	return NewSignedTilePosition(x, y, relX, relY)
}

// ToTilePosition converts to an unsigned tile position.
// Returns ErrOffGrid for negative positions.
func (wc WorldCoords) ToTilePosition() (TilePosition, error) {
	return wc.ToSigned().ToTilePosition()
}

// BoundsChecked returns the coordinates and true if they lie within the grid.
func (wc WorldCoords) BoundsChecked(g Grid) (WorldCoords, bool) {
	if !g.Contains(wc) {
		return WorldCoords{}, false
	}
	return wc, true
}

func splitAxis(v, tileSize float64) (int64, float64) {
	idx := math.Floor(v / tileSize)
	rel := Round(v-idx*tileSize, TilePositionPrecision)
	if rel >= tileSize {
		// v sat a rounding step below a grid line
		idx++
		rel = 0
	}
	return int64(idx), rel
}
