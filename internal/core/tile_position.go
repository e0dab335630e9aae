package core

import "fmt"

// TilePosition is a tile index plus a fractional offset from the tile's
// lower-left corner. Offsets are rounded to TilePositionPrecision decimals.
type TilePosition struct {
	X    uint32
	Y    uint32
	RelX float64
	RelY float64
}

// NewTilePosition creates a tile position with rounded offsets.
func NewTilePosition(x, y uint32, relX, relY float64) TilePosition {
	return TilePosition{
		X:    x,
		Y:    y,
		RelX: Round(relX, TilePositionPrecision),
		RelY: Round(relY, TilePositionPrecision),
	}
}

// Equal compares indices exactly and offsets at TilePositionPrecision.
func (tp TilePosition) Equal(other TilePosition) bool {
	return tp.X == other.X && tp.Y == other.Y &&
		Round(tp.RelX, TilePositionPrecision) == Round(other.RelX, TilePositionPrecision) &&
		Round(tp.RelY, TilePositionPrecision) == Round(other.RelY, TilePositionPrecision)
}

// SameTile reports whether both positions refer to the same tile index.
func (tp TilePosition) SameTile(other TilePosition) bool {
	return tp.X == other.X && tp.Y == other.Y
}

// World converts the position into world coordinates.
func (tp TilePosition) World(tileSize float64) WorldCoords {
	return WorldFromTile(tp, tileSize)
}

// Distance returns the world distance between two tile positions.
func (tp TilePosition) Distance(other TilePosition, tileSize float64) float64 {
	return tp.World(tileSize).Distance(other.World(tileSize))
}

// Sub returns tp - other component-wise.
func (tp TilePosition) Sub(other TilePosition) SignedTilePosition {
	return NewSignedTilePosition(
		int64(tp.X)-int64(other.X),
		int64(tp.Y)-int64(other.Y),
		tp.RelX-other.RelX,
		tp.RelY-other.RelY,
	)
}

// Add returns tp + delta component-wise. The offsets of the result are not
// folded back into [0, tileSize); convert through WorldFromSigned for that.
func (tp TilePosition) Add(delta SignedTilePosition) SignedTilePosition {
	return NewSignedTilePosition(
		int64(tp.X)+delta.X,
		int64(tp.Y)+delta.Y,
		tp.RelX+delta.RelX,
		tp.RelY+delta.RelY,
	)
}

// Rounded returns a copy with offsets rounded to the given decimals.
func (tp TilePosition) Rounded(decimals int) TilePosition {
	return TilePosition{X: tp.X, Y: tp.Y, RelX: Round(tp.RelX, decimals), RelY: Round(tp.RelY, decimals)}
}

// String formats the position as "(x, relx)/(y, rely)".
func (tp TilePosition) String() string {
	return fmt.Sprintf("(%d, %.3f)/(%d, %.3f)", tp.X, tp.RelX, tp.Y, tp.RelY)
}

// SignedTilePosition is a TilePosition whose indices may be negative.
// It is used for deltas and for positions that may have left the grid.
type SignedTilePosition struct {
	X    int64
	Y    int64
	RelX float64
	RelY float64
}

// NewSignedTilePosition creates a signed tile position with rounded offsets.
func NewSignedTilePosition(x, y int64, relX, relY float64) SignedTilePosition {
	return SignedTilePosition{
		X:    x,
		Y:    y,
		RelX: Round(relX, TilePositionPrecision),
		RelY: Round(relY, TilePositionPrecision),
	}
}

// ToTilePosition narrows to an unsigned position.
// Returns ErrOffGrid when either index is negative.
func (stp SignedTilePosition) ToTilePosition() (TilePosition, error) {
	if stp.X < 0 || stp.Y < 0 {
		return TilePosition{}, fmt.Errorf("%w: (%d, %d)", ErrOffGrid, stp.X, stp.Y)
	}
	if stp.X > int64(^uint32(0)) || stp.Y > int64(^uint32(0)) {
		return TilePosition{}, fmt.Errorf("%w: (%d, %d)", ErrOffGrid, stp.X, stp.Y)
	}
	return TilePosition{X: uint32(stp.X), Y: uint32(stp.Y), RelX: stp.RelX, RelY: stp.RelY}, nil
}

// NormalizeZeros snaps offsets within Epsilon of zero to exactly zero.
func (stp *SignedTilePosition) NormalizeZeros() {
	if FloatsEqual(stp.RelX, 0) {
		stp.RelX = 0
	}
	if FloatsEqual(stp.RelY, 0) {
		stp.RelY = 0
	}
}

// Equal compares indices exactly and offsets at TilePositionPrecision.
func (stp SignedTilePosition) Equal(other SignedTilePosition) bool {
	return stp.X == other.X && stp.Y == other.Y &&
		Round(stp.RelX, TilePositionPrecision) == Round(other.RelX, TilePositionPrecision) &&
		Round(stp.RelY, TilePositionPrecision) == Round(other.RelY, TilePositionPrecision)
}

// Rounded returns a copy with offsets rounded to the given decimals.
func (stp SignedTilePosition) Rounded(decimals int) SignedTilePosition {
	return SignedTilePosition{X: stp.X, Y: stp.Y, RelX: Round(stp.RelX, decimals), RelY: Round(stp.RelY, decimals)}
}

func (stp SignedTilePosition) String() string {
	return fmt.Sprintf("(%d, %.3f)/(%d, %.3f)", stp.X, stp.RelX, stp.Y, stp.RelY)
}
