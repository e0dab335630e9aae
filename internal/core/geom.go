// Package core provides the coordinate types the traversal engine is built on:
// angles, the tile grid, tile positions and world coordinates.
// It contains no external dependencies to keep the geometry pure and testable.
package core

import "math"

// Epsilon is the single tolerance used for every float comparison in the
// engine, including quadrant classification of angles.
const Epsilon = 1e-9

// Precision (decimal places) applied when coordinate types are constructed.
const (
	TilePositionPrecision = 8
	WorldPrecision        = 8
)

// Round rounds n to the given number of decimal places.
func Round(n float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	r := math.Round(n*factor) / factor
	if r == 0 {
		// Avoid -0 leaking into equality checks and labels
		return 0
	}
	return r
}

// FloatsEqual reports whether a and b differ by less than Epsilon.
func FloatsEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
