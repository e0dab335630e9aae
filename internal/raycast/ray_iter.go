package raycast

import (
	"iter"

	"github.com/vovakirdan/crisscross/internal/core"
)

// RayIter yields the tiles crossed by a ray in order of distance from the
// origin. A crossing into the same tile as the previous one (a grid corner hit
// through both axes) is suppressed.
// RayIter is finite and cannot be restarted.
type RayIter struct {
	ray     *Ray
	last    [2]uint32
	started bool
}

// Next returns the next crossed tile, or false once the ray left the grid.
func (it *RayIter) Next() (core.TilePosition, bool) {
	for {
		tp, ok := it.ray.nextIntersect()
		if !ok {
			return core.TilePosition{}, false
		}
		xy := [2]uint32{tp.X, tp.Y}
		if it.started && xy == it.last {
			continue
		}
		it.started = true
		it.last = xy
		return tp, true
	}
}

// Ray returns the underlying ray.
func (it *RayIter) Ray() *Ray { return it.ray }

// All returns the remaining crossings as an iter.Seq.
func (it *RayIter) All() iter.Seq[core.TilePosition] {
	return func(yield func(core.TilePosition) bool) {
		for {
			tp, ok := it.Next()
			if !ok || !yield(tp) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *RayIter) Collect() []core.TilePosition {
	var out []core.TilePosition
	for tp := range it.All() {
		out = append(out, tp)
	}
	return out
}
