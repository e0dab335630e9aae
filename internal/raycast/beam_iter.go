package raycast

import "iter"

// BeamIter yields beam crossings nearest first, skipping a crossing whose tile
// equals the previously emitted one.
type BeamIter struct {
	beam    *Beam
	last    [2]uint32
	started bool
}

// Next returns the next beam crossing, or false once every ray is exhausted.
func (it *BeamIter) Next() (BeamIntersect, bool) {
	for {
		bi, ok := it.beam.nextIntersect()
		if !ok {
			return BeamIntersect{}, false
		}
		xy := [2]uint32{bi.Tile.X, bi.Tile.Y}
		if it.started && xy == it.last {
			continue
		}
		it.started = true
		it.last = xy
		return bi, true
	}
}

// Beam returns the underlying beam.
func (it *BeamIter) Beam() *Beam { return it.beam }

// All returns the remaining crossings as an iter.Seq.
func (it *BeamIter) All() iter.Seq[BeamIntersect] {
	return func(yield func(BeamIntersect) bool) {
		for {
			bi, ok := it.Next()
			if !ok || !yield(bi) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *BeamIter) Collect() []BeamIntersect {
	var out []BeamIntersect
	for bi := range it.All() {
		out = append(out, bi)
	}
	return out
}
