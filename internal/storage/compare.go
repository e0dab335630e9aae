package storage

import (
	"fmt"
	"math"
)

// CompareTolerance is the offset difference below which two tiles match.
const CompareTolerance = 1e-6

// Mismatch describes a difference between a recorded and a current cast.
// Recorded or Current is nil when one sequence is longer than the other.
type Mismatch struct {
	Seq      int
	Recorded *TileRecord
	Current  *TileRecord
}

func (m Mismatch) String() string {
	return fmt.Sprintf("#%d: recorded %s, current %s", m.Seq, describe(m.Recorded), describe(m.Current))
}

func describe(t *TileRecord) string {
	if t == nil {
		return "<none>"
	}
	return fmt.Sprintf("%d:(%d, %.3f)/(%d, %.3f)", t.Ray, t.X, t.RelX, t.Y, t.RelY)
}

// CompareTiles lists every position at which two tile sequences differ.
func CompareTiles(recorded, current []TileRecord) []Mismatch {
	var out []Mismatch
	n := max(len(recorded), len(current))
	for i := 0; i < n; i++ {
		var r, c *TileRecord
		if i < len(recorded) {
			r = &recorded[i]
		}
		if i < len(current) {
			c = &current[i]
		}
		if r != nil && c != nil && sameTile(*r, *c) {
			continue
		}
		out = append(out, Mismatch{Seq: i, Recorded: r, Current: c})
	}
	return out
}

func sameTile(a, b TileRecord) bool {
	return a.Ray == b.Ray && a.X == b.X && a.Y == b.Y &&
		math.Abs(a.RelX-b.RelX) < CompareTolerance &&
		math.Abs(a.RelY-b.RelY) < CompareTolerance
}
