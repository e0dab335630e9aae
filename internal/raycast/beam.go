package raycast

import (
	"fmt"

	"github.com/vovakirdan/crisscross/internal/core"
)

// BeamIntersect is a tile crossing produced by the ray at index Ray of a beam.
type BeamIntersect struct {
	Ray  int
	Tile core.TilePosition
}

// Equal compares ray index and tile position.
func (bi BeamIntersect) Equal(other BeamIntersect) bool {
	return bi.Ray == other.Ray && bi.Tile.Equal(other.Tile)
}

func (bi BeamIntersect) String() string {
	return fmt.Sprintf("%d:%s", bi.Ray, bi.Tile)
}

type fanMember struct {
	ray     *RayIter
	origin  core.TilePosition
	pending core.TilePosition
	valid   bool
}

// Beam merges the crossings of several rays into one stream ordered by the
// distance of each crossing from its own ray's origin.
type Beam struct {
	tileSize float64
	members  []fanMember
}

// NewBeam primes every ray with its first crossing.
func NewBeam(grid core.Grid, rays []*Ray) *Beam {
	b := &Beam{
		tileSize: grid.TileSize,
		members:  make([]fanMember, len(rays)),
	}
	for i, r := range rays {
		m := fanMember{ray: r.Iter(), origin: r.Origin()}
		m.pending, m.valid = m.ray.Next()
		b.members[i] = m
	}
	return b
}

// Len returns the number of rays in the beam.
func (b *Beam) Len() int { return len(b.members) }

// Origins returns the origin of every ray, in ray index order.
func (b *Beam) Origins() []core.TilePosition {
	out := make([]core.TilePosition, len(b.members))
	for i, m := range b.members {
		out[i] = m.origin
	}
	return out
}

// Iter wraps the beam in a de-duplicating iterator.
func (b *Beam) Iter() *BeamIter {
	return &BeamIter{beam: b}
}

// nextIntersect emits the nearest pending crossing and advances every ray
// whose pending crossing lies in the same tile. Ties go to the lowest index.
func (b *Beam) nextIntersect() (BeamIntersect, bool) {
	best := -1
	var bestDist float64
	for i := range b.members {
		m := &b.members[i]
		if !m.valid {
			continue
		}
		d := m.origin.Distance(m.pending, b.tileSize)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return BeamIntersect{}, false
	}

	out := BeamIntersect{Ray: best, Tile: b.members[best].pending}
	for i := range b.members {
		m := &b.members[i]
		if m.valid && m.pending.SameTile(out.Tile) {
			m.pending, m.valid = m.ray.Next()
		}
	}
	return out, true
}
