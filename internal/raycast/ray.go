// Package raycast walks rays and beams across a tile grid.
//
// A Ray visits every tile boundary crossing between its origin and the grid
// edge, nearest first. A Beam merges a fan of parallel rays into a single
// distance-ordered stream tagged with the index of the ray that produced each
// crossing. TileRaycaster wraps both behind a small query API.
//
// Iteration is pull based: RayIter and BeamIter expose Next and an iter.Seq
// adapter. Stopping early is just not pulling any more values.
package raycast

import (
	"fmt"

	"github.com/vovakirdan/crisscross/internal/core"
)

type axis uint8

const (
	axisX axis = iota
	axisY
)

// slot is a pending intersect that may be absent.
type slot struct {
	tp    core.TilePosition
	valid bool
}

// step is a fixed per-axis delta that may be absent (axis parallel).
type step struct {
	delta core.SignedTilePosition
	valid bool
}

// Ray is the DDA traversal state of a single ray.
// It is advanced by nextIntersect, which moves exactly one slot per call.
type Ray struct {
	grid   core.Grid
	origin core.TilePosition
	wc     core.WorldCoords
	angle  core.Angle
	tan    float64
	dirX   core.DirectionX
	dirY   core.DirectionY

	intersectX slot
	intersectY slot
	deltaX     step
	deltaY     step
}

// NewRay prepares a ray starting at origin. The angle is clamped to [0, 2π).
// Returns an error for an invalid grid, a NaN or infinite angle, or an origin
// outside the grid.
func NewRay(grid core.Grid, origin core.TilePosition, angle core.Angle) (*Ray, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := angle.Validate(); err != nil {
		return nil, err
	}
	if !grid.InBounds(origin.X, origin.Y) {
		return nil, fmt.Errorf("ray origin %s on %s: %w", origin, grid, core.ErrOffGrid)
	}

	clamped := angle.Clamp()
	r := &Ray{
		grid:   grid,
		origin: origin,
		wc:     origin.World(grid.TileSize),
		angle:  clamped,
		tan:    clamped.Tan(),
		dirX:   clamped.DirectionX(),
		dirY:   clamped.DirectionY(),
	}
	r.deltaX = r.xDelta()
	r.deltaY = r.yDelta()
	r.intersectX = r.initialX()
	r.intersectY = r.initialY()
	return r, nil
}

// Origin returns the tile position the ray starts from.
func (r *Ray) Origin() core.TilePosition { return r.origin }

// Angle returns the clamped angle of the ray.
func (r *Ray) Angle() core.Angle { return r.angle }

// Grid returns the grid the ray traverses.
func (r *Ray) Grid() core.Grid { return r.grid }

// Iter wraps the ray in a de-duplicating iterator.
func (r *Ray) Iter() *RayIter {
	return &RayIter{ray: r}
}

func (r *Ray) xDelta() step {
	var dx float64
	switch r.dirX {
	case core.Right:
		dx = r.grid.TileSize
	case core.Left:
		dx = -r.grid.TileSize
	default:
		return step{}
	}
	return r.delta(dx, r.tan*dx)
}

func (r *Ray) yDelta() step {
	var dy float64
	switch r.dirY {
	case core.Up:
		dy = r.grid.TileSize
	case core.Down:
		dy = -r.grid.TileSize
	default:
		return step{}
	}
	return r.delta(dy/r.tan, dy)
}

func (r *Ray) delta(dx, dy float64) step {
	stp := core.NewWorldCoords(dx, dy, r.grid.TileSize).ToSigned()
	stp.NormalizeZeros()
	return step{delta: stp, valid: true}
}

func (r *Ray) initialX() slot {
	var dx float64
	switch {
	case r.dirX == core.Left && r.origin.X == 0,
		r.dirX == core.Right && r.origin.X+1 == r.grid.Cols:
		return slot{}
	case r.dirX == core.Right:
		dx = r.grid.TileSize - r.origin.RelX
	case r.dirX == core.Left:
		dx = -r.origin.RelX
	default:
		return slot{}
	}
	return r.resolve(r.wc.Translated(dx, dx*r.tan))
}

func (r *Ray) initialY() slot {
	var dy float64
	switch {
	case r.dirY == core.Down && r.origin.Y == 0,
		r.dirY == core.Up && r.origin.Y+1 == r.grid.Rows:
		return slot{}
	case r.dirY == core.Up:
		dy = r.grid.TileSize - r.origin.RelY
	case r.dirY == core.Down:
		dy = -r.origin.RelY
	default:
		return slot{}
	}
	return r.resolve(r.wc.Translated(dy/r.tan, dy))
}

// resolve converts a crossing point to a tile position, attributing points on
// a grid line to the tile the ray is entering, and drops it if it is off grid.
func (r *Ray) resolve(wc core.WorldCoords) slot {
	stp := wc.ToSigned()
	r.normalize(&stp)
	tp, err := stp.ToTilePosition()
	if err != nil || !r.grid.InBounds(tp.X, tp.Y) {
		return slot{}
	}
	return slot{tp: tp, valid: true}
}

func (r *Ray) normalize(stp *core.SignedTilePosition) {
	if r.dirX == core.Left && core.FloatsEqual(stp.RelX, 0) {
		stp.X--
		stp.RelX += r.grid.TileSize
	}
	if r.dirY == core.Down && core.FloatsEqual(stp.RelY, 0) {
		stp.Y--
		stp.RelY += r.grid.TileSize
	}
	stp.NormalizeZeros()
}

// nextIntersect emits the pending crossing nearest to the origin and advances
// that slot. Equal distances advance the Y slot.
func (r *Ray) nextIntersect() (core.TilePosition, bool) {
	var next axis
	switch {
	case !r.intersectX.valid && !r.intersectY.valid:
		return core.TilePosition{}, false
	case !r.intersectX.valid:
		next = axisY
	case !r.intersectY.valid:
		next = axisX
	default:
		dx := r.origin.Distance(r.intersectX.tp, r.grid.TileSize)
		dy := r.origin.Distance(r.intersectY.tp, r.grid.TileSize)
		if dx < dy {
			next = axisX
		} else {
			next = axisY
		}
	}

	if next == axisX {
		tp := r.intersectX.tp
		r.intersectX = r.advance(r.intersectX, r.deltaX)
		return tp, true
	}
	tp := r.intersectY.tp
	r.intersectY = r.advance(r.intersectY, r.deltaY)
	return tp, true
}

func (r *Ray) advance(s slot, d step) slot {
	if !s.valid || !d.valid {
		return slot{}
	}
	// world round trip folds the summed offsets back into the tile
	return r.resolve(core.WorldFromSigned(s.tp.Add(d.delta), r.grid.TileSize))
}
