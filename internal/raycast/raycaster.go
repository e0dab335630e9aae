package raycast

import "github.com/vovakirdan/crisscross/internal/core"

// Crossing is the boundary between tiles that satisfy a predicate and the
// first tile that does not. Either side may be nil.
type Crossing struct {
	Valid   *core.TilePosition
	Invalid *core.TilePosition
}

// TileRaycaster runs ray and beam queries against a fixed grid.
// It holds no mutable state and is safe for concurrent use.
type TileRaycaster struct {
	grid core.Grid
}

// NewTileRaycaster validates the grid and returns a raycaster for it.
func NewTileRaycaster(grid core.Grid) (*TileRaycaster, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return &TileRaycaster{grid: grid}, nil
}

// Grid returns the grid the raycaster operates on.
func (tr *TileRaycaster) Grid() core.Grid {
	return tr.grid
}

// CastRay starts a ray at origin.
func (tr *TileRaycaster) CastRay(origin core.TilePosition, angle core.Angle) (*RayIter, error) {
	r, err := NewRay(tr.grid, origin, angle)
	if err != nil {
		return nil, err
	}
	return r.Iter(), nil
}

// CastBeam starts a beam of the given width centred on center.
func (tr *TileRaycaster) CastBeam(center core.TilePosition, width float64, angle core.Angle) (*BeamIter, error) {
	rays, err := RaysFrom(center, tr.grid, width, angle)
	if err != nil {
		return nil, err
	}
	return NewBeam(tr.grid, rays).Iter(), nil
}

// LastValid returns the last tile of the leading run accepted by valid.
// The bool is false when the first crossed tile is already invalid or the
// ray crosses nothing.
func (tr *TileRaycaster) LastValid(origin core.TilePosition, angle core.Angle, valid func(core.TilePosition) bool) (core.TilePosition, bool, error) {
	it, err := tr.CastRay(origin, angle)
	if err != nil {
		return core.TilePosition{}, false, err
	}
	var (
		last  core.TilePosition
		found bool
	)
	for tp := range it.All() {
		if !valid(tp) {
			break
		}
		last, found = tp, true
	}
	return last, found, nil
}

// FirstInvalid returns the first crossed tile rejected by valid.
func (tr *TileRaycaster) FirstInvalid(origin core.TilePosition, angle core.Angle, valid func(core.TilePosition) bool) (core.TilePosition, bool, error) {
	it, err := tr.CastRay(origin, angle)
	if err != nil {
		return core.TilePosition{}, false, err
	}
	for tp := range it.All() {
		if !valid(tp) {
			return tp, true, nil
		}
	}
	return core.TilePosition{}, false, nil
}

// BeamLastValid is LastValid for beams.
func (tr *TileRaycaster) BeamLastValid(center core.TilePosition, width float64, angle core.Angle, valid func(BeamIntersect) bool) (BeamIntersect, bool, error) {
	it, err := tr.CastBeam(center, width, angle)
	if err != nil {
		return BeamIntersect{}, false, err
	}
	var (
		last  BeamIntersect
		found bool
	)
	for bi := range it.All() {
		if !valid(bi) {
			break
		}
		last, found = bi, true
	}
	return last, found, nil
}

type crossingState uint8

const (
	crossingNotStarted crossingState = iota
	crossingScanning
	crossingDone
)

// Crossing walks the ray and reports the last valid tile together with the
// first invalid one after it. If the very first tile is invalid both sides
// are nil. If the ray never hits an invalid tile only Valid is set.
func (tr *TileRaycaster) Crossing(origin core.TilePosition, angle core.Angle, valid func(core.TilePosition) bool) (Crossing, error) {
	it, err := tr.CastRay(origin, angle)
	if err != nil {
		return Crossing{}, err
	}

	var (
		state = crossingNotStarted
		prev  core.TilePosition
		out   Crossing
	)
	for state != crossingDone {
		tp, ok := it.Next()
		switch state {
		case crossingNotStarted:
			if !ok || !valid(tp) {
				state = crossingDone
				continue
			}
			prev, state = tp, crossingScanning
		case crossingScanning:
			switch {
			case !ok:
				out.Valid = &prev
				state = crossingDone
			case valid(tp):
				prev = tp
			default:
				out.Valid, out.Invalid = &prev, &tp
				state = crossingDone
			}
		}
	}
	return out, nil
}
