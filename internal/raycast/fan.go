package raycast

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/crisscross/internal/core"
)

// RayPrecision is the rounding applied to the perpendicular unit vector of a fan.
const RayPrecision = 8

// ErrInvalidBeamWidth is returned when a beam width is not a positive finite number.
var ErrInvalidBeamWidth = errors.New("invalid beam width")

// RaysFrom builds a fan of parallel rays centred on center and spread across
// width, perpendicular to angle. Each side of the centre ray gets at least one
// ray, and one more per tile of width. Rays whose origin would fall outside
// the grid are dropped, so the fan may be lopsided near the edges.
func RaysFrom(center core.TilePosition, grid core.Grid, width float64, angle core.Angle) ([]*Ray, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBeamWidth, width)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := angle.Validate(); err != nil {
		return nil, err
	}

	centerWC := center.World(grid.TileSize)

	left := angle.Opposite()
	sin := core.Round(left.Sin(), RayPrecision)
	cos := core.Round(left.Cos(), RayPrecision)

	// a tile size below 1 floors to 0 and yields +Inf; fall back to one section
	sectionsF := math.Ceil(math.Max(math.Ceil(width)/math.Floor(grid.TileSize), 1))
	if math.IsInf(sectionsF, 0) {
		sectionsF = 1
	}
	sectionWidth := (width / 2) / sectionsF
	sections := int(sectionsF)

	// a vertical perpendicular (casting at 270°) mirrors like Right so the
	// fan keeps its index order across that angle
	fx, fy := -1.0, 1.0
	if left.DirectionX() == core.Left {
		fx = 1
	}
	if left.DirectionY() == core.Down {
		fy = -1
	}

	rays := make([]*Ray, 0, 2*sections+1)
	for idx := -sections; idx <= sections; idx++ {
		l := sectionWidth * float64(idx)
		wc, ok := centerWC.Translated(sin*l*fx, cos*l*fy).BoundsChecked(grid)
		if !ok {
			continue
		}
		tp, err := wc.ToTilePosition()
		if err != nil {
			continue
		}
		r, err := NewRay(grid, tp, angle)
		if err != nil {
			return nil, err
		}
		rays = append(rays, r)
	}
	return rays, nil
}
