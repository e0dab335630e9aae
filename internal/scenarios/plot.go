package scenarios

import (
	"github.com/vovakirdan/crisscross/internal/canvas"
	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/registry"
)

// Draw renders the result onto a fresh canvas. A non-positive scale uses the
// scene's canvas scale.
func (r Result) Draw(scale int) (*canvas.Canvas, error) {
	grid, err := r.Scene.GridValue()
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = r.Scene.Canvas.Scale
	}
	c, err := canvas.NewCanvas(grid, scale)
	if err != nil {
		return nil, err
	}
	c.PlotGrid()

	if r.Kind == registry.KindCrossing {
		valid := r.Scene.Predicate()
		for y := uint32(0); y < grid.Rows; y++ {
			for x := uint32(0); x < grid.Cols; x++ {
				tp := core.NewTilePosition(x, y, 0, 0)
				switch {
				case r.Scene.IsBlocked(x, y):
					c.HighlightTile(tp, canvas.ColorBlocked)
				case !valid(tp):
					c.HighlightTile(tp, canvas.ColorRegion)
				}
			}
		}
	}

	origin := r.Scene.OriginPosition()
	switch r.Kind {
	case registry.KindBeam:
		c.PlotBeam(origin, r.Origins, r.Intersects)
	default:
		c.PlotRay(origin, r.Tiles)
		if r.Crossing.Invalid != nil {
			c.PlotTiles([]core.TilePosition{*r.Crossing.Invalid}, canvas.ColorInvalid)
		}
	}
	return c, nil
}
