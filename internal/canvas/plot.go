package canvas

import (
	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/raycast"
)

// Glyphs used by the plotters.
const (
	RuneCorner   = '+'
	RuneHLine    = '-'
	RuneVLine    = '|'
	RuneTrace    = '.'
	RuneCrossing = '*'
	RuneOrigin   = '@'
	RuneFanStart = 'o'
	RuneTile     = '░'
)

// rowsPerTile is the number of canvas rows one tile spans.
func (c *Canvas) rowsPerTile() int {
	return c.scale / 2
}

// PlotGrid draws tile boundaries.
func (c *Canvas) PlotGrid() {
	rpt := c.rowsPerTile()
	for j := 0; j <= int(c.grid.Rows); j++ {
		c.DrawHLine(0, c.height-1-j*rpt, c.width, RuneHLine, ColorGrid)
	}
	for i := 0; i <= int(c.grid.Cols); i++ {
		x := i * c.scale
		c.DrawVLine(x, 0, c.height, RuneVLine, ColorGrid)
		for j := 0; j <= int(c.grid.Rows); j++ {
			c.Set(x, c.height-1-j*rpt, RuneCorner, ColorGrid)
		}
	}
}

// HighlightTile fills the interior of the tile containing tp.
func (c *Canvas) HighlightTile(tp core.TilePosition, color Color) {
	rpt := c.rowsPerTile()
	left := int(tp.X) * c.scale
	bottom := c.height - 1 - int(tp.Y)*rpt
	for y := bottom - rpt + 1; y < bottom; y++ {
		c.DrawHLine(left+1, y, c.scale-1, RuneTile, color)
	}
}

// PlotLine traces a straight segment between two world points.
func (c *Canvas) PlotLine(from, to core.WorldCoords, color Color) {
	x0, y0 := c.CellOf(from)
	x1, y1 := c.CellOf(to)
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		c.Set(x0, y0, RuneTrace, color)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + divRound(dx*i, steps)
		y := y0 + divRound(dy*i, steps)
		c.Set(x, y, RuneTrace, color)
	}
}

// PlotOrigin marks a cast origin.
func (c *Canvas) PlotOrigin(tp core.TilePosition) {
	x, y := c.CellOf(tp.World(c.grid.TileSize))
	c.Set(x, y, RuneOrigin, ColorOrigin)
}

// PlotTiles marks every crossing point in tps.
func (c *Canvas) PlotTiles(tps []core.TilePosition, color Color) {
	for _, tp := range tps {
		x, y := c.CellOf(tp.World(c.grid.TileSize))
		c.Set(x, y, RuneCrossing, color)
	}
}

// PlotRay draws a single cast: the trace from origin to the last crossing,
// the crossings themselves and the origin on top.
func (c *Canvas) PlotRay(origin core.TilePosition, tps []core.TilePosition) {
	if len(tps) > 0 {
		c.PlotLine(origin.World(c.grid.TileSize), tps[len(tps)-1].World(c.grid.TileSize), ColorRay)
	}
	c.PlotTiles(tps, ColorCrossing)
	c.PlotOrigin(origin)
}

// PlotBeam draws a beam cast. Each fan ray gets its own color, taken from
// the ray index carried by its crossings.
func (c *Canvas) PlotBeam(center core.TilePosition, origins []core.TilePosition, intersects []raycast.BeamIntersect) {
	last := make(map[int]core.TilePosition, len(origins))
	for _, bi := range intersects {
		last[bi.Ray] = bi.Tile
	}
	for i, o := range origins {
		if end, ok := last[i]; ok {
			c.PlotLine(o.World(c.grid.TileSize), end.World(c.grid.TileSize), RayColor(i))
		}
	}
	for _, bi := range intersects {
		x, y := c.CellOf(bi.Tile.World(c.grid.TileSize))
		c.Set(x, y, RuneCrossing, RayColor(bi.Ray))
	}
	for _, o := range origins {
		x, y := c.CellOf(o.World(c.grid.TileSize))
		c.Set(x, y, RuneFanStart, ColorOrigin)
	}
	c.PlotOrigin(center)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// divRound divides with rounding half away from zero.
func divRound(n, d int) int {
	if (n < 0) != (d < 0) {
		return -((abs(n) + abs(d)/2) / abs(d))
	}
	return (abs(n) + abs(d)/2) / abs(d)
}
