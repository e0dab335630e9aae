package raycast_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/raycast"
)

func fanOrigins(t *testing.T, center core.TilePosition, cols uint32, width, deg float64) []core.TilePosition {
	t.Helper()
	grid, err := core.NewGrid(cols, cols, 1)
	if err != nil {
		t.Fatal(err)
	}
	rays, err := raycast.RaysFrom(center, grid, width, core.FromDegrees(deg))
	if err != nil {
		t.Fatal(err)
	}
	out := make([]core.TilePosition, len(rays))
	for i, r := range rays {
		out[i] = r.Origin().Rounded(3)
	}
	return out
}

func TestRaysFromNarrowBeam(t *testing.T) {
	center := pos(1, 0.5, 1, 0.5)
	tests := []struct {
		deg      float64
		expected []core.TilePosition
	}{
		{0, []core.TilePosition{pos(1, 0.5, 1, 0.9), center, pos(1, 0.5, 1, 0.1)}},
		{180, []core.TilePosition{pos(1, 0.5, 1, 0.1), center, pos(1, 0.5, 1, 0.9)}},
		{90, []core.TilePosition{pos(1, 0.1, 1, 0.5), center, pos(1, 0.9, 1, 0.5)}},
		{270, []core.TilePosition{pos(1, 0.9, 1, 0.5), center, pos(1, 0.1, 1, 0.5)}},
		{45, []core.TilePosition{pos(1, 0.217, 1, 0.783), center, pos(1, 0.783, 1, 0.217)}},
		{120, []core.TilePosition{pos(1, 0.154, 1, 0.3), center, pos(1, 0.846, 1, 0.7)}},
		{225, []core.TilePosition{pos(1, 0.783, 1, 0.217), center, pos(1, 0.217, 1, 0.783)}},
		{315, []core.TilePosition{pos(1, 0.217, 1, 0.783), center, pos(1, 0.783, 1, 0.217)}},
	}

	for _, tc := range tests {
		if got := fanOrigins(t, center, 4, 0.8, tc.deg); !equalTiles(got, tc.expected) {
			t.Errorf("%v deg: origins = %v, expected %v", tc.deg, got, tc.expected)
		}
	}
}

func TestRaysFromOrderAcrossVerticalPerpendicular(t *testing.T) {
	center := pos(1, 0.5, 1, 0.5)
	for _, deg := range []float64{269.9, 270} {
		got := fanOrigins(t, center, 4, 0.8, deg)
		if len(got) != 3 {
			t.Fatalf("%v deg: %d origins, expected 3", deg, len(got))
		}
		if got[0].RelX <= 0.5 || got[2].RelX >= 0.5 {
			t.Errorf("%v deg: origins = %v, expected ray 0 on the +x side", deg, got)
		}
	}
}

func TestRaysFromTileWideBeam(t *testing.T) {
	center := pos(1, 0.5, 1, 0.5)
	tests := []struct {
		width    float64
		deg      float64
		expected []core.TilePosition
	}{
		{1, 0, []core.TilePosition{pos(1, 0.5, 2, 0), center, pos(1, 0.5, 1, 0)}},
		{1, 120, []core.TilePosition{pos(1, 0.067, 1, 0.25), center, pos(1, 0.933, 1, 0.75)}},
		{2, 0, []core.TilePosition{
			pos(1, 0.5, 2, 0.5), pos(1, 0.5, 2, 0), center, pos(1, 0.5, 1, 0), pos(1, 0.5, 0, 0.5),
		}},
		{2, 120, []core.TilePosition{
			pos(0, 0.634, 1, 0), pos(1, 0.067, 1, 0.25), center, pos(1, 0.933, 1, 0.75), pos(2, 0.366, 2, 0),
		}},
	}

	for _, tc := range tests {
		if got := fanOrigins(t, center, 4, tc.width, tc.deg); !equalTiles(got, tc.expected) {
			t.Errorf("width %v at %v deg: origins = %v, expected %v", tc.width, tc.deg, got, tc.expected)
		}
	}
}

func TestRaysFromDropsOffGridOrigins(t *testing.T) {
	tests := []struct {
		name     string
		center   core.TilePosition
		width    float64
		deg      float64
		expected []core.TilePosition
	}{
		{
			name:     "corner",
			center:   pos(0, 0, 0, 0),
			width:    0.8,
			deg:      0,
			expected: []core.TilePosition{pos(0, 0, 0, 0.4), pos(0, 0, 0, 0)},
		},
		{
			name:   "wider than grid",
			center: pos(1, 0.5, 1, 0.5),
			width:  10,
			deg:    0,
			expected: []core.TilePosition{
				pos(1, 0.5, 3, 0.5), pos(1, 0.5, 3, 0), pos(1, 0.5, 2, 0.5), pos(1, 0.5, 2, 0),
				pos(1, 0.5, 1, 0.5), pos(1, 0.5, 1, 0), pos(1, 0.5, 0, 0.5), pos(1, 0.5, 0, 0),
			},
		},
		{
			name:   "wider than grid going up",
			center: pos(2, 0.5, 2, 0.5),
			width:  10,
			deg:    90,
			expected: []core.TilePosition{
				pos(0, 0, 2, 0.5), pos(0, 0.5, 2, 0.5), pos(1, 0, 2, 0.5), pos(1, 0.5, 2, 0.5),
				pos(2, 0, 2, 0.5), pos(2, 0.5, 2, 0.5), pos(3, 0, 2, 0.5), pos(3, 0.5, 2, 0.5),
			},
		},
		{
			name:   "diagonal from the left edge",
			center: pos(0, 0.5, 2, 0.5),
			width:  10,
			deg:    315,
			expected: []core.TilePosition{
				pos(0, 0.146, 2, 0.854), pos(0, 0.5, 2, 0.5), pos(0, 0.854, 2, 0.146),
				pos(1, 0.207, 1, 0.793), pos(1, 0.561, 1, 0.439), pos(1, 0.914, 1, 0.086),
				pos(2, 0.268, 0, 0.732), pos(2, 0.621, 0, 0.379), pos(2, 0.975, 0, 0.025),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fanOrigins(t, tc.center, 4, tc.width, tc.deg); !equalTiles(got, tc.expected) {
				t.Errorf("origins = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRaysFromInvalidWidth(t *testing.T) {
	grid, _ := core.NewGrid(4, 4, 1)
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := raycast.RaysFrom(pos(1, 0.5, 1, 0.5), grid, w, 0); !errors.Is(err, raycast.ErrInvalidBeamWidth) {
			t.Errorf("RaysFrom(width=%v) error = %v, expected ErrInvalidBeamWidth", w, err)
		}
	}
}

func castBeam(t *testing.T, tr *raycast.TileRaycaster, center core.TilePosition, width, deg float64) []raycast.BeamIntersect {
	t.Helper()
	it, err := tr.CastBeam(center, width, core.FromDegrees(deg))
	if err != nil {
		t.Fatal(err)
	}
	out := it.Collect()
	for i := range out {
		out[i].Tile = out[i].Tile.Rounded(3)
	}
	return out
}

func equalIntersects(a, b []raycast.BeamIntersect) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestCastBeam(t *testing.T) {
	tr := newRaycaster(t, 4, 4)
	center := pos(1, 0.5, 1, 0.5)

	tests := []struct {
		name     string
		deg      float64
		expected []raycast.BeamIntersect
	}{
		{"0 deg", 0, []raycast.BeamIntersect{
			{Ray: 0, Tile: pos(2, 0, 1, 0.9)},
			{Ray: 0, Tile: pos(3, 0, 1, 0.9)},
		}},
		{"90 deg", 90, []raycast.BeamIntersect{
			{Ray: 0, Tile: pos(1, 0.1, 2, 0)},
			{Ray: 0, Tile: pos(1, 0.1, 3, 0)},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := castBeam(t, tr, center, 0.8, tc.deg); !equalIntersects(got, tc.expected) {
				t.Errorf("CastBeam() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCastBeamProperties(t *testing.T) {
	tr := newRaycaster(t, 6, 6)
	grid := tr.Grid()

	for deg := 0.0; deg < 360; deg += 15 {
		for _, width := range []float64{0.5, 1, 2.5} {
			it, err := tr.CastBeam(pos(3, 0.5, 3, 0.5), width, core.FromDegrees(deg))
			if err != nil {
				t.Fatal(err)
			}
			n := it.Beam().Len()
			out := it.Collect()
			for i, bi := range out {
				if bi.Ray < 0 || bi.Ray >= n {
					t.Fatalf("%v deg width %v: ray index %d out of range", deg, width, bi.Ray)
				}
				if !grid.InBounds(bi.Tile.X, bi.Tile.Y) {
					t.Fatalf("%v deg width %v: %v out of bounds", deg, width, bi)
				}
				if i > 0 && bi.Tile.SameTile(out[i-1].Tile) {
					t.Fatalf("%v deg width %v: repeated tile %v", deg, width, bi)
				}
			}
		}
	}
}

func TestBeamLastValid(t *testing.T) {
	tr := newRaycaster(t, 4, 4)
	got, ok, err := tr.BeamLastValid(pos(0, 0, 0, 0), 2, core.FromDegrees(30), func(bi raycast.BeamIntersect) bool {
		return bi.Tile.Y < 2
	})
	if err != nil {
		t.Fatal(err)
	}
	got.Tile = got.Tile.Rounded(3)
	expected := raycast.BeamIntersect{Ray: 0, Tile: pos(3, 0, 1, 0.732)}
	if !ok || !got.Equal(expected) {
		t.Errorf("BeamLastValid() = %v, %v, expected %v", got, ok, expected)
	}
}

func TestCastBeamInvalidWidth(t *testing.T) {
	tr := newRaycaster(t, 4, 4)
	if _, err := tr.CastBeam(pos(1, 0.5, 1, 0.5), 0, 0); !errors.Is(err, raycast.ErrInvalidBeamWidth) {
		t.Errorf("CastBeam() error = %v, expected ErrInvalidBeamWidth", err)
	}
}

func TestNewBeamWithoutRays(t *testing.T) {
	grid, _ := core.NewGrid(4, 4, 1)
	it := raycast.NewBeam(grid, nil).Iter()
	if _, ok := it.Next(); ok {
		t.Error("empty beam should yield nothing")
	}
}
