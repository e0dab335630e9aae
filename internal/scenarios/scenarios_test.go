package scenarios

import (
	"strings"
	"testing"

	"github.com/vovakirdan/crisscross/internal/canvas"
	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/raycast"
	"github.com/vovakirdan/crisscross/internal/registry"
	"github.com/vovakirdan/crisscross/internal/storage"
)

func pos(x uint32, relX float64, y uint32, relY float64) core.TilePosition {
	return core.NewTilePosition(x, y, relX, relY)
}

func run(t *testing.T, id string) Result {
	t.Helper()
	sc, err := registry.Create(id)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(sc)
	if err != nil {
		t.Fatalf("Run(%s) failed: %v", id, err)
	}
	return res
}

func checkTiles(t *testing.T, got, expected []core.TilePosition) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("got %v, expected %v", got, expected)
	}
	for i := range got {
		if !got[i].Rounded(3).Equal(expected[i]) {
			t.Errorf("tile %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestBuiltinsValidate(t *testing.T) {
	for _, info := range registry.List() {
		sc, err := registry.Create(info.ID)
		if err != nil {
			t.Fatal(err)
		}
		if err := sc.Scene.Validate(); err != nil {
			t.Errorf("%s: %v", info.ID, err)
		}
		if !sc.Kind.Valid() {
			t.Errorf("%s: kind %q", info.ID, sc.Kind)
		}
	}
}

func TestRayScenarios(t *testing.T) {
	tests := []struct {
		id       string
		expected []core.TilePosition
	}{
		{"ray-30", []core.TilePosition{pos(2, 0, 1, 0.789), pos(2, 0.366, 2, 0), pos(3, 0, 2, 0.366)}},
		{"ray-0-corner", []core.TilePosition{pos(1, 0, 0, 0), pos(2, 0, 0, 0), pos(3, 0, 0, 0)}},
		{"ray-45", []core.TilePosition{pos(2, 0, 2, 0), pos(3, 0, 3, 0)}},
		{"ray-330", []core.TilePosition{
			pos(0, 0.683, 2, 1), pos(1, 0, 2, 0.817), pos(2, 0, 2, 0.240), pos(2, 0.415, 1, 1), pos(3, 0, 1, 0.662),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			checkTiles(t, run(t, tc.id).Tiles, tc.expected)
		})
	}
}

func TestCrossingScenarios(t *testing.T) {
	tests := []struct {
		id             string
		valid, invalid core.TilePosition
	}{
		{"crossing-x2", pos(2, 0, 0, 0), pos(3, 0, 0, 0)},
		{"crossing-30", pos(3, 0, 1, 0.732), pos(3, 0.464, 2, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			c := run(t, tc.id).Crossing
			if c.Valid == nil || !c.Valid.Rounded(3).Equal(tc.valid) {
				t.Errorf("Valid = %v, expected %v", c.Valid, tc.valid)
			}
			if c.Invalid == nil || !c.Invalid.Rounded(3).Equal(tc.invalid) {
				t.Errorf("Invalid = %v, expected %v", c.Invalid, tc.invalid)
			}
		})
	}
}

func TestBeamScenario(t *testing.T) {
	res := run(t, "beam-0")
	checkTiles(t, res.Origins, []core.TilePosition{pos(1, 0.5, 1, 0.9), pos(1, 0.5, 1, 0.5), pos(1, 0.5, 1, 0.1)})

	expected := []raycast.BeamIntersect{
		{Ray: 0, Tile: pos(2, 0, 1, 0.9)},
		{Ray: 0, Tile: pos(3, 0, 1, 0.9)},
	}
	if len(res.Intersects) != len(expected) {
		t.Fatalf("Intersects = %v, expected %v", res.Intersects, expected)
	}
	for i, bi := range res.Intersects {
		bi.Tile = bi.Tile.Rounded(3)
		if !bi.Equal(expected[i]) {
			t.Errorf("intersect %d = %v, expected %v", i, bi, expected[i])
		}
	}

	recs := res.Records()
	if len(recs) != 2 || recs[1].Seq != 1 || recs[1].X != 3 {
		t.Errorf("Records() = %+v", recs)
	}
}

func TestRecordsRoundTripThroughCompare(t *testing.T) {
	a := run(t, "ray-330").Records()
	b := run(t, "ray-330").Records()
	if m := storage.CompareTiles(a, b); len(m) != 0 {
		t.Errorf("repeated run differs: %v", m)
	}

	other := run(t, "ray-30").Records()
	if len(storage.CompareTiles(a, other)) == 0 {
		t.Error("different scenarios should not compare equal")
	}
}

func TestCastUnknownKind(t *testing.T) {
	sc, _ := registry.Create("ray-30")
	if _, err := Cast(sc.Scene, registry.Kind("cone")); err == nil {
		t.Error("Cast() should reject an unknown kind")
	}
}

func TestDrawCrossing(t *testing.T) {
	res := run(t, "crossing-x2")
	c, err := res.Draw(4)
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if c.Width() != 17 || c.Height() != 9 {
		t.Fatalf("canvas is %dx%d, expected 17x9", c.Width(), c.Height())
	}

	// First invalid crossing (3, 0)/(0, 0) sits on the bottom row
	if cell := c.GetCell(12, 8); cell.Rune != canvas.RuneCrossing || cell.Color != canvas.ColorInvalid {
		t.Errorf("invalid crossing cell = %+v", cell)
	}
	// Column 3 is outside the region
	if cell := c.GetCell(14, 1); cell.Color != canvas.ColorRegion {
		t.Errorf("out of region cell = %+v", cell)
	}
	if cell := c.GetCell(2, 1); cell.Rune != ' ' {
		t.Errorf("in region cell = %+v", cell)
	}
}

func TestDrawDefaultScale(t *testing.T) {
	res := run(t, "beam-0")
	c, err := res.Draw(0)
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if c.Scale() != res.Scene.Canvas.Scale {
		t.Errorf("Scale() = %d, expected %d", c.Scale(), res.Scene.Canvas.Scale)
	}
	if !strings.ContainsRune(c.String(), canvas.RuneFanStart) {
		t.Error("beam drawing should mark fan origins")
	}
}
