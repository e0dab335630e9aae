package scenarios

import (
	"fmt"

	"github.com/vovakirdan/crisscross/internal/config"
	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/raycast"
	"github.com/vovakirdan/crisscross/internal/registry"
	"github.com/vovakirdan/crisscross/internal/storage"
)

// Result holds everything a scenario run produced.
type Result struct {
	Kind  registry.Kind
	Scene config.Scene

	// Tiles is the full ray cast for ray and crossing runs.
	Tiles []core.TilePosition

	// Origins and Intersects are set for beam runs.
	Origins    []core.TilePosition
	Intersects []raycast.BeamIntersect

	// Crossing is set for crossing runs.
	Crossing raycast.Crossing
}

// Run casts the scenario's scene with its kind.
func Run(sc registry.Scenario) (Result, error) {
	return Cast(sc.Scene, sc.Kind)
}

// Cast runs the query selected by kind against scene.
func Cast(scene config.Scene, kind registry.Kind) (Result, error) {
	if !kind.Valid() {
		return Result{}, fmt.Errorf("scenarios: unknown kind %q", kind)
	}
	if err := scene.Validate(); err != nil {
		return Result{}, err
	}
	grid, err := scene.GridValue()
	if err != nil {
		return Result{}, err
	}
	tr, err := raycast.NewTileRaycaster(grid)
	if err != nil {
		return Result{}, err
	}

	res := Result{Kind: kind, Scene: scene}
	origin := scene.OriginPosition()
	angle := scene.AngleValue()

	switch kind {
	case registry.KindBeam:
		it, err := tr.CastBeam(origin, scene.Beam.Width, angle)
		if err != nil {
			return Result{}, err
		}
		res.Origins = it.Beam().Origins()
		res.Intersects = it.Collect()
	default:
		it, err := tr.CastRay(origin, angle)
		if err != nil {
			return Result{}, err
		}
		res.Tiles = it.Collect()
		if kind == registry.KindCrossing {
			res.Crossing, err = tr.Crossing(origin, angle, scene.Predicate())
			if err != nil {
				return Result{}, err
			}
		}
	}
	return res, nil
}

// Records flattens the result into rows for the cast store. Ray and crossing
// runs record the ray tiles with ray index 0.
func (r Result) Records() []storage.TileRecord {
	if r.Kind == registry.KindBeam {
		out := make([]storage.TileRecord, len(r.Intersects))
		for i, bi := range r.Intersects {
			out[i] = record(i, bi.Ray, bi.Tile)
		}
		return out
	}
	out := make([]storage.TileRecord, len(r.Tiles))
	for i, tp := range r.Tiles {
		out[i] = record(i, 0, tp)
	}
	return out
}

func record(seq, ray int, tp core.TilePosition) storage.TileRecord {
	return storage.TileRecord{Seq: seq, Ray: ray, X: tp.X, Y: tp.Y, RelX: tp.RelX, RelY: tp.RelY}
}
