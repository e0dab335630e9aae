// Package scenarios registers the built-in cast scenarios and runs them.
// Import it for its side effects to populate the registry.
package scenarios

import (
	"github.com/vovakirdan/crisscross/internal/config"
	"github.com/vovakirdan/crisscross/internal/registry"
)

func init() {
	registry.Register("ray-30", func() registry.Scenario {
		return registry.Scenario{Title: "Ray at 30° from a tile centre", Kind: registry.KindRay, Scene: scene(1, 0.5, 1, 0.5, 30)}
	})
	registry.Register("ray-0-corner", func() registry.Scenario {
		return registry.Scenario{Title: "Ray along the bottom row", Kind: registry.KindRay, Scene: scene(0, 0, 0, 0, 0)}
	})
	registry.Register("ray-45", func() registry.Scenario {
		return registry.Scenario{Title: "Diagonal through tile corners", Kind: registry.KindRay, Scene: scene(1, 0.5, 1, 0.5, 45)}
	})
	registry.Register("ray-330", func() registry.Scenario {
		return registry.Scenario{Title: "Ray at 330° from the top row", Kind: registry.KindRay, Scene: scene(0, 0.25, 3, 0.25, 330)}
	})
	registry.Register("crossing-x2", func() registry.Scenario {
		s := scene(0, 0, 0, 0, 0)
		s.Region = config.RegionConfig{Enabled: true, MaxX: 2, MaxY: 3}
		return registry.Scenario{Title: "Crossing out of x <= 2", Kind: registry.KindCrossing, Scene: s}
	})
	registry.Register("crossing-30", func() registry.Scenario {
		s := scene(0, 0, 0, 0, 30)
		s.Region = config.RegionConfig{Enabled: true, MaxX: 3, MaxY: 1}
		return registry.Scenario{Title: "Crossing out of the two bottom rows", Kind: registry.KindCrossing, Scene: s}
	})
	registry.Register("beam-0", func() registry.Scenario {
		s := scene(1, 0.5, 1, 0.5, 0)
		s.Beam = config.BeamConfig{Enabled: true, Width: 0.8}
		return registry.Scenario{Title: "Narrow beam to the right", Kind: registry.KindBeam, Scene: s}
	})
	registry.Register("beam-wide-120", func() registry.Scenario {
		s := scene(1, 0.5, 1, 0.5, 120)
		s.Beam = config.BeamConfig{Enabled: true, Width: 2}
		return registry.Scenario{Title: "Two tile beam up and left", Kind: registry.KindBeam, Scene: s}
	})
}

func scene(x uint32, relX float64, y uint32, relY float64, deg float64) config.Scene {
	s := config.DefaultScene()
	s.Origin = config.PositionConfig{X: x, RelX: relX, Y: y, RelY: relY}
	s.Angle = deg
	s.Region = config.RegionConfig{}
	return s
}
