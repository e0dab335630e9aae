package config

import (
	_ "embed"
)

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultScene returns the hard-coded default scene.
func DefaultScene() Scene {
	return Scene{
		Name: "default",
		Grid: GridConfig{
			Cols:     4,
			Rows:     4,
			TileSize: 1.0,
		},
		Origin: PositionConfig{
			X:    1,
			RelX: 0.5,
			Y:    1,
			RelY: 0.5,
		},
		Angle: 30,
		Beam: BeamConfig{
			Enabled: false,
			Width:   0.8,
		},
		Region: RegionConfig{
			Enabled: true,
			MaxX:    3,
			MaxY:    1,
		},
		Canvas: CanvasConfig{
			Scale: 8,
		},
	}
}

// DefaultSceneYAML returns the embedded default scene file.
func DefaultSceneYAML() []byte {
	return defaultSceneYAML
}
