// Package config provides YAML-based scene configuration for crisscross:
// the grid, the cast origin and angle, beam settings and the validity
// predicate used by crossing queries.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/crisscross/internal/core"
)

// ErrInvalidScene is returned when a scene fails validation.
var ErrInvalidScene = errors.New("config: invalid scene")

// Scene describes one cast setup.
type Scene struct {
	Name    string         `yaml:"name"`
	Grid    GridConfig     `yaml:"grid"`
	Origin  PositionConfig `yaml:"origin"`
	Angle   float64        `yaml:"angle"` // degrees, counter-clockwise from +x
	Beam    BeamConfig     `yaml:"beam"`
	Region  RegionConfig   `yaml:"region"`
	Blocked []TileConfig   `yaml:"blocked"`
	Canvas  CanvasConfig   `yaml:"canvas"`
}

// GridConfig defines the tile grid.
type GridConfig struct {
	Cols     uint32  `yaml:"cols"`
	Rows     uint32  `yaml:"rows"`
	TileSize float64 `yaml:"tile_size"`
}

// PositionConfig is a tile index plus offset within the tile.
type PositionConfig struct {
	X    uint32  `yaml:"x"`
	RelX float64 `yaml:"rel_x"`
	Y    uint32  `yaml:"y"`
	RelY float64 `yaml:"rel_y"`
}

// BeamConfig controls beam casting.
type BeamConfig struct {
	Enabled bool    `yaml:"enabled"`
	Width   float64 `yaml:"width"`
}

// RegionConfig is an inclusive rectangle of tiles considered valid.
// When disabled every tile is inside the region.
type RegionConfig struct {
	Enabled bool   `yaml:"enabled"`
	MinX    uint32 `yaml:"min_x"`
	MinY    uint32 `yaml:"min_y"`
	MaxX    uint32 `yaml:"max_x"`
	MaxY    uint32 `yaml:"max_y"`
}

// TileConfig addresses a single tile.
type TileConfig struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

// CanvasConfig controls the diagnostic renderer.
type CanvasConfig struct {
	Scale int `yaml:"scale"` // terminal columns per tile
}

// GridValue converts the grid section into a validated core.Grid.
func (s Scene) GridValue() (core.Grid, error) {
	return core.NewGrid(s.Grid.Cols, s.Grid.Rows, s.Grid.TileSize)
}

// OriginPosition returns the origin as a core.TilePosition.
func (s Scene) OriginPosition() core.TilePosition {
	return core.NewTilePosition(s.Origin.X, s.Origin.Y, s.Origin.RelX, s.Origin.RelY)
}

// AngleValue returns the configured angle in radians.
func (s Scene) AngleValue() core.Angle {
	return core.FromDegrees(s.Angle)
}

// Validate checks that the scene can be cast.
func (s Scene) Validate() error {
	g, err := s.GridValue()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if !g.InBounds(s.Origin.X, s.Origin.Y) {
		return fmt.Errorf("%w: origin (%d, %d) outside %s", ErrInvalidScene, s.Origin.X, s.Origin.Y, g)
	}
	if s.Origin.RelX < 0 || s.Origin.RelX >= g.TileSize || s.Origin.RelY < 0 || s.Origin.RelY >= g.TileSize {
		return fmt.Errorf("%w: origin offset (%v, %v) outside tile", ErrInvalidScene, s.Origin.RelX, s.Origin.RelY)
	}
	if err := s.AngleValue().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if s.Beam.Enabled && (s.Beam.Width <= 0 || math.IsNaN(s.Beam.Width) || math.IsInf(s.Beam.Width, 0)) {
		return fmt.Errorf("%w: beam width %v", ErrInvalidScene, s.Beam.Width)
	}
	if s.Region.Enabled && (s.Region.MinX > s.Region.MaxX || s.Region.MinY > s.Region.MaxY) {
		return fmt.Errorf("%w: empty region", ErrInvalidScene)
	}
	if s.Canvas.Scale < 0 {
		return fmt.Errorf("%w: canvas scale %d", ErrInvalidScene, s.Canvas.Scale)
	}
	return nil
}
