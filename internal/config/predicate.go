package config

import "github.com/vovakirdan/crisscross/internal/core"

// Predicate returns the validity test for crossing queries: a tile is valid
// when it lies inside the region and is not blocked.
func (s Scene) Predicate() func(core.TilePosition) bool {
	blocked := make(map[[2]uint32]struct{}, len(s.Blocked))
	for _, b := range s.Blocked {
		blocked[[2]uint32{b.X, b.Y}] = struct{}{}
	}
	region := s.Region

	return func(tp core.TilePosition) bool {
		if region.Enabled {
			if tp.X < region.MinX || tp.X > region.MaxX || tp.Y < region.MinY || tp.Y > region.MaxY {
				return false
			}
		}
		_, isBlocked := blocked[[2]uint32{tp.X, tp.Y}]
		return !isBlocked
	}
}

// IsBlocked reports whether the tile is listed as blocked.
func (s Scene) IsBlocked(x, y uint32) bool {
	for _, b := range s.Blocked {
		if b.X == x && b.Y == y {
			return true
		}
	}
	return false
}
