// pkg/pathmap/map.go
package pathmap

import "bean-defense/pkg/geom"

const (
	// DefaultPathThreshold — минимальное расстояние от пути для обычных башен.
	DefaultPathThreshold = 28.0
	// TrapPathThreshold — максимальное расстояние от пути для ловушек.
	TrapPathThreshold = 20.0
)

// MapID identifies one of the predefined maps.
type MapID string

const (
	MapGrass    MapID = "GRASS"
	MapDesert   MapID = "DESERT"
	MapSnow     MapID = "SNOW"
	MapTutorial MapID = "TUTORIAL"
)

// Map couples an enemy path with the terrain rules used for tower placement.
type Map struct {
	ID            MapID
	Name          string
	Path          *Path
	Restricted    []geom.Rect
	PlayableWidth float64
}

// IsInRestrictedRegion reports whether p falls into water or another obstacle.
func (m *Map) IsInRestrictedRegion(p geom.Point) bool {
	for _, r := range m.Restricted {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// FootprintSamples returns the 17 points checked for a square footprint:
// centre, corners, edge midpoints and quarter points along each edge.
func FootprintSamples(center geom.Point, size float64) []geom.Point {
	h := size / 2
	q := size / 4
	x, y := center.X, center.Y
	return []geom.Point{
		center,
		{X: x - h, Y: y - h}, {X: x + h, Y: y - h},
		{X: x - h, Y: y + h}, {X: x + h, Y: y + h},
		{X: x - h, Y: y}, {X: x + h, Y: y},
		{X: x, Y: y - h}, {X: x, Y: y + h},
		{X: x - h, Y: y - q}, {X: x - h, Y: y + q},
		{X: x + h, Y: y - q}, {X: x + h, Y: y + q},
		{X: x - q, Y: y - h}, {X: x + q, Y: y - h},
		{X: x - q, Y: y + h}, {X: x + q, Y: y + h},
	}
}

// CanPlaceTower judges terrain legality only; overlap and funds are the caller's job.
// Traps must sit on the path, everything else must keep its whole footprint off the
// path and out of restricted regions.
func (m *Map) CanPlaceTower(center geom.Point, size float64, trap bool) bool {
	if center.X-size/2 < 0 || center.X+size/2 > m.PlayableWidth {
		return false
	}
	if trap {
		return PointNearPolyline(center, m.Path, TrapPathThreshold)
	}
	for _, p := range FootprintSamples(center, size) {
		if m.IsInRestrictedRegion(p) || PointNearPolyline(p, m.Path, DefaultPathThreshold) {
			return false
		}
	}
	return true
}
