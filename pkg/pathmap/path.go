// pkg/pathmap/path.go
package pathmap

import (
	"bean-defense/pkg/geom"
	"math"
)

// minSegmentLength — сегменты короче этого считаются вырожденными.
const minSegmentLength = 1e-4

// Path is an immutable waypoint polyline. The first waypoint is the spawn,
// the last one is the exit. Segment lengths are cached at construction.
type Path struct {
	points    []geom.Point
	lengths   []float64
	avgLength float64
}

// NewPath copies the waypoints and precomputes segment lengths.
func NewPath(points []geom.Point) *Path {
	pts := make([]geom.Point, len(points))
	copy(pts, points)

	p := &Path{points: pts}
	if len(pts) < 2 {
		return p
	}
	p.lengths = make([]float64, len(pts)-1)
	total := 0.0
	for i := 0; i < len(pts)-1; i++ {
		l := geom.Distance(pts[i], pts[i+1])
		p.lengths[i] = l
		total += l
	}
	p.avgLength = total / float64(len(p.lengths))
	return p
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []geom.Point {
	out := make([]geom.Point, len(p.points))
	copy(out, p.points)
	return out
}

// Segments returns the number of segments (waypoints - 1).
func (p *Path) Segments() int {
	return len(p.lengths)
}

// SegmentLength returns the length of segment i, or 0 when i is out of range.
func (p *Path) SegmentLength(i int) float64 {
	if i < 0 || i >= len(p.lengths) {
		return 0
	}
	return p.lengths[i]
}

// IsDegenerate reports whether segment i is too short to walk.
func (p *Path) IsDegenerate(i int) bool {
	return p.SegmentLength(i) < minSegmentLength
}

// AverageSegmentLength returns the mean segment length over the whole polyline.
func (p *Path) AverageSegmentLength() float64 {
	return p.avgLength
}

// TotalLength returns the summed length of every segment.
func (p *Path) TotalLength() float64 {
	return p.avgLength * float64(len(p.lengths))
}

// SpeedFactor is the multiplier applied to base speed on segment i:
// 1/sqrt(segmentLength/average). Degenerate segments yield 1.
func (p *Path) SpeedFactor(i int) float64 {
	l := p.SegmentLength(i)
	if l < minSegmentLength || p.avgLength <= 0 {
		return 1
	}
	return 1 / math.Sqrt(l/p.avgLength)
}

// Spawn returns the first waypoint.
func (p *Path) Spawn() geom.Point {
	if len(p.points) == 0 {
		return geom.Point{}
	}
	return p.points[0]
}

// Exit returns the last waypoint.
func (p *Path) Exit() geom.Point {
	if len(p.points) == 0 {
		return geom.Point{}
	}
	return p.points[len(p.points)-1]
}

// PositionAt derives a coordinate from a segment index and a progress in [0,1].
// Indices at or past the last segment resolve to the exit.
func (p *Path) PositionAt(segment int, progress float64) geom.Point {
	if len(p.points) == 0 {
		return geom.Point{}
	}
	if segment < 0 {
		return p.points[0]
	}
	if segment >= len(p.points)-1 {
		return p.Exit()
	}
	progress = math.Max(0, math.Min(1, progress))
	return geom.LerpPoint(p.points[segment], p.points[segment+1], progress)
}

// DistanceTo returns the shortest distance from pt to any non-degenerate segment.
func (p *Path) DistanceTo(pt geom.Point) float64 {
	best := math.Inf(1)
	for i := 0; i < len(p.lengths); i++ {
		if p.lengths[i] < 0.1 {
			continue
		}
		closest := geom.ClosestPointOnSegment(pt, p.points[i], p.points[i+1])
		if d := geom.Distance(pt, closest); d < best {
			best = d
		}
	}
	return best
}

// PointNearPolyline reports whether pt lies closer than threshold to any segment.
func PointNearPolyline(pt geom.Point, path *Path, threshold float64) bool {
	return path.DistanceTo(pt) < threshold
}
