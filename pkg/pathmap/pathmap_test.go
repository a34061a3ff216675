package pathmap

import (
	"math"
	"testing"

	"bean-defense/pkg/geom"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestPathLengths(t *testing.T) {
	p := NewPath([]geom.Point{{X: 0, Y: 0}, {X: 30, Y: 40}, {X: 30, Y: 140}})
	if p.Segments() != 2 {
		t.Fatalf("segments = %d, want 2", p.Segments())
	}
	if p.SegmentLength(0) != 50 || p.SegmentLength(1) != 100 {
		t.Fatalf("lengths = %v, %v", p.SegmentLength(0), p.SegmentLength(1))
	}
	if p.AverageSegmentLength() != 75 {
		t.Fatalf("average = %v, want 75", p.AverageSegmentLength())
	}
	if p.SegmentLength(-1) != 0 || p.SegmentLength(2) != 0 {
		t.Fatalf("out-of-range segment length must be 0")
	}
	if !approxEqual(p.SpeedFactor(1), 1/math.Sqrt(100.0/75.0), 1e-12) {
		t.Fatalf("speed factor = %v", p.SpeedFactor(1))
	}
}

func TestPositionAtClamps(t *testing.T) {
	p := NewPath([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	cases := []struct {
		seg      int
		progress float64
		want     geom.Point
	}{
		{0, 0, geom.Pt(0, 0)},
		{0, 0.5, geom.Pt(50, 0)},
		{1, 0.5, geom.Pt(100, 50)},
		{2, 0.3, geom.Pt(100, 100)},
		{99, 0, geom.Pt(100, 100)},
		{-1, 0.5, geom.Pt(0, 0)},
		{0, 1.5, geom.Pt(100, 0)},
	}
	for _, c := range cases {
		if got := p.PositionAt(c.seg, c.progress); got != c.want {
			t.Fatalf("PositionAt(%d, %v) = %v, want %v", c.seg, c.progress, got, c.want)
		}
	}
}

func TestPointNearPolyline(t *testing.T) {
	p := NewPath([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
	if !PointNearPolyline(geom.Pt(50, 27), p, DefaultPathThreshold) {
		t.Fatalf("27 units should be near with threshold 28")
	}
	if PointNearPolyline(geom.Pt(50, 28), p, DefaultPathThreshold) {
		t.Fatalf("28 units must not be near (strict)")
	}
	if PointNearPolyline(geom.Pt(130, 0), p, DefaultPathThreshold) {
		t.Fatalf("past the end by 30 must not be near")
	}
}

func TestBananaPeelPlacementThreshold(t *testing.T) {
	m := MustGet(MapGrass)
	// первый сегмент (352,0)-(352,96)
	if m.CanPlaceTower(geom.Pt(377, 50), 32, true) {
		t.Fatalf("trap 25 units from path was accepted")
	}
	if !m.CanPlaceTower(geom.Pt(367, 50), 32, true) {
		t.Fatalf("trap 15 units from path was rejected")
	}
}

func TestCanPlaceTowerTerrain(t *testing.T) {
	m := MustGet(MapGrass)
	cases := []struct {
		name string
		at   geom.Point
		want bool
	}{
		{"open grass", geom.Pt(250, 200), true},
		{"near right edge", geom.Pt(600, 300), true},
		{"on path", geom.Pt(352, 50), false},
		{"footprint edge touches path", geom.Pt(352+40, 50), false},
		{"water", geom.Pt(580, 60), false},
		{"over the panel", geom.Pt(630, 300), false},
		{"over the left edge", geom.Pt(10, 300), false},
	}
	for _, c := range cases {
		if got := m.CanPlaceTower(c.at, 32, false); got != c.want {
			t.Fatalf("%s: CanPlaceTower(%v) = %v, want %v", c.name, c.at, got, c.want)
		}
	}
}

func TestFootprintSamples(t *testing.T) {
	pts := FootprintSamples(geom.Pt(100, 100), 40)
	if len(pts) != 17 {
		t.Fatalf("samples = %d, want 17", len(pts))
	}
	seen := map[geom.Point]bool{}
	for _, p := range pts {
		if p.X < 80 || p.X > 120 || p.Y < 80 || p.Y > 120 {
			t.Fatalf("sample %v outside footprint", p)
		}
		seen[p] = true
	}
	if len(seen) != 17 {
		t.Fatalf("samples are not distinct: %d unique", len(seen))
	}
}

func TestMapsLibrary(t *testing.T) {
	for _, id := range All() {
		m, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%s): %v", id, err)
		}
		if m.Path.Segments() < 2 {
			t.Fatalf("%s: too few segments", id)
		}
	}
	if _, err := Get("VOLCANO"); err == nil {
		t.Fatalf("expected error for unknown map")
	}
	if MustGet(MapTutorial).Path.Spawn() != MustGet(MapGrass).Path.Spawn() {
		t.Fatalf("tutorial must reuse the grass path")
	}
}
