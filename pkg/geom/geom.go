// pkg/geom/geom.go
package geom

import "math"

// Point is a 2D coordinate in logical game space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of p taken as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns the unit vector of p, or the zero vector when p has no length.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpPoint interpolates between a and b; t=0 yields a, t=1 yields b.
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// ClosestPointOnSegment projects p onto segment ab, clamped to the segment ends.
func ClosestPointOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	denom := ab.X*ab.X + ab.Y*ab.Y
	if denom == 0 {
		return a
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / denom
	t = math.Max(0, math.Min(1, t))
	return LerpPoint(a, b, t)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}
