// internal/utils/math.go
package utils

import (
	"math"

	"bean-defense/pkg/geom"
)

// CompassDirections возвращает n единичных векторов с шагом 2π/n, начиная с угла 0.
func CompassDirections(n int) []geom.Point {
	dirs := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		dirs[i] = geom.Pt(math.Cos(angle), math.Sin(angle))
	}
	return dirs
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Octant maps a direction onto one of 8 sectors, 0 pointing along +X, counted clockwise on screen.
func Octant(dir geom.Point) int {
	a := NormalizeAngle(math.Atan2(dir.Y, dir.X))
	if a < 0 {
		a += 2 * math.Pi
	}
	return int(math.Floor(a/(math.Pi/4)+0.5)) % 8
}
