// internal/component/enemy.go
package component

import (
	"bean-defense/internal/defs"
	"bean-defense/internal/types"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// Enemy — слот пула врагов. Позиция не хранится, а выводится из сегмента и прогресса.
type Enemy struct {
	ID        types.EntityID
	Active    bool
	Type      defs.EnemyType
	Segment   int
	Progress  float64 // [0,1) вдоль текущего сегмента
	Health    float64
	MaxHealth float64
}

// ScaledHealth returns spawn health for a type at a given round.
func ScaledHealth(t defs.EnemyType, round int, diff defs.Difficulty) float64 {
	return defs.Enemy(t).Health * (1 + 0.1*float64(round-1)) * diff.Multiplier
}

// BaseSpeed returns the speed before per-segment normalisation.
func BaseSpeed(t defs.EnemyType, round int, diff defs.Difficulty) float64 {
	return defs.Enemy(t).Speed * (1 + 0.08*float64(round-1)) * diff.Multiplier * 0.8
}

// Activate claims the slot for a freshly spawned enemy.
func (e *Enemy) Activate(id types.EntityID, t defs.EnemyType, round int, diff defs.Difficulty) {
	hp := ScaledHealth(t, round, diff)
	*e = Enemy{
		ID:        id,
		Active:    true,
		Type:      t,
		Health:    hp,
		MaxHealth: hp,
	}
}

// Deactivate returns the slot to the pool.
func (e *Enemy) Deactivate() {
	e.Active = false
}

// Def returns the static definition of the enemy's type.
func (e *Enemy) Def() defs.EnemyDefinition {
	return defs.Enemy(e.Type)
}

// Size — диаметр врага.
func (e *Enemy) Size() float64 {
	return e.Def().Size
}

// HitRadius — радиус попадания снаряда, не зависит от рисуемого размера.
func (e *Enemy) HitRadius() float64 {
	return e.Def().HitSize / 2
}

// Position derives the coordinate on path.
func (e *Enemy) Position(path *pathmap.Path) geom.Point {
	return path.PositionAt(e.Segment, e.Progress)
}

// PastEnd reports whether the enemy has walked off the last segment.
func (e *Enemy) PastEnd(path *pathmap.Path) bool {
	return e.Segment >= path.Segments()
}
