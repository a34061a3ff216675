// internal/component/projectile.go
package component

import (
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/pkg/geom"
)

// Projectile — слот пула снарядов. Летит по прямой, не самонаводится.
type Projectile struct {
	Active      bool
	Pos         geom.Point
	Dir         geom.Point // единичный вектор
	Speed       float64
	Damage      float64
	Traveled    float64
	MaxDistance float64
	Source      defs.TowerType
}

// Launch claims the slot using the tower's current stats.
func (p *Projectile) Launch(from *Tower, dir geom.Point) {
	*p = Projectile{
		Active:      true,
		Pos:         from.Pos,
		Dir:         dir.Normalize(),
		Speed:       from.ProjectileSpeed,
		Damage:      from.Damage,
		MaxDistance: from.Range * config.ProjectileRangeFactor,
		Source:      from.Type,
	}
}

// Advance integrates the position and accumulates travelled distance.
func (p *Projectile) Advance(deltaTime float64) {
	step := p.Dir.Scale(p.Speed * deltaTime)
	p.Pos = p.Pos.Add(step)
	p.Traveled += step.Len()
}

// Expired reports whether the projectile ran out of range or left the field.
func (p *Projectile) Expired() bool {
	if p.Traveled >= p.MaxDistance {
		return true
	}
	m := config.ProjectileBoundMargin
	return p.Pos.X < -m || p.Pos.X > config.GameWidth+m || p.Pos.Y < -m || p.Pos.Y > config.ScreenHeight+m
}

// Deactivate returns the slot to the pool.
func (p *Projectile) Deactivate() {
	p.Active = false
}
