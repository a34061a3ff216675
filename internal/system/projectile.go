// internal/system/projectile.go
package system

import (
	"bean-defense/internal/entity"
	"bean-defense/internal/event"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, m *pathmap.Map, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{world: world, path: m.Path, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	w := s.world
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		if !p.Active {
			continue
		}
		p.Advance(deltaTime)
		if p.Expired() {
			p.Deactivate()
			continue
		}

		// не больше одного попадания; первый враг в порядке пула выигрывает
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if !e.Active {
				continue
			}
			pos := e.Position(s.path)
			if geom.Distance(p.Pos, pos) < e.HitRadius() {
				p.Deactivate()
				Damage(w, s.eventDispatcher, e, p.Damage, pos, false)
				break
			}
		}
	}
}
