// internal/system/combat.go
package system

import (
	"bean-defense/internal/component"
	"bean-defense/internal/defs"
	"bean-defense/internal/entity"
	"bean-defense/internal/event"
	"bean-defense/internal/logger"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// CombatSystem управляет прицельной стрельбой башен
type CombatSystem struct {
	world           *entity.World
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, m *pathmap.Map, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, path: m.Path, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, t := range s.world.Towers {
		if t.Removed || t.Def().Behavior != defs.BehaviorProjectile {
			continue
		}
		if !t.Reload(deltaTime) {
			continue
		}

		target, ok := s.FindClosestEnemy(t.Pos, t.Range)
		if !ok {
			continue
		}
		t.Fired()

		proj := s.world.ClaimProjectile()
		if proj == nil {
			logger.Debugf("projectile pool exhausted, tower %d shot dropped", t.ID)
			continue
		}
		proj.Launch(t, target.Sub(t.Pos))
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{
			TowerID: t.ID,
			Source:  t.Type,
			Count:   1,
		}})
	}
}

// FindClosestEnemy returns the derived position of the nearest active enemy
// strictly closer than rng. The first minimum in pool order wins ties.
func (s *CombatSystem) FindClosestEnemy(from geom.Point, rng float64) (geom.Point, bool) {
	best := rng
	var bestPos geom.Point
	found := false
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Active {
			continue
		}
		pos := e.Position(s.path)
		d := geom.Distance(from, pos)
		if d < best {
			best = d
			bestPos = pos
			found = true
		}
	}
	return bestPos, found
}

// enemyInRange is used by the area towers, which only need a yes/no answer.
// Unlike targeting, the range edge counts.
func enemyInRange(w *entity.World, path *pathmap.Path, t *component.Tower) bool {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Active && geom.Distance(t.Pos, e.Position(path)) <= t.Range {
			return true
		}
	}
	return false
}
