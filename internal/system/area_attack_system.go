// internal/system/area_attack_system.go
package system

import (
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/entity"
	"bean-defense/internal/event"
	"bean-defense/internal/logger"
	"bean-defense/internal/utils"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// AreaAttackSystem управляет башнями, которые стреляют во все стороны сразу.
type AreaAttackSystem struct {
	world           *entity.World
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
	directions      []geom.Point
}

func NewAreaAttackSystem(world *entity.World, m *pathmap.Map, eventDispatcher *event.Dispatcher) *AreaAttackSystem {
	return &AreaAttackSystem{
		world:           world,
		path:            m.Path,
		eventDispatcher: eventDispatcher,
		directions:      utils.CompassDirections(config.AreaBurstDirections),
	}
}

func (s *AreaAttackSystem) Update(deltaTime float64) {
	for _, t := range s.world.Towers {
		if t.Removed || t.Def().Behavior != defs.BehaviorAreaEight {
			continue
		}
		if !t.Reload(deltaTime) {
			continue
		}
		// стреляем, только если кто-то есть в радиусе
		if !enemyInRange(s.world, s.path, t) {
			continue
		}
		t.Fired()

		fired := 0
		for _, dir := range s.directions {
			proj := s.world.ClaimProjectile()
			if proj == nil {
				logger.Debugf("projectile pool exhausted, tower %d burst cut at %d", t.ID, fired)
				break
			}
			proj.Launch(t, dir)
			fired++
		}
		if fired > 0 {
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{
				TowerID: t.ID,
				Source:  t.Type,
				Count:   fired,
			}})
		}
	}
}
