// internal/system/movement.go
package system

import (
	"bean-defense/internal/component"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/entity"
	"bean-defense/internal/event"
	"bean-defense/internal/logger"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// MovementSystem двигает врагов по пути и применяет ловушки.
type MovementSystem struct {
	world           *entity.World
	path            *pathmap.Path
	mapID           pathmap.MapID
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(world *entity.World, m *pathmap.Map, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{world: world, path: m.Path, mapID: m.ID, eventDispatcher: eventDispatcher}
}

// Update moves every active enemy. It stops as soon as the game is lost.
func (s *MovementSystem) Update(deltaTime float64) {
	w := s.world
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active || e.PastEnd(s.path) {
			continue
		}

		s.advance(e, deltaTime)

		if e.PastEnd(s.path) {
			s.escape(e)
			if w.GameOver {
				return
			}
			continue
		}
		s.applyTraps(e, deltaTime)
	}
}

// advance walks the enemy forward, carrying leftover time into following segments.
func (s *MovementSystem) advance(e *component.Enemy, deltaTime float64) {
	baseSpeed := component.BaseSpeed(e.Type, s.world.Round, s.world.Difficulty)
	remaining := deltaTime
	for remaining > 0 && e.Segment < s.path.Segments() {
		if s.path.IsDegenerate(e.Segment) {
			e.Segment++
			e.Progress = 0
			continue
		}
		segLen := s.path.SegmentLength(e.Segment)
		speed := baseSpeed * s.path.SpeedFactor(e.Segment)
		if speed <= 0 {
			return
		}

		timeToEnd := (1 - e.Progress) * segLen / speed
		if remaining < timeToEnd {
			e.Progress += speed * remaining / segLen
			if e.Progress >= 1 {
				e.Segment++
				e.Progress = 0
			}
			return
		}
		remaining -= timeToEnd
		e.Segment++
		e.Progress = 0
	}
}

func (s *MovementSystem) escape(e *component.Enemy) {
	w := s.world
	e.Deactivate()
	w.Lives--
	if w.Lives < 0 {
		w.Lives = 0
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyData{
		ID:    e.ID,
		Type:  e.Type,
		Pos:   s.path.Exit(),
		Lives: w.Lives,
	}})
	if w.Lives == 0 {
		w.GameOver = true
		logger.Infof("Game over on %s in round %d", s.mapID, w.Round)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.OutcomeData{Map: s.mapID, Round: w.Round}})
	}
}

// applyTraps checks the enemy against every live trap in placement order.
func (s *MovementSystem) applyTraps(e *component.Enemy, deltaTime float64) {
	def := e.Def()
	if def.TrapImmune {
		return
	}
	pos := e.Position(s.path)
	radius := config.TrapHitRadius

	for _, t := range s.world.Towers {
		if t.Removed {
			continue
		}
		switch t.Def().Behavior {
		case defs.BehaviorTrapSingleUse:
			if t.Spent || geom.Distance(pos, t.Pos) >= radius {
				continue
			}
			t.Spent = true
			t.UsesLeft = 0
			s.world.RemoveTower(t)
			s.eventDispatcher.Dispatch(event.Event{Type: event.TrapTriggered, Data: event.TrapData{
				TowerID: t.ID,
				Type:    t.Type,
				EnemyID: e.ID,
			}})
			if Damage(s.world, s.eventDispatcher, e, t.Damage, pos, true) {
				return
			}
		case defs.BehaviorTrapPermanent:
			if t.UsesLeft == 0 || geom.Distance(pos, t.Pos) >= radius {
				continue
			}
			if Damage(s.world, s.eventDispatcher, e, t.Damage*deltaTime, pos, true) {
				return
			}
		}
	}
}
