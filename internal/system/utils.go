// internal/system/utils.go
package system

import (
	"bean-defense/internal/component"
	"bean-defense/internal/entity"
	"bean-defense/internal/event"
	"bean-defense/pkg/geom"
)

// Damage наносит урон врагу. При убийстве слот освобождается, а награда по типу
// врага зачисляется сразу, одинаково для ловушек и снарядов.
func Damage(w *entity.World, d *event.Dispatcher, e *component.Enemy, amount float64, at geom.Point, byTrap bool) bool {
	if !e.Active || amount <= 0 {
		return false
	}
	e.Health -= amount
	if e.Health > 0 {
		return false
	}

	e.Health = 0
	e.Deactivate()
	reward := e.Def().Reward
	w.Beans += reward
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
		ID:     e.ID,
		Type:   e.Type,
		Pos:    at,
		Reward: reward,
		ByTrap: byTrap,
	}})
	return true
}
