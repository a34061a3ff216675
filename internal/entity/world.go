// internal/entity/world.go
package entity

import (
	"bean-defense/internal/component"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/types"
)

// World — всё изменяемое состояние одной партии. Меняется только изнутри тика.
type World struct {
	GameTime   float64
	NextID     types.EntityID
	Difficulty defs.Difficulty

	Beans            int
	Lives            int
	Round            int
	RemainingToSpawn int
	RoundActive      bool
	Countdown        float64
	SpawnTimer       float64
	BannerTimer      float64
	GameOver         bool
	GameWon          bool

	Owned map[defs.TowerType]int

	Towers      []*component.Tower // порядок размещения
	Enemies     []component.Enemy
	Projectiles []component.Projectile
}

// NewWorld allocates the pools and resets the world for diff.
func NewWorld(diff defs.Difficulty) *World {
	w := &World{
		NextID:      1,
		Enemies:     make([]component.Enemy, config.EnemyPoolSize),
		Projectiles: make([]component.Projectile, config.ProjectilePoolSize),
	}
	w.Reset(diff)
	return w
}

// NewEntity issues a fresh ID. IDs are not reused, even across resets.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Reset restores construction-time values for diff. Calling it twice in a row
// leaves the world in the same state.
func (w *World) Reset(diff defs.Difficulty) {
	w.Difficulty = diff
	w.GameTime = 0
	w.Beans = diff.StartingBeans
	w.Lives = config.StartingLives
	w.Round = 0
	w.RemainingToSpawn = 0
	w.RoundActive = false
	w.Countdown = config.RoundCountdown
	w.SpawnTimer = 0
	w.BannerTimer = config.GameStartBanner
	w.GameOver = false
	w.GameWon = false
	w.Owned = make(map[defs.TowerType]int)
	w.Towers = nil
	for i := range w.Enemies {
		w.Enemies[i] = component.Enemy{}
	}
	for i := range w.Projectiles {
		w.Projectiles[i] = component.Projectile{}
	}
}

// Terminal reports whether the simulation is frozen.
func (w *World) Terminal() bool {
	return w.GameOver || w.GameWon
}

// ClaimEnemy returns the first inactive pool slot, or nil when the pool is full.
func (w *World) ClaimEnemy() *component.Enemy {
	for i := range w.Enemies {
		if !w.Enemies[i].Active {
			return &w.Enemies[i]
		}
	}
	return nil
}

// ClaimProjectile returns the first inactive pool slot, or nil when the pool is full.
func (w *World) ClaimProjectile() *component.Projectile {
	for i := range w.Projectiles {
		if !w.Projectiles[i].Active {
			return &w.Projectiles[i]
		}
	}
	return nil
}

// ActiveEnemies counts live enemies in the pool.
func (w *World) ActiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			n++
		}
	}
	return n
}

// ActiveProjectiles counts flying projectiles.
func (w *World) ActiveProjectiles() int {
	n := 0
	for i := range w.Projectiles {
		if w.Projectiles[i].Active {
			n++
		}
	}
	return n
}

// AddTower appends a committed tower and bumps its type's owned count.
func (w *World) AddTower(t *component.Tower) {
	w.Towers = append(w.Towers, t)
	w.Owned[t.Type]++
}

// Tower looks up a placed tower by handle. Removed towers are not returned.
func (w *World) Tower(id types.EntityID) *component.Tower {
	if id == 0 {
		return nil
	}
	for _, t := range w.Towers {
		if t.ID == id && !t.Removed {
			return t
		}
	}
	return nil
}

// TowerAt returns the topmost live tower whose footprint contains (x, y).
func (w *World) TowerAt(x, y float64) *component.Tower {
	for i := len(w.Towers) - 1; i >= 0; i-- {
		t := w.Towers[i]
		if t.Removed {
			continue
		}
		h := t.Footprint() / 2
		if x >= t.Pos.X-h && x <= t.Pos.X+h && y >= t.Pos.Y-h && y <= t.Pos.Y+h {
			return t
		}
	}
	return nil
}

// CompactTowers drops removed towers, keeps order and returns the removed handles.
func (w *World) CompactTowers() []types.EntityID {
	var removed []types.EntityID
	kept := w.Towers[:0]
	for _, t := range w.Towers {
		if t.Removed {
			removed = append(removed, t.ID)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(w.Towers); i++ {
		w.Towers[i] = nil
	}
	w.Towers = kept
	return removed
}

// RemoveTower marks t for compaction and releases its slot in the owned count.
func (w *World) RemoveTower(t *component.Tower) {
	if t == nil || t.Removed {
		return
	}
	t.Removed = true
	if w.Owned[t.Type] > 0 {
		w.Owned[t.Type]--
	}
}
