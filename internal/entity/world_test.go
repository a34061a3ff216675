package entity

import (
	"reflect"
	"testing"

	"bean-defense/internal/component"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/pkg/geom"
)

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(defs.Medium)
	if w.Beans != 69 || w.Lives != 3 || w.Round != 0 || w.Countdown != config.RoundCountdown {
		t.Fatalf("world = beans %d lives %d round %d countdown %v", w.Beans, w.Lives, w.Round, w.Countdown)
	}
	if len(w.Enemies) != config.EnemyPoolSize || len(w.Projectiles) != config.ProjectilePoolSize {
		t.Fatalf("pool sizes = %d/%d", len(w.Enemies), len(w.Projectiles))
	}
}

func TestClaimEnemyExhaustion(t *testing.T) {
	w := NewWorld(defs.Easy)
	for i := 0; i < config.EnemyPoolSize; i++ {
		e := w.ClaimEnemy()
		if e == nil {
			t.Fatalf("pool exhausted after %d claims", i)
		}
		e.Activate(w.NewEntity(), defs.EnemyZombie, 1, defs.Easy)
	}
	if w.ClaimEnemy() != nil {
		t.Fatalf("expected nil from a full pool")
	}
	w.Enemies[10].Deactivate()
	if got := w.ClaimEnemy(); got != &w.Enemies[10] {
		t.Fatalf("claim did not return the first free slot")
	}
	if w.ActiveEnemies() != config.EnemyPoolSize-1 {
		t.Fatalf("active = %d", w.ActiveEnemies())
	}
}

func TestTowerHandlesAndCompaction(t *testing.T) {
	w := NewWorld(defs.Easy)
	a := component.NewTower(w.NewEntity(), defs.TowerApple, geom.Pt(100, 100))
	b := component.NewTower(w.NewEntity(), defs.TowerApple, geom.Pt(200, 100))
	c := component.NewTower(w.NewEntity(), defs.TowerCarrot, geom.Pt(300, 100))
	w.AddTower(a)
	w.AddTower(b)
	w.AddTower(c)
	if w.Owned[defs.TowerApple] != 2 {
		t.Fatalf("owned apples = %d", w.Owned[defs.TowerApple])
	}

	w.RemoveTower(b)
	w.RemoveTower(b)
	if w.Owned[defs.TowerApple] != 1 {
		t.Fatalf("double remove decremented twice: %d", w.Owned[defs.TowerApple])
	}
	if w.Tower(b.ID) != nil {
		t.Fatalf("removed tower still addressable")
	}
	if len(w.Towers) != 3 {
		t.Fatalf("removal must be deferred until compaction")
	}

	removed := w.CompactTowers()
	if len(removed) != 1 || removed[0] != b.ID {
		t.Fatalf("removed = %v", removed)
	}
	if len(w.Towers) != 2 || w.Towers[0] != a || w.Towers[1] != c {
		t.Fatalf("order not kept after compaction")
	}
	if w.TowerAt(300, 110) != c || w.TowerAt(200, 100) != nil {
		t.Fatalf("TowerAt lookup wrong")
	}
}

func TestResetIdempotent(t *testing.T) {
	w := NewWorld(defs.Hard)
	w.AddTower(component.NewTower(w.NewEntity(), defs.TowerApple, geom.Pt(1, 1)))
	w.Beans = 3
	w.GameOver = true
	w.ClaimEnemy().Activate(w.NewEntity(), defs.EnemyBoss, 10, defs.Hard)

	w.Reset(defs.Hard)
	first := *w
	first.Owned = map[defs.TowerType]int{}
	w.Reset(defs.Hard)
	second := *w
	second.Owned = map[defs.TowerType]int{}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reset is not idempotent")
	}
	if w.Beans != 40 || w.Lives != 3 || w.Round != 0 || w.GameOver || len(w.Towers) != 0 || w.ActiveEnemies() != 0 {
		t.Fatalf("reset left state behind: %+v", w)
	}
}
