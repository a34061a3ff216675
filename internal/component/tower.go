// internal/component/tower.go
package component

import (
	"math"

	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/economy"
	"bean-defense/internal/types"
	"bean-defense/pkg/geom"
)

// Tower — размещённая башня или превью под курсором.
type Tower struct {
	ID   types.EntityID
	Pos  geom.Point
	Type defs.TowerType

	Range           float64
	Damage          float64
	AttackSpeed     float64 // выстрелов в секунду
	ProjectileSpeed float64

	ShootTimer float64
	Levels     [3]int // индекс — defs.UpgradeKind

	Spent    bool // одноразовая ловушка сработала
	UsesLeft int  // -1 — бесконечно
	Removed  bool // продана или израсходована, ждёт уплотнения
}

// NewTower builds a tower of type t at pos with base stats.
func NewTower(id types.EntityID, t defs.TowerType, pos geom.Point) *Tower {
	tw := &Tower{ID: id, Pos: pos}
	tw.SetType(t)
	return tw
}

// SetType resets all upgrade levels and reloads base stats from the table.
func (t *Tower) SetType(typ defs.TowerType) {
	def, _ := defs.Tower(typ)
	t.Type = typ
	t.Range = def.Range
	t.Damage = def.Damage
	t.AttackSpeed = def.AttackSpeed
	t.ProjectileSpeed = def.ProjectileSpeed
	t.ShootTimer = 0
	t.Levels = [3]int{}
	t.Spent = false
	t.UsesLeft = 0
	switch def.Behavior {
	case defs.BehaviorTrapPermanent:
		t.UsesLeft = -1
	case defs.BehaviorTrapSingleUse:
		t.UsesLeft = 1
	}
}

// Def returns the static definition of the tower's type.
func (t *Tower) Def() defs.TowerDefinition {
	def, _ := defs.Tower(t.Type)
	return def
}

// Level returns the current level of an upgrade track.
func (t *Tower) Level(kind defs.UpgradeKind) int {
	if kind < 0 || int(kind) >= len(t.Levels) {
		return 0
	}
	return t.Levels[kind]
}

// CanUpgrade reports whether one more step is allowed on the track.
func (t *Tower) CanUpgrade(kind defs.UpgradeKind) bool {
	if kind < 0 || int(kind) >= len(t.Levels) {
		return false
	}
	return t.Def().Upgradable && t.Levels[kind] < config.MaxUpgradeLevel
}

// Upgrade applies one multiplicative step. Beyond the cap, or for
// non-upgradable types, nothing changes and false is returned.
func (t *Tower) Upgrade(kind defs.UpgradeKind) bool {
	if !t.CanUpgrade(kind) {
		return false
	}
	switch kind {
	case defs.UpgradeDamage:
		t.Damage *= economy.DamageUpgradeFactor
	case defs.UpgradeAttackSpeed:
		t.AttackSpeed *= economy.AttackSpeedUpgradeFactor
	case defs.UpgradeRange:
		t.Range *= economy.RangeUpgradeFactor
		t.ProjectileSpeed *= economy.RangeUpgradeFactor
	}
	t.Levels[kind]++
	return true
}

// Footprint is the side of the square the tower occupies; it grows with range upgrades.
func (t *Tower) Footprint() float64 {
	return FootprintFor(t.Levels[defs.UpgradeRange])
}

// FootprintFor returns the footprint for a given range level.
func FootprintFor(rangeLevel int) float64 {
	return config.TowerSize * 0.8 * math.Pow(economy.RangeUpgradeFactor, float64(rangeLevel))
}

// FireInterval — секунд между выстрелами; 0 для ловушек.
func (t *Tower) FireInterval() float64 {
	if t.AttackSpeed <= 0 {
		return 0
	}
	return 1 / t.AttackSpeed
}

// Reload advances the shoot timer and reports whether the tower may fire now.
// The timer is only reset by Fired.
func (t *Tower) Reload(deltaTime float64) bool {
	if t.AttackSpeed <= 0 {
		return false
	}
	t.ShootTimer += deltaTime
	return t.ShootTimer >= t.FireInterval()
}

// Fired resets the cooldown.
func (t *Tower) Fired() {
	t.ShootTimer = 0
}
