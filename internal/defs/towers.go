// internal/defs/towers.go
package defs

import (
	"fmt"
	"strings"
)

// TowerType defines the kind of a tower. Order matters: tutorial unlocks follow it.
type TowerType int

const (
	TowerNone TowerType = iota
	TowerApple
	TowerCarrot
	TowerPotato
	TowerPineapple
	TowerBananaPeel
	TowerCactus
)

var towerTypeNames = []string{"NONE", "APPLE", "CARROT", "POTATO", "PINEAPPLE", "BANANA_PEEL", "CACTUS"}

func (t TowerType) String() string {
	if t < 0 || int(t) >= len(towerTypeNames) {
		return fmt.Sprintf("TowerType(%d)", int(t))
	}
	return towerTypeNames[t]
}

// ParseTowerType is the inverse of String, case-insensitive.
func ParseTowerType(s string) (TowerType, error) {
	for i, name := range towerTypeNames {
		if strings.EqualFold(name, s) {
			return TowerType(i), nil
		}
	}
	return TowerNone, fmt.Errorf("unknown tower type %q", s)
}

// MarshalText / UnmarshalText let the JSON loader use names instead of numbers.
func (t TowerType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TowerType) UnmarshalText(b []byte) error {
	v, err := ParseTowerType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// PlaceableTowers lists the buyable types in panel order.
var PlaceableTowers = []TowerType{TowerApple, TowerCarrot, TowerPotato, TowerPineapple, TowerBananaPeel, TowerCactus}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type            TowerType `json:"type"`
	Name            string    `json:"name"`
	BaseCost        int       `json:"base_cost"`
	Range           float64   `json:"range"`
	Damage          float64   `json:"damage"`
	AttackSpeed     float64   `json:"attack_speed"` // выстрелов в секунду
	ProjectileSpeed float64   `json:"projectile_speed"`
	Behavior        Behavior  `json:"behavior"`
	Upgradable      bool      `json:"upgradable"`
	Visuals         Visuals   `json:"visuals"`
}

// IsTrap reports whether the tower acts by proximity on the path.
func (d TowerDefinition) IsTrap() bool {
	return d.Behavior == BehaviorTrapSingleUse || d.Behavior == BehaviorTrapPermanent
}

// IsShooter reports whether the tower enters the targeting pass.
func (d TowerDefinition) IsShooter() bool {
	return d.Behavior == BehaviorProjectile || d.Behavior == BehaviorAreaEight
}

// TowerLibrary is the tower table keyed by type.
var TowerLibrary map[TowerType]TowerDefinition

func defaultTowers() map[TowerType]TowerDefinition {
	return map[TowerType]TowerDefinition{
		TowerApple: {
			Type: TowerApple, Name: "Apple", BaseCost: 15,
			Range: 115, Damage: 13, AttackSpeed: 1.5, ProjectileSpeed: 600,
			Behavior: BehaviorProjectile, Upgradable: true,
		},
		TowerCarrot: {
			Type: TowerCarrot, Name: "Carrot", BaseCost: 25,
			Range: 250, Damage: 26, AttackSpeed: 0.75, ProjectileSpeed: 1125,
			Behavior: BehaviorProjectile, Upgradable: true,
		},
		TowerPotato: {
			Type: TowerPotato, Name: "Potato", BaseCost: 20,
			Range: 75, Damage: 4, AttackSpeed: 5, ProjectileSpeed: 750,
			Behavior: BehaviorProjectile, Upgradable: true,
		},
		TowerPineapple: {
			Type: TowerPineapple, Name: "Pineapple", BaseCost: 30,
			Range: 90, Damage: 10, AttackSpeed: 1, ProjectileSpeed: 450,
			Behavior: BehaviorAreaEight, Upgradable: true,
		},
		TowerBananaPeel: {
			Type: TowerBananaPeel, Name: "Banana Peel", BaseCost: 5,
			Damage:   50,
			Behavior: BehaviorTrapSingleUse,
		},
		TowerCactus: {
			Type: TowerCactus, Name: "Cactus", BaseCost: 35,
			Damage:   20, // урон в секунду
			Behavior: BehaviorTrapPermanent,
		},
	}
}

// Tower returns the definition for t and whether it exists.
func Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := TowerLibrary[t]
	return def, ok
}
