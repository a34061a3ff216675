// internal/defs/types.go
package defs

import "image/color"

// Behavior — способ, которым башня наносит урон.
type Behavior string

const (
	BehaviorNone          Behavior = "NONE"
	BehaviorProjectile    Behavior = "PROJECTILE"
	BehaviorAreaEight     Behavior = "AREA_EIGHT"
	BehaviorTrapSingleUse Behavior = "TRAP_SINGLE_USE"
	BehaviorTrapPermanent Behavior = "TRAP_PERMANENT"
)

// Placeable reports whether a tower with this behavior can act on the field.
func (b Behavior) Placeable() bool {
	switch b {
	case BehaviorProjectile, BehaviorAreaEight, BehaviorTrapSingleUse, BehaviorTrapPermanent:
		return true
	}
	return false
}

// UpgradeKind selects one of the three independent upgrade tracks.
type UpgradeKind int

const (
	UpgradeDamage UpgradeKind = iota
	UpgradeAttackSpeed
	UpgradeRange
)

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeDamage:
		return "damage"
	case UpgradeAttackSpeed:
		return "attack_speed"
	case UpgradeRange:
		return "range"
	}
	return "unknown"
}

// Visuals contains parameters for rendering.
type Visuals struct {
	Color       color.RGBA `json:"color"`
	StrokeWidth float64    `json:"stroke_width"`
}
