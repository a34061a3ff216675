// internal/app/tower_management.go
package app

import (
	"bean-defense/internal/component"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/economy"
	"bean-defense/internal/event"
	"bean-defense/internal/logger"
	"bean-defense/pkg/geom"
)

// SelectTowerType puts a tower type in hand. TowerNone clears the hand.
func (g *Game) SelectTowerType(t defs.TowerType) Reason {
	if g.World.Terminal() {
		return ReasonGameEnded
	}
	if t == defs.TowerNone {
		g.previewType = defs.TowerNone
		return ReasonOK
	}
	if _, ok := defs.Tower(t); !ok {
		return ReasonNoTowerType
	}
	if !g.IsUnlocked(t) {
		return ReasonLocked
	}
	g.previewType = t
	g.selected = 0
	return ReasonOK
}

// MovePreview moves the placement ghost.
func (g *Game) MovePreview(p geom.Point) Reason {
	if g.World.Terminal() {
		return ReasonGameEnded
	}
	g.previewPos = p
	return ReasonOK
}

// Cost returns what the next tower of type t costs.
func (g *Game) Cost(t defs.TowerType) int {
	def, ok := defs.Tower(t)
	if !ok {
		return -1
	}
	return economy.Cost(def.BaseCost, g.World.Owned[t])
}

// CheckPlacement judges placing the tower in hand at p without changing anything.
func (g *Game) CheckPlacement(p geom.Point) Reason {
	if g.World.Terminal() {
		return ReasonGameEnded
	}
	t := g.previewType
	def, ok := defs.Tower(t)
	if !ok {
		return ReasonNoTowerType
	}
	if !g.IsUnlocked(t) {
		return ReasonLocked
	}
	size := component.FootprintFor(0)
	if !g.Map.CanPlaceTower(p, size, def.IsTrap()) {
		return ReasonTerrain
	}
	for _, other := range g.World.Towers {
		if other.Removed {
			continue
		}
		if geom.Distance(other.Pos, p) < (other.Footprint()+size)/2 {
			return ReasonOverlap
		}
	}
	if g.Cost(t) > g.World.Beans {
		return ReasonFunds
	}
	return ReasonOK
}

// AttemptPlacement commits the tower in hand at p and pays for it.
func (g *Game) AttemptPlacement(p geom.Point) Reason {
	if r := g.CheckPlacement(p); r != ReasonOK {
		return r
	}
	w := g.World
	t := g.previewType
	cost := g.Cost(t)
	w.Beans -= cost
	tower := component.NewTower(w.NewEntity(), t, p)
	w.AddTower(tower)
	g.previewType = defs.TowerNone

	logger.Infof("Placed %s #%d at (%.0f, %.0f) for %d beans", t, tower.ID, p.X, p.Y, cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID:    tower.ID,
		Type:  t,
		Pos:   p,
		Beans: cost,
	}})
	return ReasonOK
}

// OpenTowerMenu selects the tower under p.
func (g *Game) OpenTowerMenu(p geom.Point) Reason {
	if g.World.Terminal() {
		return ReasonGameEnded
	}
	tower := g.World.TowerAt(p.X, p.Y)
	if tower == nil {
		g.selected = 0
		return ReasonNoSelection
	}
	g.selected = tower.ID
	g.previewType = defs.TowerNone
	return ReasonOK
}

// CloseTowerMenu drops the selection.
func (g *Game) CloseTowerMenu() Reason {
	if g.World.Terminal() {
		return ReasonGameEnded
	}
	g.selected = 0
	return ReasonOK
}

// SelectedTower returns the tower the menu is open for, or nil.
func (g *Game) SelectedTower() *component.Tower {
	t := g.World.Tower(g.selected)
	if t == nil {
		g.selected = 0
	}
	return t
}

// UpgradeCost returns the price of the next step on the track, or -1 if unavailable.
func UpgradeCost(t *component.Tower, kind defs.UpgradeKind) int {
	def := t.Def()
	cost, ok := economy.UpgradeCost(def.BaseCost, t.Level(kind), def.Upgradable, config.MaxUpgradeLevel)
	if !ok {
		return -1
	}
	return cost
}

// PurchaseUpgrade buys one step on the selected tower's track.
func (g *Game) PurchaseUpgrade(kind defs.UpgradeKind) Reason {
	if g.World.Terminal() {
		return ReasonGameEnded
	}
	t := g.SelectedTower()
	if t == nil {
		return ReasonNoSelection
	}
	if !t.Def().Upgradable {
		return ReasonNotUpgradable
	}
	if !t.CanUpgrade(kind) {
		return ReasonMaxLevel
	}
	cost := UpgradeCost(t, kind)
	if cost > g.World.Beans {
		return ReasonFunds
	}
	g.World.Beans -= cost
	t.Upgrade(kind)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID:      t.ID,
		Type:    t.Type,
		Pos:     t.Pos,
		Beans:   cost,
		Upgrade: kind,
		Level:   t.Level(kind),
	}})
	return ReasonOK
}

// SellValue returns what selling t would refund now.
func (g *Game) SellValue(t *component.Tower) int {
	def := t.Def()
	replacement := economy.Cost(def.BaseCost, g.World.Owned[t.Type]-1)
	spent := economy.UpgradeSpent(def.BaseCost, t.Levels[:]...)
	return economy.SellValue(replacement, spent)
}

// SellSelectedTower refunds the selected tower and removes it at the end of the tick.
func (g *Game) SellSelectedTower() Reason {
	if g.World.Terminal() {
		return ReasonGameEnded
	}
	t := g.SelectedTower()
	if t == nil {
		return ReasonNoSelection
	}
	value := g.SellValue(t)
	g.World.Beans += value
	g.World.RemoveTower(t)
	g.selected = 0

	logger.Infof("Sold %s #%d for %d beans", t.Type, t.ID, value)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: event.TowerData{
		ID:    t.ID,
		Type:  t.Type,
		Pos:   t.Pos,
		Beans: value,
	}})
	return ReasonOK
}
