// internal/app/intents.go
package app

import (
	"fmt"

	"bean-defense/internal/defs"
	"bean-defense/pkg/geom"
)

// Reason объясняет результат намерения игрока. Ошибкой он не является.
type Reason int

const (
	ReasonOK Reason = iota
	ReasonTerrain
	ReasonOverlap
	ReasonFunds
	ReasonNoTowerType
	ReasonNoSelection
	ReasonMaxLevel
	ReasonNotUpgradable
	ReasonLocked
	ReasonGameEnded
	ReasonUnknownIntent
)

var reasonNames = []string{
	"ok", "terrain", "overlap", "funds", "no_tower_type",
	"no_selection", "max_level", "not_upgradable", "locked", "game_ended",
	"unknown_intent",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// IntentKind names a discrete player action.
type IntentKind string

const (
	IntentSelectTowerType   IntentKind = "select_tower_type"
	IntentMovePreview       IntentKind = "move_preview"
	IntentAttemptPlacement  IntentKind = "attempt_placement"
	IntentOpenTowerMenu     IntentKind = "open_tower_menu"
	IntentCloseTowerMenu    IntentKind = "close_tower_menu"
	IntentPurchaseUpgrade   IntentKind = "purchase_upgrade"
	IntentSellSelectedTower IntentKind = "sell_selected_tower"
	IntentReset             IntentKind = "reset"
)

// Intent is a queued player action. Only the fields its Kind needs are set.
type Intent struct {
	Kind    IntentKind       `json:"kind"`
	Tower   defs.TowerType   `json:"tower,omitempty"`
	X       float64          `json:"x,omitempty"`
	Y       float64          `json:"y,omitempty"`
	Upgrade defs.UpgradeKind `json:"upgrade,omitempty"`
}

func SelectTowerType(t defs.TowerType) Intent {
	return Intent{Kind: IntentSelectTowerType, Tower: t}
}

func MovePreview(p geom.Point) Intent {
	return Intent{Kind: IntentMovePreview, X: p.X, Y: p.Y}
}

func AttemptPlacement(p geom.Point) Intent {
	return Intent{Kind: IntentAttemptPlacement, X: p.X, Y: p.Y}
}

func OpenTowerMenu(p geom.Point) Intent {
	return Intent{Kind: IntentOpenTowerMenu, X: p.X, Y: p.Y}
}

func CloseTowerMenu() Intent { return Intent{Kind: IntentCloseTowerMenu} }

func PurchaseUpgrade(k defs.UpgradeKind) Intent {
	return Intent{Kind: IntentPurchaseUpgrade, Upgrade: k}
}

func SellSelectedTower() Intent { return Intent{Kind: IntentSellSelectedTower} }

func ResetIntent() Intent { return Intent{Kind: IntentReset} }

// Enqueue queues an intent for the start of the next tick.
func (g *Game) Enqueue(in Intent) {
	g.inbox = append(g.inbox, in)
}

// Apply executes an intent immediately.
func (g *Game) Apply(in Intent) Reason {
	pos := geom.Pt(in.X, in.Y)
	switch in.Kind {
	case IntentSelectTowerType:
		return g.SelectTowerType(in.Tower)
	case IntentMovePreview:
		return g.MovePreview(pos)
	case IntentAttemptPlacement:
		return g.AttemptPlacement(pos)
	case IntentOpenTowerMenu:
		return g.OpenTowerMenu(pos)
	case IntentCloseTowerMenu:
		return g.CloseTowerMenu()
	case IntentPurchaseUpgrade:
		return g.PurchaseUpgrade(in.Upgrade)
	case IntentSellSelectedTower:
		return g.SellSelectedTower()
	case IntentReset:
		return g.Reset()
	}
	return ReasonUnknownIntent
}
