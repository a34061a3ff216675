package app

import (
	"reflect"
	"testing"

	"bean-defense/internal/component"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/event"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

var (
	openGrass  = geom.Pt(250, 200) // вдали от пути и воды
	openGrass2 = geom.Pt(250, 240)
	onPath     = geom.Pt(352, 50)
	nearPath   = geom.Pt(367, 50) // 15 от первого сегмента
)

func newTestGame(diff defs.Difficulty) *Game {
	return NewGame(Options{Difficulty: diff, Map: pathmap.MapGrass, Seed: 1})
}

func TestResetIsIdempotent(t *testing.T) {
	g := newTestGame(defs.Easy)
	g.SelectTowerType(defs.TowerApple)
	g.AttemptPlacement(openGrass)
	for i := 0; i < 200; i++ {
		g.Update(0.05)
	}

	g.Reset()
	first := g.Snapshot()
	g.Reset()
	second := g.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("snapshots differ:\n%+v\n%+v", first, second)
	}
	if first.Beans != 100 || first.Lives != 3 || first.Round != 0 || len(first.Towers) != 0 ||
		len(first.Enemies) != 0 || len(first.Projectiles) != 0 || first.GameOver || first.GameWon {
		t.Fatalf("reset state = %+v", first)
	}
}

func TestBuyThenSellRefundsHalf(t *testing.T) {
	for _, typ := range []defs.TowerType{defs.TowerApple, defs.TowerCarrot, defs.TowerPineapple} {
		g := newTestGame(defs.Easy)
		// одна башня того же типа уже стоит, чтобы цена была не базовой
		g.SelectTowerType(typ)
		if r := g.AttemptPlacement(openGrass2); r != ReasonOK {
			t.Fatalf("%v: first placement = %v", typ, r)
		}
		ownedBefore := g.World.Owned[typ]
		beansBefore := g.World.Beans
		cost := g.Cost(typ)

		g.SelectTowerType(typ)
		if r := g.AttemptPlacement(geom.Pt(250, 170)); r != ReasonOK {
			t.Fatalf("%v: placement = %v", typ, r)
		}
		if r := g.OpenTowerMenu(geom.Pt(250, 170)); r != ReasonOK {
			t.Fatalf("%v: open menu = %v", typ, r)
		}
		if r := g.SellSelectedTower(); r != ReasonOK {
			t.Fatalf("%v: sell = %v", typ, r)
		}

		if got := beansBefore - g.World.Beans; got != cost-cost/2 {
			t.Fatalf("%v: net loss %d, want %d (cost %d)", typ, got, cost-cost/2, cost)
		}
		if g.World.Owned[typ] != ownedBefore {
			t.Fatalf("%v: owned = %d, want %d", typ, g.World.Owned[typ], ownedBefore)
		}
		if g.SelectedTower() != nil {
			t.Fatalf("%v: selection survived the sale", typ)
		}
	}
}

func TestPlacementReasons(t *testing.T) {
	g := newTestGame(defs.Hard) // 40 бобов

	if r := g.AttemptPlacement(openGrass); r != ReasonNoTowerType {
		t.Fatalf("empty hand = %v", r)
	}
	g.SelectTowerType(defs.TowerCarrot)
	if r := g.AttemptPlacement(onPath); r != ReasonTerrain {
		t.Fatalf("on path = %v", r)
	}
	if r := g.AttemptPlacement(geom.Pt(580, 60)); r != ReasonTerrain {
		t.Fatalf("water = %v", r)
	}
	if r := g.AttemptPlacement(openGrass); r != ReasonOK {
		t.Fatalf("open grass = %v", r)
	}
	if g.World.Beans != 15 {
		t.Fatalf("beans = %d, want 15", g.World.Beans)
	}
	if s := g.Snapshot(); s.Preview != nil {
		t.Fatalf("hand not cleared after placement")
	}

	g.SelectTowerType(defs.TowerCarrot)
	if r := g.AttemptPlacement(geom.Pt(250, 210)); r != ReasonOverlap {
		t.Fatalf("overlap = %v", r)
	}
	if r := g.AttemptPlacement(openGrass2); r != ReasonFunds {
		t.Fatalf("funds = %v (cost %d, beans %d)", r, g.Cost(defs.TowerCarrot), g.World.Beans)
	}
	if g.World.Beans != 15 || len(g.World.Towers) != 1 {
		t.Fatalf("failed placements changed state")
	}
}

func TestTrapPlacementNeedsPath(t *testing.T) {
	g := newTestGame(defs.Easy)
	g.SelectTowerType(defs.TowerBananaPeel)
	if r := g.AttemptPlacement(openGrass); r != ReasonTerrain {
		t.Fatalf("peel off path = %v", r)
	}
	if r := g.AttemptPlacement(nearPath); r != ReasonOK {
		t.Fatalf("peel on path = %v", r)
	}
}

func TestUpgradeRules(t *testing.T) {
	g := newTestGame(defs.Easy)
	g.World.Beans = 1000
	g.SelectTowerType(defs.TowerApple)
	g.AttemptPlacement(openGrass)

	if r := g.PurchaseUpgrade(defs.UpgradeDamage); r != ReasonNoSelection {
		t.Fatalf("no selection = %v", r)
	}
	g.OpenTowerMenu(openGrass)
	for i := 0; i < 3; i++ {
		if r := g.PurchaseUpgrade(defs.UpgradeDamage); r != ReasonOK {
			t.Fatalf("upgrade %d = %v", i+1, r)
		}
	}
	// 7 + 15 + 22
	if g.World.Beans != 1000-15-44 {
		t.Fatalf("beans = %d", g.World.Beans)
	}
	damage := g.SelectedTower().Damage
	if r := g.PurchaseUpgrade(defs.UpgradeDamage); r != ReasonMaxLevel {
		t.Fatalf("4th upgrade = %v", r)
	}
	if g.World.Beans != 1000-15-44 || g.SelectedTower().Damage != damage {
		t.Fatalf("4th upgrade charged or changed stats")
	}
	if s := g.Snapshot(); s.Selected == nil || s.Selected.UpgradeCosts[defs.UpgradeDamage] != -1 {
		t.Fatalf("snapshot upgrade cost = %+v", s.Selected)
	}

	g.World.Beans = 3
	if r := g.PurchaseUpgrade(defs.UpgradeRange); r != ReasonFunds {
		t.Fatalf("poor upgrade = %v", r)
	}
}

func TestTrapsAreNotUpgradable(t *testing.T) {
	g := newTestGame(defs.Easy)
	g.SelectTowerType(defs.TowerBananaPeel)
	g.AttemptPlacement(nearPath)
	g.OpenTowerMenu(nearPath)
	if r := g.PurchaseUpgrade(defs.UpgradeDamage); r != ReasonNotUpgradable {
		t.Fatalf("peel upgrade = %v", r)
	}
}

func TestCactusLock(t *testing.T) {
	g := newTestGame(defs.Easy)
	if r := g.SelectTowerType(defs.TowerCactus); r != ReasonLocked {
		t.Fatalf("locked cactus = %v", r)
	}
	g = NewGame(Options{Difficulty: defs.Easy, Map: pathmap.MapGrass, CactusUnlocked: true})
	if r := g.SelectTowerType(defs.TowerCactus); r != ReasonOK {
		t.Fatalf("unlocked cactus = %v", r)
	}
}

func TestTutorialUnlocksOneTowerPerRound(t *testing.T) {
	g := NewGame(Options{Difficulty: defs.Hard, Map: pathmap.MapTutorial, Seed: 3})
	if g.World.Difficulty != defs.Easy {
		t.Fatalf("tutorial difficulty = %s", g.World.Difficulty.Name)
	}
	if r := g.SelectTowerType(defs.TowerCarrot); r != ReasonLocked {
		t.Fatalf("carrot before round 2 = %v", r)
	}
	if r := g.SelectTowerType(defs.TowerApple); r != ReasonOK {
		t.Fatalf("apple = %v", r)
	}

	g.World.Round = 1
	g.World.Countdown = 0.1
	g.Update(0.1)
	if g.World.Round != 2 {
		t.Fatalf("round = %d", g.World.Round)
	}
	if !g.IsUnlocked(defs.TowerCarrot) || g.IsUnlocked(defs.TowerPotato) {
		t.Fatalf("unlocks after round 2 wrong")
	}

	g.Reset()
	if g.IsUnlocked(defs.TowerCarrot) {
		t.Fatalf("reset kept tutorial unlocks")
	}
}

func TestTerminalStateFreezesAndRejects(t *testing.T) {
	g := newTestGame(defs.Easy)
	g.SelectTowerType(defs.TowerApple)
	g.AttemptPlacement(openGrass)
	g.World.GameOver = true
	g.World.Countdown = 0.01
	before := g.Snapshot()

	g.Update(1)
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Fatalf("terminal world changed")
	}
	if r := g.SelectTowerType(defs.TowerApple); r != ReasonGameEnded {
		t.Fatalf("select after game over = %v", r)
	}
	g.Enqueue(ResetIntent())
	g.Update(0)
	if g.World.GameOver || len(g.World.Towers) != 0 {
		t.Fatalf("queued reset did not apply")
	}
}

func TestEnqueueDrainsBeforeSimulation(t *testing.T) {
	g := newTestGame(defs.Easy)
	var seen [][]Intent
	g.SetTickObserver(func(dt float64, intents []Intent) {
		seen = append(seen, intents)
	})
	var placed []event.TowerData
	g.EventDispatcher.Subscribe(event.TowerPlaced, event.ListenerFunc(func(e event.Event) {
		placed = append(placed, e.Data.(event.TowerData))
	}))

	g.Enqueue(SelectTowerType(defs.TowerPotato))
	g.Enqueue(MovePreview(openGrass))
	g.Enqueue(AttemptPlacement(openGrass))
	if len(g.World.Towers) != 0 {
		t.Fatalf("intent applied before Update")
	}
	g.Update(0.01)
	g.Update(0.01)

	if len(seen) != 2 || len(seen[0]) != 3 || len(seen[1]) != 0 {
		t.Fatalf("observer saw %v", seen)
	}
	if len(placed) != 1 || placed[0].Type != defs.TowerPotato || placed[0].Beans != 20 {
		t.Fatalf("placed = %+v", placed)
	}
}

func TestSpentPeelClearsSelection(t *testing.T) {
	g := newTestGame(defs.Easy)
	g.SelectTowerType(defs.TowerBananaPeel)
	g.AttemptPlacement(nearPath)
	g.OpenTowerMenu(nearPath)
	peel := g.SelectedTower()
	g.World.RemoveTower(peel)
	g.Update(0.01)
	if g.Snapshot().Selected != nil || len(g.World.Towers) != 0 {
		t.Fatalf("spent peel still selected or not compacted")
	}
}

func TestFullGameWithApplesIsDeterministic(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(defs.Medium)
		g.Enqueue(SelectTowerType(defs.TowerApple))
		g.Enqueue(AttemptPlacement(openGrass))
		g.Enqueue(SelectTowerType(defs.TowerPotato))
		g.Enqueue(AttemptPlacement(geom.Pt(150, 250)))
		for i := 0; i < 3000; i++ {
			g.Update(1.0 / 60.0)
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed and inputs gave different worlds")
	}
	if a.Round < 1 || len(a.Towers) != 2 {
		t.Fatalf("round = %d towers = %d after 50 s", a.Round, len(a.Towers))
	}
}

func TestUpgradeCostStopsAtMaxLevel(t *testing.T) {
	tw := component.NewTower(1, defs.TowerCarrot, openGrass)
	for level := 0; level < config.MaxUpgradeLevel; level++ {
		want := 25 * (level + 1) / 2
		if got := UpgradeCost(tw, defs.UpgradeAttackSpeed); got != want {
			t.Fatalf("level %d cost = %d, want %d", level, got, want)
		}
		if !tw.Upgrade(defs.UpgradeAttackSpeed) {
			t.Fatalf("upgrade to %d refused", level+1)
		}
	}
	if got := UpgradeCost(tw, defs.UpgradeAttackSpeed); got != -1 {
		t.Fatalf("cost at max level = %d, want -1", got)
	}
	if got := UpgradeCost(component.NewTower(2, defs.TowerCactus, openGrass), defs.UpgradeDamage); got != -1 {
		t.Fatalf("trap upgrade cost = %d, want -1", got)
	}
}
