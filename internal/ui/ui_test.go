package ui

import (
	"testing"

	"bean-defense/internal/app"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 10: "X", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSpeedButtonCycles(t *testing.T) {
	b := NewSpeedButton(100, 30, config.SpeedButtonSize, config.SpeedButtonColors)
	want := []int{1, 2, 4, 1}
	for i, w := range want {
		if got := b.Multiplier(); got != w {
			t.Fatalf("step %d: multiplier %d, want %d", i, got, w)
		}
		b.ToggleState()
	}
	if !b.IsClicked(100, 30) || b.IsClicked(200, 200) {
		t.Fatalf("hit test wrong")
	}
}

func TestButtonContains(t *testing.T) {
	b := NewButton(10, 10, 100, 20, "x")
	if !b.Contains(10, 10) || !b.Contains(109, 29) {
		t.Fatalf("inside points rejected")
	}
	if b.Contains(110, 15) || b.Contains(50, 30) {
		t.Fatalf("outside points accepted")
	}
	b.Disabled = true
	if b.IsClicked(50, 15) {
		t.Fatalf("disabled button clicked")
	}
}

func TestPhaseOf(t *testing.T) {
	if PhaseOf(app.Snapshot{}) != PhaseCountdown {
		t.Fatalf("idle snapshot should be countdown")
	}
	if PhaseOf(app.Snapshot{RoundActive: true}) != PhaseRound {
		t.Fatalf("active round")
	}
	if PhaseOf(app.Snapshot{GameOver: true, RoundActive: true}) != PhaseOver {
		t.Fatalf("game over wins over round")
	}
	if PhaseOf(app.Snapshot{GameWon: true}) != PhaseWon {
		t.Fatalf("won")
	}
}

func buttonCenter(p *TowerPanel, i int) (int, int) {
	b := p.buttons[i]
	return int(b.X + b.W/2), int(b.Y + b.H/2)
}

func TestTowerPanelActions(t *testing.T) {
	g := app.NewGame(app.Options{Difficulty: defs.Easy, Map: pathmap.MapGrass, Seed: 3})
	p := NewTowerPanel()
	p.Layout(g.Snapshot())

	if len(p.buttons) != len(defs.PlaceableTowers) {
		t.Fatalf("buttons = %d, want one per tower", len(p.buttons))
	}
	x, y := buttonCenter(p, 0)
	a, ok := p.HitTest(x, y)
	if !ok || a.Kind != ActionSelectTower || a.Tower != defs.TowerApple {
		t.Fatalf("apple button = %+v, %v", a, ok)
	}
	// кактус закрыт без пустыни
	x, y = buttonCenter(p, len(defs.PlaceableTowers)-1)
	if _, ok := p.HitTest(x, y); ok {
		t.Fatalf("locked cactus button is clickable")
	}
	if !p.Contains(config.GameWidth+5, 5) || p.Contains(config.GameWidth-5, 5) {
		t.Fatalf("panel bounds wrong")
	}

	pos := geom.Pt(250, 200)
	g.SelectTowerType(defs.TowerApple)
	if r := g.AttemptPlacement(pos); r != app.ReasonOK {
		t.Fatalf("place: %v", r)
	}
	g.OpenTowerMenu(pos)
	p.Layout(g.Snapshot())

	// 6 покупок, 3 улучшения, продать и закрыть
	if len(p.buttons) != len(defs.PlaceableTowers)+5 {
		t.Fatalf("buttons with selection = %d", len(p.buttons))
	}
	x, y = buttonCenter(p, len(defs.PlaceableTowers))
	a, ok = p.HitTest(x, y)
	if !ok || a.Kind != ActionUpgrade || a.Upgrade != defs.UpgradeDamage {
		t.Fatalf("first upgrade button = %+v, %v", a, ok)
	}
	x, y = buttonCenter(p, len(p.buttons)-2)
	if a, _ := p.HitTest(x, y); a.Kind != ActionSell {
		t.Fatalf("sell button = %+v", a)
	}
}
