package termview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"bean-defense/internal/app"
	"bean-defense/internal/defs"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(PanelCols+80, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCellMappingRoundTrip(t *testing.T) {
	v := New(newScreen(t), pathmap.MustGet(pathmap.MapGrass))
	for _, c := range [][2]int{{0, 0}, {10, 5}, {79, 39}} {
		p := v.ToWorld(c[0], c[1])
		x, y := v.ToCell(p)
		if x != c[0] || y != c[1] {
			t.Errorf("cell %v -> %v -> (%d,%d)", c, p, x, y)
		}
	}
	if v.InField(80, 0) {
		t.Errorf("panel column reported as field")
	}
}

func TestDrawShowsTowersAndPanel(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame(app.Options{Difficulty: defs.Medium, Map: pathmap.MapGrass, Seed: 7})
	pos := geom.Pt(250, 200)
	g.SelectTowerType(defs.TowerApple)
	if r := g.AttemptPlacement(pos); r != app.ReasonOK {
		t.Fatalf("placement: %v", r)
	}
	v := New(screen, g.Map)
	v.Draw(g.Snapshot(), geom.Pt(600, 600), "hello")

	x, y := v.ToCell(pos)
	r, _, _, _ := screen.GetContent(x, y)
	if r != 'A' {
		t.Fatalf("tower glyph = %q, want 'A'", r)
	}

	var panel []string
	for y := 0; y < 40; y++ {
		panel = append(panel, strings.TrimSpace(row(screen, y)[80:]))
	}
	joined := strings.Join(panel, "\n")
	for _, want := range []string{"Beans: 54", "Lives: 3", "Round: 0", "hello"} {
		if !strings.Contains(joined, want) {
			t.Errorf("panel missing %q:\n%s", want, joined)
		}
	}
}

func TestDrawMarksPathAndWater(t *testing.T) {
	screen := newScreen(t)
	m := pathmap.MustGet(pathmap.MapGrass)
	v := New(screen, m)
	g := app.NewGame(app.Options{Map: pathmap.MapGrass, Seed: 1})
	v.Draw(g.Snapshot(), geom.Pt(-100, -100), "")

	mid := m.Path.PositionAt(1, 0.5)
	x, y := v.ToCell(mid)
	if r, _, _, _ := screen.GetContent(x, y); r != '·' {
		t.Errorf("path cell = %q", r)
	}
	wx, wy := v.ToCell(geom.Pt(600, 40))
	if r, _, _, _ := screen.GetContent(wx, wy); r != '≈' {
		t.Errorf("water cell = %q", r)
	}
}
