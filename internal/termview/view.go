// internal/termview/view.go
package termview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"bean-defense/internal/app"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/utils"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// PanelCols — ширина правой панели в клетках.
const PanelCols = 26

var (
	towerGlyphs = map[defs.TowerType]rune{
		defs.TowerApple:      'A',
		defs.TowerCarrot:     'C',
		defs.TowerPotato:     'P',
		defs.TowerPineapple:  'N',
		defs.TowerBananaPeel: '~',
		defs.TowerCactus:     '#',
	}
	// по октантам, 0 — вправо, по часовой на экране
	projectileGlyphs = [8]rune{'-', '\\', '|', '/', '-', '\\', '|', '/'}
	enemyGlyphs = map[defs.EnemyType]rune{
		defs.EnemySkeleton: 's',
		defs.EnemyZombie:   'z',
		defs.EnemyBoss:     'B',
		defs.EnemyTank:     't',
		defs.EnemyGhost:    'g',
	}
)

// View draws snapshots onto a tcell screen, squeezing the play field into the cell grid.
type View struct {
	screen tcell.Screen
	m      *pathmap.Map
}

func New(screen tcell.Screen, m *pathmap.Map) *View {
	return &View{screen: screen, m: m}
}

func (v *View) fieldSize() (int, int) {
	w, h := v.screen.Size()
	w -= PanelCols
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ToCell maps a play-field point to a cell.
func (v *View) ToCell(p geom.Point) (int, int) {
	w, h := v.fieldSize()
	x := int(p.X / config.GameWidth * float64(w))
	y := int(p.Y / config.ScreenHeight * float64(h))
	return x, y
}

// ToWorld maps a cell to the play-field point at its centre.
func (v *View) ToWorld(x, y int) geom.Point {
	w, h := v.fieldSize()
	return geom.Pt(
		(float64(x)+0.5)*config.GameWidth/float64(w),
		(float64(y)+0.5)*config.ScreenHeight/float64(h),
	)
}

// InField reports whether a cell lies on the play field.
func (v *View) InField(x, y int) bool {
	w, h := v.fieldSize()
	return x >= 0 && y >= 0 && x < w && y < h
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func style(fg, bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(bg))
}

// Draw renders s with the keyboard cursor at cursor and shows the frame.
func (v *View) Draw(s app.Snapshot, cursor geom.Point, status string) {
	v.screen.Clear()
	v.drawTerrain()
	for _, t := range s.Towers {
		v.drawTower(t, s.Selected != nil && s.Selected.ID == t.ID)
	}
	for _, e := range s.Enemies {
		v.put(e.Pos, enemyGlyphs[e.Type], style(config.EnemyColors[e.Type], config.PathColor))
	}
	for _, p := range s.Projectiles {
		v.put(p.Pos, projectileGlyphs[utils.Octant(p.Dir)], tcell.StyleDefault.Foreground(rgb(config.ProjectileColor)).Background(rgb(config.BackgroundColor)))
	}
	v.drawCursor(s, cursor)
	v.drawPanel(s, status)
	v.screen.Show()
}

func (v *View) put(p geom.Point, r rune, st tcell.Style) {
	x, y := v.ToCell(p)
	if !v.InField(x, y) {
		return
	}
	v.screen.SetContent(x, y, r, nil, st)
}

func (v *View) drawTerrain() {
	w, h := v.fieldSize()
	grass := style(config.TextLightColor, config.BackgroundColor)
	path := style(config.TextLightColor, config.PathColor)
	water := style(config.TextLightColor, config.WaterColor)
	// порог в клетках: половина ширины клетки в мировых единицах
	cellW := config.GameWidth / float64(w)
	threshold := math.Max(pathmap.DefaultPathThreshold*0.5, cellW*0.5)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := v.ToWorld(x, y)
			st := grass
			r := ' '
			switch {
			case v.m != nil && v.m.IsInRestrictedRegion(p):
				st, r = water, '≈'
			case v.m != nil && pathmap.PointNearPolyline(p, v.m.Path, threshold):
				st, r = path, '·'
			}
			v.screen.SetContent(x, y, r, nil, st)
		}
	}
}

func (v *View) drawTower(t app.TowerView, selected bool) {
	st := style(config.TextDarkColor, config.TowerColors[t.Type])
	if selected {
		st = st.Reverse(true)
	}
	v.put(t.Pos, towerGlyphs[t.Type], st)
}

func (v *View) drawCursor(s app.Snapshot, cursor geom.Point) {
	st := tcell.StyleDefault.Foreground(rgb(config.TextLightColor)).Reverse(true)
	r := '+'
	if s.Preview != nil {
		c := config.PreviewBadColor
		if s.Preview.Valid {
			c = config.PreviewOKColor
		}
		st = tcell.StyleDefault.Background(rgb(c)).Foreground(rgb(config.TextDarkColor))
		r = towerGlyphs[s.Preview.Type]
	}
	v.put(cursor, r, st)
}

func (v *View) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (v *View) drawPanel(s app.Snapshot, status string) {
	w, h := v.screen.Size()
	x0 := w - PanelCols
	if x0 < 0 {
		x0 = 0
	}
	bg := style(config.TextLightColor, config.PanelColor)
	for y := 0; y < h; y++ {
		for x := x0; x < w; x++ {
			v.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	lines := []string{
		fmt.Sprintf("%s  %s", s.Map, s.Difficulty),
		fmt.Sprintf("Beans: %d", s.Beans),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Round: %d", s.Round),
	}
	if s.RoundActive {
		lines = append(lines, fmt.Sprintf("Spawning: %d", s.RemainingToSpawn))
	} else if !s.GameOver && !s.GameWon {
		lines = append(lines, fmt.Sprintf("Next in %.1fs", s.Countdown))
	}
	lines = append(lines, "")
	for i, b := range s.Buttons {
		mark := " "
		if s.Preview != nil && s.Preview.Type == b.Type {
			mark = ">"
		}
		if !b.Unlocked {
			lines = append(lines, fmt.Sprintf("%s%d %-11s --", mark, i+1, b.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%d %-11s %3d", mark, i+1, b.Name, b.Cost))
	}
	if t := s.Selected; t != nil {
		lines = append(lines, "", fmt.Sprintf("%s #%d", t.Type, t.ID))
		if !t.Trap {
			names := [...]string{"d", "s", "r"}
			for k, c := range t.UpgradeCosts {
				cost := "max"
				if c >= 0 {
					cost = fmt.Sprint(c)
				}
				lines = append(lines, fmt.Sprintf(" [%s] %s L%d  %s", names[k], defs.UpgradeKind(k), t.Levels[k], cost))
			}
		}
		lines = append(lines, fmt.Sprintf(" [x] sell  +%d", t.SellValue))
	}
	switch {
	case s.GameWon:
		lines = append(lines, "", "YOU WIN!  [r] restart")
	case s.GameOver:
		lines = append(lines, "", "GAME OVER [r] restart")
	case s.Banner > 0:
		lines = append(lines, "", "Defend the path!")
	}
	if status != "" {
		lines = append(lines, "", status)
	}
	for i, l := range lines {
		if i >= h {
			break
		}
		v.text(x0+1, i, l, bg)
	}
}
