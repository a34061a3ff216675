// internal/ui/tower_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"bean-defense/internal/app"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
)

const (
	panelMargin    = 10
	lineHeight     = 16
	buttonHeight   = 26
	buttonSpacing  = 4
	towerButtonsY  = 130
	selectionTop   = 370
	livesCircleR   = 7.0
	livesCircleGap = 4.0
)

// ActionKind — что запросил клик по панели.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelectTower
	ActionUpgrade
	ActionSell
	ActionClose
)

// PanelAction is the result of a click on the side panel.
type PanelAction struct {
	Kind    ActionKind
	Tower   defs.TowerType
	Upgrade defs.UpgradeKind
}

type panelButton struct {
	*Button
	action PanelAction
}

// TowerPanel is the right-hand side panel: economy, purchase buttons and the tower menu.
type TowerPanel struct {
	X        float32
	Width    float32
	fontFace font.Face
	buttons  []panelButton
	snap     app.Snapshot
}

func NewTowerPanel() *TowerPanel {
	return &TowerPanel{
		X:        config.GameWidth,
		Width:    config.PanelWidth,
		fontFace: basicfont.Face7x13,
	}
}

// Layout rebuilds the buttons for s. Call it once per frame before HitTest or Draw.
func (p *TowerPanel) Layout(s app.Snapshot) {
	p.snap = s
	p.buttons = p.buttons[:0]
	bx := p.X + panelMargin
	bw := p.Width - 2*panelMargin

	for i, tb := range s.Buttons {
		y := float32(towerButtonsY + i*(buttonHeight+buttonSpacing))
		label := fmt.Sprintf("%d %s  %d", i+1, tb.Name, tb.Cost)
		if !tb.Unlocked {
			label = fmt.Sprintf("%d %s", i+1, tb.Name)
		}
		b := NewButton(bx, y, bw, buttonHeight, label)
		b.Disabled = !tb.Unlocked || s.GameOver || s.GameWon
		b.Active = s.Preview != nil && s.Preview.Type == tb.Type
		if tb.Unlocked && tb.Cost > s.Beans {
			b.TextColor = color.RGBA{150, 30, 30, 255}
		}
		p.buttons = append(p.buttons, panelButton{b, PanelAction{Kind: ActionSelectTower, Tower: tb.Type}})
	}

	t := s.Selected
	if t == nil {
		return
	}
	y := float32(selectionTop + 4*lineHeight)
	if !t.Trap {
		for k, cost := range t.UpgradeCosts {
			kind := defs.UpgradeKind(k)
			label := fmt.Sprintf("%s L%d  %d", kind, t.Levels[k], cost)
			if cost < 0 {
				label = fmt.Sprintf("%s L%d  max", kind, t.Levels[k])
			}
			b := NewButton(bx, y, bw, buttonHeight, label)
			b.Disabled = cost < 0 || cost > s.Beans
			p.buttons = append(p.buttons, panelButton{b, PanelAction{Kind: ActionUpgrade, Upgrade: kind}})
			y += buttonHeight + buttonSpacing
		}
	}
	half := (bw - buttonSpacing) / 2
	sell := NewButton(bx, y, half, buttonHeight, fmt.Sprintf("Sell +%d", t.SellValue))
	p.buttons = append(p.buttons, panelButton{sell, PanelAction{Kind: ActionSell}})
	closeBtn := NewButton(bx+half+buttonSpacing, y, half, buttonHeight, "Close")
	p.buttons = append(p.buttons, panelButton{closeBtn, PanelAction{Kind: ActionClose}})
}

// Contains reports whether a point lies on the panel.
func (p *TowerPanel) Contains(x, y int) bool {
	return float32(x) >= p.X && float32(x) < p.X+p.Width && y >= 0 && y < config.ScreenHeight
}

// HitTest returns the action of the enabled button under (x, y).
func (p *TowerPanel) HitTest(x, y int) (PanelAction, bool) {
	for _, b := range p.buttons {
		if b.IsClicked(x, y) {
			return b.action, true
		}
	}
	return PanelAction{}, false
}

// Draw отрисовывает панель по последнему Layout.
func (p *TowerPanel) Draw(screen *ebiten.Image, mx, my int) {
	s := p.snap
	vector.DrawFilledRect(screen, p.X, 0, p.Width, config.ScreenHeight, config.PanelColor, false)

	x := int(p.X) + panelMargin
	y := 64
	p.line(screen, x, &y, fmt.Sprintf("Beans: %d", s.Beans))
	p.drawLives(screen, x, y, s.Lives)
	y += lineHeight + 4
	switch {
	case s.RoundActive:
		p.line(screen, x, &y, fmt.Sprintf("Round %d  left: %d", s.Round, s.RemainingToSpawn))
	case s.GameOver || s.GameWon:
		p.line(screen, x, &y, fmt.Sprintf("Round %d", s.Round))
	default:
		p.line(screen, x, &y, fmt.Sprintf("Round %d in %.1fs", s.Round+1, s.Countdown))
	}

	for _, b := range p.buttons {
		b.Draw(screen, mx, my)
	}

	if t := s.Selected; t != nil {
		y = selectionTop
		p.line(screen, x, &y, fmt.Sprintf("%s #%d", t.Type, t.ID))
		if t.Trap {
			p.line(screen, x, &y, fmt.Sprintf("dmg %.0f", t.Damage))
		} else {
			p.line(screen, x, &y, fmt.Sprintf("dmg %.0f  spd %.2f", t.Damage, t.AttackSpeed))
			p.line(screen, x, &y, fmt.Sprintf("range %.0f", t.Range))
		}
	}
}

func (p *TowerPanel) line(screen *ebiten.Image, x int, y *int, s string) {
	text.Draw(screen, s, p.fontFace, x, *y, config.TextLightColor)
	*y += lineHeight
}

// drawLives рисует жизни кружками, как индикатор здоровья.
func (p *TowerPanel) drawLives(screen *ebiten.Image, x, y, lives int) {
	for j := 0; j < config.StartingLives; j++ {
		cx := float32(x) + livesCircleR + float32(j)*(livesCircleR*2+livesCircleGap)
		cy := float32(y) - livesCircleR + 2
		c := color.RGBA{0, 0, 0, 255}
		if j < lives {
			c = color.RGBA{220, 40, 40, 255}
		}
		vector.DrawFilledCircle(screen, cx, cy, livesCircleR, c, true)
		vector.StrokeCircle(screen, cx, cy, livesCircleR, 1, color.White, true)
	}
}
