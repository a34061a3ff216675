// pkg/render/world_renderer.go
package render

import (
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

// WorldRenderer draws the dynamic part of a snapshot on top of the map.
type WorldRenderer struct {
	fontFace font.Face
}

func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{fontFace: basicfont.Face7x13}
}

// Draw renders towers, enemies, projectiles and the placement ghost.
func (r *WorldRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	for _, t := range s.Towers {
		r.drawTower(screen, t)
	}
	if s.Selected != nil && !s.Selected.Trap {
		sel := s.Selected
		vector.StrokeCircle(screen, float32(sel.Pos.X), float32(sel.Pos.Y), float32(sel.Range), 1.5, config.RangeRingColor, true)
	}
	for _, e := range s.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}
	if s.Preview != nil {
		r.drawPreview(screen, *s.Preview)
	}
	r.drawBanner(screen, s)
}

func (r *WorldRenderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	c := config.TowerColors[t.Type]
	half := float32(t.Footprint / 2)
	x, y := float32(t.Pos.X), float32(t.Pos.Y)
	if t.Trap {
		vector.DrawFilledCircle(screen, x, y, half*0.7, c, true)
		vector.StrokeCircle(screen, x, y, half*0.7, float32(config.StrokeWidth), DarkenColor(c), true)
		return
	}
	vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, c, true)
	vector.StrokeRect(screen, x-half, y-half, half*2, half*2, float32(config.StrokeWidth), DarkenColor(c), true)

	// точки уровней улучшений под башней
	level := t.Levels[0] + t.Levels[1] + t.Levels[2]
	for i := 0; i < level; i++ {
		vector.DrawFilledCircle(screen, x-half+4+float32(i)*6, y+half-4, 2, config.TextLightColor, true)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	c := config.EnemyColors[e.Type]
	x, y := float32(e.Pos.X), float32(e.Pos.Y)
	radius := float32(e.Size / 2)
	vector.DrawFilledCircle(screen, x, y, radius, c, true)
	if e.Type == defs.EnemyBoss {
		vector.StrokeCircle(screen, x, y, radius, 2, config.TextLightColor, true)
	}
	if e.MaxHealth <= 0 || e.Health >= e.MaxHealth {
		return
	}
	w := radius * 2
	frac := float32(e.Health / e.MaxHealth)
	vector.DrawFilledRect(screen, x-radius, y-radius-6, w, 3, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, x-radius, y-radius-6, w*frac, 3, config.HealthBarFront, false)
}

func (r *WorldRenderer) drawPreview(screen *ebiten.Image, p app.PreviewView) {
	c := config.PreviewBadColor
	if p.Valid {
		c = config.PreviewOKColor
	}
	half := float32(p.Footprint / 2)
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, c, true)
	if p.Range > 0 {
		vector.StrokeCircle(screen, x, y, float32(p.Range), 1, config.RangeRingColor, true)
	}
	if !p.Valid {
		tc := config.TextLightColor
		if IsLight(config.BackgroundColor) {
			tc = config.TextDarkColor
		}
		r.centeredText(screen, p.Reason.String(), int(x), int(y-half)-4, tc)
	}
}

func (r *WorldRenderer) drawBanner(screen *ebiten.Image, s app.Snapshot) {
	msg := ""
	switch {
	case s.GameWon:
		msg = "YOU WIN!  press R to play again"
	case s.GameOver:
		msg = "GAME OVER  press R to try again"
	case s.Banner > 0:
		msg = "Defend the path!"
	}
	if msg == "" {
		return
	}
	cx, cy := config.GameWidth/2, config.ScreenHeight/2
	w := float32(len(msg)*config.TextCharWidth + 24)
	vector.DrawFilledRect(screen, float32(cx)-w/2, float32(cy)-18, w, 30, WithAlpha(config.TextDarkColor, 160), false)
	r.centeredText(screen, msg, cx, cy+config.TextOffsetY, config.TextLightColor)
}

func (r *WorldRenderer) centeredText(screen *ebiten.Image, s string, cx, y int, c color.Color) {
	b := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, cx-(b.Max.X-b.Min.X)/2, y, c)
}
