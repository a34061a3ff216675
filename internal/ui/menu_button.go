// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	X, Y, W, H float32
	Text       string
	Selected   bool
	Locked     bool
	bgColor    color.RGBA
	fgColor    color.RGBA
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(x, y, w, h float32, text string) *MenuButton {
	return &MenuButton{
		X: x, Y: y, W: w, H: h,
		Text:    text,
		bgColor: color.RGBA{128, 128, 128, 255},
		fgColor: color.RGBA{0, 0, 0, 255},
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	bg := b.bgColor
	label := b.Text
	switch {
	case b.Locked:
		bg = color.RGBA{60, 60, 60, 255}
		label += " (locked)"
	case b.Selected:
		bg = color.RGBA{230, 200, 80, 255}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, color.RGBA{200, 200, 200, 255}, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := int(b.X) + (int(b.W)-(bounds.Max.X-bounds.Min.X))/2
	ty := int(b.Y) + (int(b.H)+(bounds.Max.Y-bounds.Min.Y))/2
	text.Draw(screen, label, face, tx, ty, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return !b.Locked && fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}
