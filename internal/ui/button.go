// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H    float32
	Text          string
	TextColor     color.Color
	BgColor       color.Color
	HoverColor    color.Color
	DisabledColor color.Color
	Disabled      bool
	Active        bool // подсвеченная кнопка, например выбранная башня
	Font          font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, text string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:          text,
		TextColor:     color.RGBA{20, 20, 30, 255},
		BgColor:       color.RGBA{200, 200, 200, 255},
		HoverColor:    color.RGBA{160, 160, 160, 255},
		DisabledColor: color.RGBA{90, 90, 90, 255},
		Font:          basicfont.Face7x13,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// IsClicked — клик по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mx, my int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = b.DisabledColor
	case b.Active || b.Contains(mx, my):
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	border := color.RGBA{60, 60, 60, 255}
	if b.Active {
		border = color.RGBA{255, 255, 255, 255}
	}
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, border, false)

	bounds := text.BoundString(b.Font, b.Text)
	tx := int(b.X) + (int(b.W)-(bounds.Max.X-bounds.Min.X))/2
	ty := int(b.Y) + (int(b.H)+(bounds.Max.Y-bounds.Min.Y))/2
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}
