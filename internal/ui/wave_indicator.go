// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"bean-defense/internal/defs"
)

// WaveIndicator отображает номер текущего раунда римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
	font             font.Face
}

// NewWaveIndicator создает новый индикатор раунда.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{70, 130, 180, 255},
		BossColor:        color.RGBA{220, 40, 40, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
		font:             basicfont.Face7x13,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, round int) {
	if round <= 0 {
		return
	}
	label := toRoman(round)

	textColor := i.Color
	if defs.IsBossRound(round) {
		textColor = i.BossColor
	}

	bounds := text.BoundString(i.font, label)
	x := i.X - (bounds.Max.X-bounds.Min.X)/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.font, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.font, x, i.Y, textColor)
}
