// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// speedMultipliers по состояниям кнопки: x1, x2, x4.
var speedMultipliers = []int{1, 2, 4}

// SpeedButton переключает ускорение симуляции.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Multiplier returns how many ticks run per frame.
func (b *SpeedButton) Multiplier() int {
	return speedMultipliers[b.CurrentState%len(speedMultipliers)]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	c := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// круг, так как форма сложная
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(speedMultipliers)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// Reset возвращает скорость x1.
func (b *SpeedButton) Reset() {
	b.CurrentState = 0
}

var fillImg *ebiten.Image

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.Color) {
	if fillImg == nil {
		fillImg = ebiten.NewImage(1, 1)
		fillImg.Fill(color.White)
	}
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	paint(vs, c)
	screen.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vs, is = path.AppendVerticesAndIndicesForStroke(vs[:0], is[:0], &vector.StrokeOptions{Width: 1})
	paint(vs, color.White)
	screen.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func paint(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
