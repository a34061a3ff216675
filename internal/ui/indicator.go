// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bean-defense/internal/app"
)

// Phase — что сейчас происходит в сессии.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseRound
	PhaseOver
	PhaseWon
)

// PhaseOf reads the phase off a snapshot.
func PhaseOf(s app.Snapshot) Phase {
	switch {
	case s.GameWon:
		return PhaseWon
	case s.GameOver:
		return PhaseOver
	case s.RoundActive:
		return PhaseRound
	}
	return PhaseCountdown
}

var phaseColors = map[Phase]color.RGBA{
	PhaseCountdown: {0, 200, 100, 255},
	PhaseRound:     {220, 60, 60, 255},
	PhaseOver:      {60, 60, 60, 255},
	PhaseWon:       {250, 210, 40, 255},
}

// StateIndicator — кружок цвета текущей фазы.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase Phase) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, phaseColors[phase], true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx, dy := float32(x)-i.X, float32(y)-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
