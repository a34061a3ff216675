// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue — короткий звуковой сигнал на игровое событие.
type Cue int

const (
	CueShot Cue = iota
	CueKill
	CueTrap
	CueEscape
	CueRoundStart
	CueRoundComplete
	CuePlace
	CueSell
	CueGameOver
	CueGameWon
)

var cueNames = [...]string{"shot", "kill", "trap", "escape", "round_start", "round_complete", "place", "sell", "game_over", "game_won"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// note is one tone of a cue.
type note struct {
	freq   float64
	length time.Duration
}

type cueDef struct {
	notes  []note
	volume float64 // линейная громкость 0..1
}

var cueTable = map[Cue]cueDef{
	CueShot:          {notes: []note{{1320, 25 * time.Millisecond}}, volume: 0.15},
	CueKill:          {notes: []note{{660, 40 * time.Millisecond}, {990, 60 * time.Millisecond}}, volume: 0.35},
	CueTrap:          {notes: []note{{220, 80 * time.Millisecond}}, volume: 0.4},
	CueEscape:        {notes: []note{{330, 120 * time.Millisecond}, {165, 180 * time.Millisecond}}, volume: 0.6},
	CueRoundStart:    {notes: []note{{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 120 * time.Millisecond}}, volume: 0.45},
	CueRoundComplete: {notes: []note{{784, 90 * time.Millisecond}, {1047, 160 * time.Millisecond}}, volume: 0.45},
	CuePlace:         {notes: []note{{440, 50 * time.Millisecond}}, volume: 0.3},
	CueSell:          {notes: []note{{880, 40 * time.Millisecond}, {440, 60 * time.Millisecond}}, volume: 0.3},
	CueGameOver:      {notes: []note{{392, 200 * time.Millisecond}, {311, 200 * time.Millisecond}, {196, 400 * time.Millisecond}}, volume: 0.7},
	CueGameWon:       {notes: []note{{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 120 * time.Millisecond}, {1047, 300 * time.Millisecond}}, volume: 0.7},
}

// Duration returns the total length of a cue.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueTable[c].notes {
		d += n.length
	}
	return d
}

// Synth builds a finite streamer for c at the given sample rate.
func Synth(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	def, ok := cueTable[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %v", c)
	}
	parts := make([]beep.Streamer, 0, len(def.notes))
	for _, n := range def.notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %v: %w", c, err)
		}
		samples := sr.N(n.length)
		parts = append(parts, &fade{Streamer: beep.Take(samples, tone), total: samples})
	}
	return newVolume(beep.Seq(parts...), def.volume), nil
}

// fade гасит щелчки: короткая атака и затухание на каждой ноте.
type fade struct {
	beep.Streamer
	pos   int
	total int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	ramp := f.total / 8
	for i := 0; i < n; i++ {
		vol := 1.0
		if ramp > 0 {
			if f.pos < ramp {
				vol = float64(f.pos) / float64(ramp)
			} else if rest := f.total - f.pos; rest < ramp {
				vol = float64(rest) / float64(ramp)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

// math.Log2(0) is -Inf, so zero volume becomes Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
