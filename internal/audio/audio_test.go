package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"bean-defense/internal/event"
)

type recordingSink struct {
	played []beep.Streamer
}

func (s *recordingSink) Play(st beep.Streamer) { s.played = append(s.played, st) }

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][1] < -1 || buf[i][1] > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > SampleRate.N(5*time.Second) {
			t.Fatalf("streamer never ended")
		}
	}
}

func TestSynthEveryCue(t *testing.T) {
	for c := CueShot; c <= CueGameWon; c++ {
		s, err := Synth(c, SampleRate)
		if err != nil {
			t.Fatalf("Synth(%v): %v", c, err)
		}
		got := drain(t, s)
		want := SampleRate.N(Duration(c))
		// каждая нота округляется отдельно
		if got < want-4 || got > want+4 {
			t.Errorf("%v: %d samples, want about %d", c, got, want)
		}
	}
}

func TestSynthUnknownCue(t *testing.T) {
	if _, err := Synth(Cue(99), SampleRate); err == nil {
		t.Fatalf("expected error")
	}
	if Cue(99).String() != "cue(99)" {
		t.Fatalf("String = %q", Cue(99).String())
	}
}

func TestManagerMapsEvents(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)
	d := event.NewDispatcher()
	m.Subscribe(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled})
	d.Dispatch(event.Event{Type: event.EnemySpawned}) // не озвучивается
	d.Dispatch(event.Event{Type: event.GameWon})
	if len(sink.played) != 2 {
		t.Fatalf("played %d cues, want 2", len(sink.played))
	}
	if n := drain(t, sink.played[0]); n == 0 {
		t.Fatalf("kill cue is empty")
	}
}

func TestManagerMuteAndThrottle(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)
	clock := time.Unix(0, 0)
	m.now = func() time.Time { return clock }

	m.Play(CueShot)
	m.Play(CueShot)
	clock = clock.Add(minShotGap)
	m.Play(CueShot)
	if len(sink.played) != 2 {
		t.Fatalf("shots played = %d, want 2", len(sink.played))
	}

	if !m.ToggleMute() {
		t.Fatalf("ToggleMute should report muted")
	}
	m.Play(CueKill)
	if len(sink.played) != 2 {
		t.Fatalf("muted manager played a cue")
	}
	m.SetMuted(false)
	m.Play(CueKill)
	if len(sink.played) != 3 {
		t.Fatalf("unmuted manager did not play")
	}
}

func TestNilSinkIsMuted(t *testing.T) {
	m := NewManager(nil)
	if !m.Muted() {
		t.Fatalf("nil sink should start muted")
	}
	m.SetMuted(false)
	m.Play(CueKill) // не паникует
	if !m.Muted() {
		t.Fatalf("nil sink cannot be unmuted")
	}
}

func TestManagerReplaysCachedBuffer(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(sink)

	m.Play(CueKill)
	m.Play(CueKill)
	if len(sink.played) != 2 || len(m.cache) != 1 {
		t.Fatalf("played=%d cached=%d", len(sink.played), len(m.cache))
	}
	s, err := Synth(CueKill, SampleRate)
	if err != nil {
		t.Fatal(err)
	}
	want := drain(t, s)
	for i, st := range sink.played {
		if got := drain(t, st); got != want {
			t.Fatalf("play %d: %d samples, want %d", i, got, want)
		}
	}
}
