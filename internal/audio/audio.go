// internal/audio/audio.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"bean-defense/internal/event"
	"bean-defense/internal/logger"
)

const SampleRate = beep.SampleRate(44100)

// Format описывает кешируемые буферы: стерео, 16 бит.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Sink plays finished streamers.
type Sink interface {
	Play(s beep.Streamer)
}

// SpeakerSink mixes cues into the system speaker.
type SpeakerSink struct {
	mixer *beep.Mixer
}

// NewSpeakerSink initialises the speaker with a 100ms buffer.
func NewSpeakerSink() (*SpeakerSink, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &SpeakerSink{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *SpeakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback.
func (s *SpeakerSink) Close() {
	speaker.Clear()
	speaker.Close()
}

// minShotGap — выстрелы чаще этого не озвучиваются.
const minShotGap = 60 * time.Millisecond

// Manager turns game events into cues.
type Manager struct {
	mu       sync.Mutex
	sink     Sink
	muted    bool
	now      func() time.Time
	lastShot time.Time
	cache    map[Cue]*beep.Buffer
}

// NewManager returns a manager writing to sink. A nil sink behaves as muted.
func NewManager(sink Sink) *Manager {
	return &Manager{
		sink:  sink,
		muted: sink == nil,
		now:   time.Now,
		cache: make(map[Cue]*beep.Buffer),
	}
}

// Subscribe registers the manager for every event it voices.
func (m *Manager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(m,
		event.ProjectileFired, event.EnemyKilled, event.TrapTriggered, event.EnemyEscaped,
		event.RoundStarted, event.RoundCompleted, event.TowerPlaced, event.TowerSold,
		event.GameOver, event.GameWon)
}

func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted || m.sink == nil
	m.mu.Unlock()
}

func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted || m.sink == nil
	return m.muted
}

func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// CueFor maps an event to its cue.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.ProjectileFired:
		return CueShot, true
	case event.EnemyKilled:
		return CueKill, true
	case event.TrapTriggered:
		return CueTrap, true
	case event.EnemyEscaped:
		return CueEscape, true
	case event.RoundStarted:
		return CueRoundStart, true
	case event.RoundCompleted:
		return CueRoundComplete, true
	case event.TowerPlaced:
		return CuePlace, true
	case event.TowerSold:
		return CueSell, true
	case event.GameOver:
		return CueGameOver, true
	case event.GameWon:
		return CueGameWon, true
	}
	return 0, false
}

func (m *Manager) OnEvent(e event.Event) {
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	m.Play(cue)
}

// Play voices a cue unless muted or throttled.
func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.muted {
		return
	}
	if c == CueShot {
		now := m.now()
		if now.Sub(m.lastShot) < minShotGap {
			return
		}
		m.lastShot = now
	}
	buf, err := m.render(c)
	if err != nil {
		logger.Warnf("audio: %v", err)
		return
	}
	m.sink.Play(buf.Streamer(0, buf.Len()))
}

// render синтезирует cue один раз и дальше отдаёт из кеша.
func (m *Manager) render(c Cue) (*beep.Buffer, error) {
	if buf, ok := m.cache[c]; ok {
		return buf, nil
	}
	s, err := Synth(c, SampleRate)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	m.cache[c] = buf
	return buf, nil
}
