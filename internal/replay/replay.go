// internal/replay/replay.go
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"bean-defense/internal/app"
	"bean-defense/internal/defs"
	"bean-defense/internal/fsutil"
	"bean-defense/pkg/pathmap"
)

const Version = 1

// ErrVersion is returned when a file was written by an incompatible recorder.
var ErrVersion = errors.New("unsupported replay version")

// Header — всё, что нужно для повторного создания сессии.
type Header struct {
	Version        int           `json:"version"`
	Session        string        `json:"session"`
	RecordedAt     time.Time     `json:"recorded_at"`
	Seed           int64         `json:"seed"`
	Difficulty     string        `json:"difficulty"`
	Map            pathmap.MapID `json:"map"`
	CactusUnlocked bool          `json:"cactus_unlocked"`
}

// Frame is one simulation tick: its dt and the intents drained in it.
type Frame struct {
	DT      float64      `json:"dt"`
	Intents []app.Intent `json:"intents,omitempty"`
}

type File struct {
	Header Header  `json:"header"`
	Frames []Frame `json:"frames"`
}

// Outcome summarises where a replay ended.
type Outcome struct {
	Session  string
	Ticks    int
	Round    int
	Beans    int
	Lives    int
	Towers   int
	GameOver bool
	GameWon  bool
}

// Recorder captures every tick of a game through its tick observer.
type Recorder struct {
	file File
}

// NewRecorder starts recording g from its next tick.
func NewRecorder(g *app.Game) *Recorder {
	opts := g.Options()
	r := &Recorder{file: File{Header: Header{
		Version:        Version,
		Session:        uuid.New().String(),
		RecordedAt:     time.Now().UTC(),
		Seed:           opts.Seed,
		Difficulty:     opts.Difficulty.Name,
		Map:            opts.Map,
		CactusUnlocked: opts.CactusUnlocked,
	}}}
	g.SetTickObserver(r.observe)
	return r
}

func (r *Recorder) observe(deltaTime float64, intents []app.Intent) {
	f := Frame{DT: deltaTime}
	if len(intents) > 0 {
		f.Intents = append([]app.Intent(nil), intents...)
	}
	r.file.Frames = append(r.file.Frames, f)
}

// Session returns the recording's ID.
func (r *Recorder) Session() string { return r.file.Header.Session }

// File returns what has been recorded so far.
func (r *Recorder) File() File { return r.file }

// Save writes the recording atomically.
func (r *Recorder) Save(path string) error {
	if err := fsutil.SaveJSONAtomic(path, r.file); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	return nil
}

// Load reads a replay file.
func Load(path string) (File, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read replay file: %w", err)
	}
	var f File
	if err := json.Unmarshal(blob, &f); err != nil {
		return File{}, fmt.Errorf("decode replay file: %w", err)
	}
	if f.Header.Version != Version {
		return File{}, fmt.Errorf("%w: got %d want %d", ErrVersion, f.Header.Version, Version)
	}
	return f, nil
}

// Play re-simulates f from scratch and returns the resulting game.
func Play(f File) (*app.Game, error) {
	diff, err := defs.ParseDifficulty(f.Header.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("replay header: %w", err)
	}
	if _, err := pathmap.Get(f.Header.Map); err != nil {
		return nil, fmt.Errorf("replay header: %w", err)
	}
	g := app.NewGame(app.Options{
		Difficulty:     diff,
		Map:            f.Header.Map,
		Seed:           f.Header.Seed,
		CactusUnlocked: f.Header.CactusUnlocked,
	})
	for _, fr := range f.Frames {
		for _, in := range fr.Intents {
			g.Enqueue(in)
		}
		g.Update(fr.DT)
	}
	return g, nil
}

// Summarize reads the outcome off a finished game.
func Summarize(session string, g *app.Game) Outcome {
	s := g.Snapshot()
	return Outcome{
		Session:  session,
		Ticks:    int(g.Ticks()),
		Round:    s.Round,
		Beans:    s.Beans,
		Lives:    s.Lives,
		Towers:   len(s.Towers),
		GameOver: s.GameOver,
		GameWon:  s.GameWon,
	}
}
