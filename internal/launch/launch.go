// internal/launch/launch.go
package launch

import (
	"errors"
	"flag"
	"fmt"

	"bean-defense/internal/app"
	"bean-defense/internal/audio"
	"bean-defense/internal/defs"
	"bean-defense/internal/event"
	"bean-defense/internal/logger"
	"bean-defense/internal/progress"
	"bean-defense/internal/replay"
	"bean-defense/pkg/pathmap"
)

// ErrMapLocked is returned when the chosen map has not been unlocked yet.
var ErrMapLocked = errors.New("map is locked")

// Config — общие флаги обоих фронтендов.
type Config struct {
	Difficulty string
	Map        string
	Seed       int64
	Profile    string
	Record     string
	Towers     string
	Enemies    string
	Mute       bool
	LogLevel   string
}

// RegisterFlags binds the shared flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Config {
	c := &Config{}
	fs.StringVar(&c.Difficulty, "difficulty", defs.Medium.Name, "EASY, MEDIUM, HARD or ENDLESS")
	fs.StringVar(&c.Map, "map", string(pathmap.MapGrass), "GRASS, DESERT, SNOW or TUTORIAL")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.StringVar(&c.Profile, "profile", "bean-defense-profile.json", "unlock profile path, empty keeps it in memory")
	fs.StringVar(&c.Record, "record", "", "write a replay of the session to this file")
	fs.StringVar(&c.Towers, "towers", "", "JSON file overriding tower definitions")
	fs.StringVar(&c.Enemies, "enemies", "", "JSON file overriding enemy definitions")
	fs.BoolVar(&c.Mute, "mute", false, "disable sound")
	fs.StringVar(&c.LogLevel, "log-level", "", "debug, info, warn or error")
	return c
}

// Session bundles a game with the services attached to it.
type Session struct {
	Game     *app.Game
	Profile  *progress.Store
	Recorder *replay.Recorder
	Audio    *audio.Manager

	recordPath string
	sink       *audio.SpeakerSink
}

// Start validates c and builds a running session.
func Start(c *Config) (*Session, error) {
	if c.LogLevel != "" {
		logger.SetLevel(c.LogLevel)
	}
	if c.Towers != "" {
		if err := defs.LoadTowerDefinitions(c.Towers); err != nil {
			return nil, err
		}
	}
	if c.Enemies != "" {
		if err := defs.LoadEnemyDefinitions(c.Enemies); err != nil {
			return nil, err
		}
	}

	diff, err := defs.ParseDifficulty(c.Difficulty)
	if err != nil {
		return nil, err
	}
	mapID := pathmap.MapID(c.Map)

	store, err := progress.Load(c.Profile)
	if err != nil {
		return nil, err
	}
	unlocked, err := store.IsMapUnlocked(mapID)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, fmt.Errorf("%w: %s", ErrMapLocked, mapID)
	}

	g := app.NewGame(app.Options{
		Difficulty:     diff,
		Map:            mapID,
		Seed:           c.Seed,
		CactusUnlocked: store.CactusUnlocked(),
	})
	g.EventDispatcher.Subscribe(event.GameWon, store)

	s := &Session{Game: g, Profile: store, recordPath: c.Record}
	if c.Record != "" {
		s.Recorder = replay.NewRecorder(g)
		logger.Infof("Recording session %s to %s", s.Recorder.Session(), c.Record)
	}

	var sink audio.Sink
	if !c.Mute {
		sp, err := audio.NewSpeakerSink()
		if err != nil {
			// без звука играть можно
			logger.Warnf("Audio initialization failed: %v", err)
		} else {
			s.sink = sp
			sink = sp
		}
	}
	s.Audio = audio.NewManager(sink)
	s.Audio.Subscribe(g.EventDispatcher)
	return s, nil
}

// Close flushes the recording and releases the speaker.
func (s *Session) Close() error {
	if s.sink != nil {
		s.sink.Close()
	}
	if s.Recorder == nil {
		return nil
	}
	if err := s.Recorder.Save(s.recordPath); err != nil {
		return err
	}
	logger.Infof("Replay saved: %s (%d frames)", s.recordPath, len(s.Recorder.File().Frames))
	return nil
}
