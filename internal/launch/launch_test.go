package launch

import (
	"errors"
	"flag"
	"path/filepath"
	"testing"

	"bean-defense/internal/event"
	"bean-defense/internal/progress"
	"bean-defense/internal/replay"
	"bean-defense/pkg/pathmap"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := RegisterFlags(fs)
	if err := fs.Parse(append([]string{"-mute", "-profile", ""}, args...)); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return c
}

func TestStartDefaults(t *testing.T) {
	s, err := Start(parse(t))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()
	if s.Game.Map.ID != pathmap.MapGrass {
		t.Fatalf("map = %s", s.Game.Map.ID)
	}
	if !s.Audio.Muted() {
		t.Fatalf("-mute should leave audio muted")
	}
	if s.Recorder != nil {
		t.Fatalf("recorder without -record")
	}
}

func TestStartRejectsLockedMap(t *testing.T) {
	_, err := Start(parse(t, "-map", "SNOW"))
	if !errors.Is(err, ErrMapLocked) {
		t.Fatalf("err = %v, want ErrMapLocked", err)
	}
	_, err = Start(parse(t, "-map", "VOLCANO"))
	if !errors.Is(err, progress.ErrUnknownMap) {
		t.Fatalf("err = %v, want ErrUnknownMap", err)
	}
	if _, err := Start(parse(t, "-difficulty", "NIGHTMARE")); err == nil {
		t.Fatalf("unknown difficulty accepted")
	}
}

func TestWinUnlocksNextMapAndRecords(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.json")
	rec := filepath.Join(dir, "run.json")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := RegisterFlags(fs)
	if err := fs.Parse([]string{"-mute", "-profile", profile, "-record", rec, "-seed", "5"}); err != nil {
		t.Fatal(err)
	}
	s, err := Start(c)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Game.Update(1.0 / 60)
	s.Game.EventDispatcher.Dispatch(event.Event{
		Type: event.GameWon,
		Data: event.OutcomeData{Map: pathmap.MapGrass, Round: 15},
	})
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err := progress.Load(profile)
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := store.IsMapUnlocked(pathmap.MapDesert); !ok {
		t.Fatalf("desert not unlocked after grass win")
	}
	f, err := replay.Load(rec)
	if err != nil {
		t.Fatalf("replay.Load: %v", err)
	}
	if f.Header.Seed != 5 || len(f.Frames) != 1 {
		t.Fatalf("header seed %d, frames %d", f.Header.Seed, len(f.Frames))
	}
}
