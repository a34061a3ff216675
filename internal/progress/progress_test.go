package progress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bean-defense/internal/event"
	"bean-defense/pkg/pathmap"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope", "profile.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Profile.DesertUnlocked || s.Profile.SnowUnlocked || s.CactusUnlocked() {
		t.Fatalf("fresh profile has unlocks: %+v", s.Profile)
	}
	if ok, _ := s.IsMapUnlocked(pathmap.MapGrass); !ok {
		t.Fatalf("grass must always be open")
	}
}

func TestWinChainPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	d := event.NewDispatcher()
	d.Subscribe(event.GameWon, s)

	d.Dispatch(event.Event{Type: event.GameWon, Data: event.OutcomeData{Map: pathmap.MapGrass, Round: 14}})
	if ok, _ := s.IsMapUnlocked(pathmap.MapDesert); !ok {
		t.Fatalf("desert not unlocked after grass win")
	}
	if ok, _ := s.IsMapUnlocked(pathmap.MapSnow); ok {
		t.Fatalf("snow unlocked too early")
	}
	d.Dispatch(event.Event{Type: event.GameWon, Data: event.OutcomeData{Map: pathmap.MapDesert}})

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Profile.DesertUnlocked || !reloaded.Profile.SnowUnlocked || !reloaded.CactusUnlocked() {
		t.Fatalf("reloaded = %+v", reloaded.Profile)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestRecordWinIsIdempotent(t *testing.T) {
	s, _ := Load("")
	if changed, _ := s.RecordWin(pathmap.MapTutorial); !changed {
		t.Fatalf("first tutorial win not recorded")
	}
	if changed, _ := s.RecordWin(pathmap.MapTutorial); changed {
		t.Fatalf("second tutorial win reported a change")
	}
	if !s.Profile.TutorialCompleted {
		t.Fatalf("tutorial flag not set")
	}
}

func TestUnknownMap(t *testing.T) {
	s, _ := Load("")
	if _, err := s.IsMapUnlocked("VOLCANO"); !errors.Is(err, ErrUnknownMap) {
		t.Fatalf("err = %v, want ErrUnknownMap", err)
	}
	if _, err := s.RecordWin("VOLCANO"); !errors.Is(err, ErrUnknownMap) {
		t.Fatalf("err = %v, want ErrUnknownMap", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected decode error")
	}
}
