// internal/progress/progress.go
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"bean-defense/internal/event"
	"bean-defense/internal/fsutil"
	"bean-defense/internal/logger"
	"bean-defense/pkg/pathmap"
)

const profileVersion = 1

// ErrUnknownMap is returned for map IDs the profile knows nothing about.
var ErrUnknownMap = errors.New("unknown map")

// Profile — флаги открытых карт, которые переживают перезапуск.
type Profile struct {
	Version           int  `json:"version"`
	DesertUnlocked    bool `json:"desert_unlocked"`
	SnowUnlocked      bool `json:"snow_unlocked"`
	TutorialCompleted bool `json:"tutorial_completed"`
}

// Store keeps a profile in memory and writes it back on every change.
type Store struct {
	path    string
	Profile Profile
}

// Load reads the profile at path. A missing file yields a fresh profile.
func Load(path string) (*Store, error) {
	s := &Store{path: path, Profile: Profile{Version: profileVersion}}
	if path == "" {
		return s, nil
	}
	blob, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	if err := json.Unmarshal(blob, &s.Profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if s.Profile.Version == 0 {
		s.Profile.Version = profileVersion
	}
	return s, nil
}

// Save writes the profile; an in-memory store (empty path) is a no-op.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	s.Profile.Version = profileVersion
	if err := fsutil.SaveJSONAtomic(s.path, s.Profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// IsMapUnlocked reports whether id can be chosen from the menu.
func (s *Store) IsMapUnlocked(id pathmap.MapID) (bool, error) {
	switch id {
	case pathmap.MapGrass, pathmap.MapTutorial:
		return true, nil
	case pathmap.MapDesert:
		return s.Profile.DesertUnlocked, nil
	case pathmap.MapSnow:
		return s.Profile.SnowUnlocked, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownMap, id)
}

// CactusUnlocked — кактус доступен после победы на траве.
func (s *Store) CactusUnlocked() bool {
	return s.Profile.DesertUnlocked
}

// RecordWin applies the unlock a win on id grants and reports whether anything changed.
func (s *Store) RecordWin(id pathmap.MapID) (bool, error) {
	p := &s.Profile
	switch id {
	case pathmap.MapGrass:
		if p.DesertUnlocked {
			return false, nil
		}
		p.DesertUnlocked = true
	case pathmap.MapDesert:
		if p.SnowUnlocked {
			return false, nil
		}
		p.SnowUnlocked = true
	case pathmap.MapTutorial:
		if p.TutorialCompleted {
			return false, nil
		}
		p.TutorialCompleted = true
	case pathmap.MapSnow:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownMap, id)
	}
	return true, nil
}

// OnEvent persists unlocks when a game is won.
func (s *Store) OnEvent(e event.Event) {
	if e.Type != event.GameWon {
		return
	}
	data, ok := e.Data.(event.OutcomeData)
	if !ok {
		return
	}
	changed, err := s.RecordWin(data.Map)
	if err != nil {
		logger.Warnf("progress: %v", err)
		return
	}
	if !changed {
		return
	}
	logger.Infof("progress: win on %s recorded", data.Map)
	if err := s.Save(); err != nil {
		logger.Errorf("progress: %v", err)
	}
}
