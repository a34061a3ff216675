// internal/system/wave.go
package system

import (
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/entity"
	"bean-defense/internal/event"
	"bean-defense/internal/logger"
	"bean-defense/internal/utils"
	"bean-defense/pkg/pathmap"
)

// WaveSystem ведёт отсчёт между раундами и выпускает врагов.
type WaveSystem struct {
	world           *entity.World
	path            *pathmap.Path
	mapID           pathmap.MapID
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, m *pathmap.Map, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		path:            m.Path,
		mapID:           m.ID,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update advances the countdown or, during a round, the spawn accumulator.
func (s *WaveSystem) Update(deltaTime float64) {
	w := s.world
	if w.Terminal() {
		return
	}

	if !w.RoundActive {
		w.Countdown -= deltaTime
		if w.Countdown > 0 {
			return
		}
		w.Countdown = 0
		if w.Difficulty.WinRound > 0 && w.Round+1 >= w.Difficulty.WinRound {
			w.GameWon = true
			logger.Infof("Game won on %s after round %d", s.mapID, w.Round)
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon, Data: event.OutcomeData{Map: s.mapID, Round: w.Round}})
			return
		}
		s.startRound()
		return
	}

	if w.RemainingToSpawn <= 0 {
		return
	}
	w.SpawnTimer += deltaTime
	if w.SpawnTimer < config.SpawnInterval {
		return
	}
	w.SpawnTimer = 0
	if !s.spawnEnemy() {
		// пул занят: попробуем на следующем интервале
		logger.Debugf("enemy pool exhausted, round %d, %d left to spawn", w.Round, w.RemainingToSpawn)
		return
	}
	w.RemainingToSpawn--
}

func (s *WaveSystem) startRound() {
	w := s.world
	w.Round++
	w.RemainingToSpawn = defs.RoundSize(w.Round)
	w.RoundActive = true
	w.SpawnTimer = 0
	logger.Infof("Round %d started: %d enemies", w.Round, w.RemainingToSpawn)
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundStarted, Data: event.RoundData{Round: w.Round, Enemies: w.RemainingToSpawn}})
}

// NextEnemyType decides the type of the next spawn. The last enemy of a boss
// round is always a boss and consumes no draw.
func (s *WaveSystem) NextEnemyType() defs.EnemyType {
	w := s.world
	if defs.IsBossRound(w.Round) && w.RemainingToSpawn == 1 {
		return defs.EnemyBoss
	}
	return defs.BandsFor(w.Round).Pick(s.rng.Float64())
}

func (s *WaveSystem) spawnEnemy() bool {
	w := s.world
	slot := w.ClaimEnemy()
	if slot == nil {
		return false
	}
	t := s.NextEnemyType()
	slot.Activate(w.NewEntity(), t, w.Round, w.Difficulty)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		ID:   slot.ID,
		Type: t,
		Pos:  s.path.Spawn(),
	}})
	return true
}

// CheckRoundComplete closes the round once nothing is left to spawn and nothing is alive.
func (s *WaveSystem) CheckRoundComplete() bool {
	w := s.world
	if w.Terminal() || !w.RoundActive || w.RemainingToSpawn > 0 || w.ActiveEnemies() > 0 {
		return false
	}
	w.RoundActive = false
	w.Countdown = config.RoundCountdown
	bonus := w.Round * config.RoundBonusPerRnd
	w.Beans += bonus
	logger.Infof("Round %d complete, bonus %d beans", w.Round, bonus)
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundCompleted, Data: event.RoundData{Round: w.Round, Bonus: bonus}})
	return true
}
