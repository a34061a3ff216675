// internal/app/game.go
package app

import (
	"bean-defense/internal/defs"
	"bean-defense/internal/entity"
	"bean-defense/internal/event"
	"bean-defense/internal/logger"
	"bean-defense/internal/system"
	"bean-defense/internal/types"
	"bean-defense/internal/utils"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
)

// Options — статическая конфигурация сессии.
type Options struct {
	Difficulty     defs.Difficulty
	Map            pathmap.MapID
	Seed           int64 // 0 — от времени
	CactusUnlocked bool  // открывается вместе с пустыней
}

// Tutorial reports whether the session runs the tutorial rules.
func (o Options) Tutorial() bool {
	return o.Map == pathmap.MapTutorial
}

// TickObserver sees every tick's dt and the intents drained in it, before they apply.
type TickObserver func(deltaTime float64, intents []Intent)

// Game owns the world and runs the simulation one tick at a time.
type Game struct {
	World            *entity.World
	Map              *pathmap.Map
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	AreaAttackSystem *system.AreaAttackSystem
	ProjectileSystem *system.ProjectileSystem

	options  Options
	inbox    []Intent
	observer TickObserver
	ticks    uint64

	previewType defs.TowerType
	previewPos  geom.Point
	selected    types.EntityID
	unlocked    map[defs.TowerType]bool
}

// NewGame builds a session. An unknown map falls back to GRASS.
func NewGame(opts Options) *Game {
	m, err := pathmap.Get(opts.Map)
	if err != nil {
		logger.Warnf("%v, using %s", err, pathmap.MapGrass)
		m = pathmap.MustGet(pathmap.MapGrass)
		opts.Map = m.ID
	}
	if opts.Difficulty.Name == "" {
		opts.Difficulty = defs.Medium
	}
	if opts.Tutorial() {
		opts.Difficulty = defs.Easy
	}

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	opts.Seed = rng.Seed()
	world := entity.NewWorld(opts.Difficulty)

	g := &Game{
		World:            world,
		Map:              m,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		WaveSystem:       system.NewWaveSystem(world, m, rng, eventDispatcher),
		MovementSystem:   system.NewMovementSystem(world, m, eventDispatcher),
		CombatSystem:     system.NewCombatSystem(world, m, eventDispatcher),
		AreaAttackSystem: system.NewAreaAttackSystem(world, m, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(world, m, eventDispatcher),
		options:          opts,
	}
	g.resetUnlocks()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.RoundStarted, listener)

	logger.Infof("New game: map=%s difficulty=%s seed=%d", m.ID, opts.Difficulty.Name, opts.Seed)
	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.RoundStarted:
		if data, ok := e.Data.(event.RoundData); ok && l.game.options.Tutorial() {
			l.game.unlockForRound(data.Round)
		}
	}
}

// Options returns the session configuration, with the effective seed.
func (g *Game) Options() Options {
	return g.options
}

// SetTickObserver installs a hook called at the start of every Update.
func (g *Game) SetTickObserver(o TickObserver) {
	g.observer = o
}

// Ticks returns how many times Update ran.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Update runs exactly one simulation tick.
func (g *Game) Update(deltaTime float64) {
	g.ticks++
	intents := g.inbox
	g.inbox = nil
	if g.observer != nil {
		g.observer(deltaTime, intents)
	}
	for _, in := range intents {
		g.Apply(in)
	}

	w := g.World
	if w.Terminal() {
		return
	}
	w.GameTime += deltaTime
	if w.BannerTimer > 0 {
		w.BannerTimer -= deltaTime
		if w.BannerTimer < 0 {
			w.BannerTimer = 0
		}
	}

	g.WaveSystem.Update(deltaTime)
	if w.Terminal() {
		return
	}
	g.MovementSystem.Update(deltaTime)
	if w.GameOver {
		return
	}
	g.CombatSystem.Update(deltaTime)
	g.AreaAttackSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.cleanupRemovedTowers()
	g.WaveSystem.CheckRoundComplete()
}

func (g *Game) cleanupRemovedTowers() {
	removed := g.World.CompactTowers()
	for _, id := range removed {
		if id == g.selected {
			g.selected = 0
		}
	}
}

// Reset restores the session to its starting state. Safe to call at any time.
func (g *Game) Reset() Reason {
	g.World.Reset(g.options.Difficulty)
	g.previewType = defs.TowerNone
	g.previewPos = geom.Point{}
	g.selected = 0
	g.resetUnlocks()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
	return ReasonOK
}

func (g *Game) resetUnlocks() {
	g.unlocked = make(map[defs.TowerType]bool)
	if g.options.Tutorial() {
		g.unlocked[defs.TowerApple] = true
		return
	}
	for _, t := range defs.PlaceableTowers {
		g.unlocked[t] = t != defs.TowerCactus || g.options.CactusUnlocked
	}
}

// unlockForRound opens the next tower type in the tutorial: round r opens index r-2.
func (g *Game) unlockForRound(round int) {
	idx := round - 2
	if idx < 0 || idx >= len(defs.PlaceableTowers) {
		return
	}
	t := defs.PlaceableTowers[idx]
	if !g.unlocked[t] {
		g.unlocked[t] = true
		logger.Infof("Tutorial: %s unlocked", t)
	}
}

// IsUnlocked reports whether t may be selected in this session.
func (g *Game) IsUnlocked(t defs.TowerType) bool {
	return g.unlocked[t]
}
