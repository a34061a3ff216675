// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bean-defense/internal/app"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/launch"
	"bean-defense/internal/logger"
	"bean-defense/internal/ui"
	"bean-defense/pkg/geom"
	"bean-defense/pkg/pathmap"
	"bean-defense/pkg/render"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	cfg     launch.Config
	session *launch.Session
	game    *app.Game

	mapRenderer   *render.MapRenderer
	worldRenderer *render.WorldRenderer
	panel         *ui.TowerPanel
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator

	lastCursor    geom.Point
	lastClickTime time.Time
	closed        bool
}

func NewGameState(sm *StateMachine, session *launch.Session, cfg launch.Config) *GameState {
	g := session.Game
	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		WaterColor:      config.WaterColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	speedX := float32(config.ScreenWidth - config.SpeedButtonOffsetX)
	return &GameState{
		sm:            sm,
		cfg:           cfg,
		session:       session,
		game:          g,
		mapRenderer:   render.NewMapRenderer(g.Map, mapColors, config.ScreenWidth, config.ScreenHeight, pathmap.TrapPathThreshold*2),
		worldRenderer: render.NewWorldRenderer(),
		panel:         ui.NewTowerPanel(),
		speedButton:   ui.NewSpeedButton(speedX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(speedX+50, config.SpeedButtonY, config.SpeedButtonSize*0.6, config.TextLightColor, config.PreviewOKColor),
		indicator:     ui.NewStateIndicator(config.GameWidth+24, config.SpeedButtonY, 10),
		waveIndicator: ui.NewWaveIndicator(config.GameWidth/2, 24),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.sm.SetState(NewMenuState(g.sm, g.cfg))
		return
	}

	g.handleKeys()
	g.handleMouse()

	for i := 0; i < g.speedButton.Multiplier(); i++ {
		g.game.Update(deltaTime)
	}
	g.panel.Layout(g.game.Snapshot())
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.overlay(NewPauseState(g.sm, g))
}

func (g *GameState) handleKeys() {
	for i, k := range towerKeys {
		if i < len(defs.PlaceableTowers) && inpututil.IsKeyJustPressed(k) {
			g.selectTower(defs.PlaceableTowers[i])
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.game.Enqueue(app.SelectTowerType(defs.TowerNone))
		g.game.Enqueue(app.CloseTowerMenu())
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.game.Enqueue(app.PurchaseUpgrade(defs.UpgradeDamage))
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.game.Enqueue(app.PurchaseUpgrade(defs.UpgradeAttackSpeed))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if s := g.game.Snapshot(); s.GameOver || s.GameWon || ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.game.Enqueue(app.ResetIntent())
			g.speedButton.Reset()
		} else {
			g.game.Enqueue(app.PurchaseUpgrade(defs.UpgradeRange))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyX), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.game.Enqueue(app.SellSelectedTower())
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.session.Audio.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.speedButton.ToggleState()
	}
}

func (g *GameState) selectTower(t defs.TowerType) {
	if !g.game.IsUnlocked(t) {
		logger.Debugf("%s is locked", t)
		return
	}
	g.game.Enqueue(app.SelectTowerType(t))
	g.game.Enqueue(app.MovePreview(g.lastCursor))
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	inField := x >= 0 && x < config.GameWidth && y >= 0 && y < config.ScreenHeight

	cursor := geom.Pt(float64(x), float64(y))
	if inField && cursor != g.lastCursor {
		g.lastCursor = cursor
		// без башни в руке превью не нужно
		if g.game.Snapshot().Preview != nil {
			g.game.Enqueue(app.MovePreview(cursor))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.Enqueue(app.SelectTowerType(defs.TowerNone))
		g.game.Enqueue(app.CloseTowerMenu())
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if time.Since(g.lastClickTime) < config.ClickDebounceTime*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	switch {
	case g.speedButton.IsClicked(x, y):
		g.speedButton.ToggleState()
	case g.pauseButton.IsClicked(x, y):
		g.pause()
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
	case g.panel.Contains(x, y):
		g.handlePanelClick(x, y)
	case inField:
		g.handleFieldClick(cursor)
	}
}

func (g *GameState) handlePanelClick(x, y int) {
	action, ok := g.panel.HitTest(x, y)
	if !ok {
		return
	}
	switch action.Kind {
	case ui.ActionSelectTower:
		g.selectTower(action.Tower)
	case ui.ActionUpgrade:
		g.game.Enqueue(app.PurchaseUpgrade(action.Upgrade))
	case ui.ActionSell:
		g.game.Enqueue(app.SellSelectedTower())
	case ui.ActionClose:
		g.game.Enqueue(app.CloseTowerMenu())
	}
}

func (g *GameState) handleFieldClick(p geom.Point) {
	if g.game.Snapshot().Preview != nil {
		if r := g.game.CheckPlacement(p); r != app.ReasonOK {
			logger.Debugf("Placement at (%.0f, %.0f) rejected: %s", p.X, p.Y, r)
		}
		g.game.Enqueue(app.AttemptPlacement(p))
		return
	}
	g.game.Enqueue(app.OpenTowerMenu(p))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.game.Snapshot()
	g.mapRenderer.Draw(screen)
	g.worldRenderer.Draw(screen, s)

	mx, my := ebiten.CursorPosition()
	g.panel.Draw(screen, mx, my)
	g.indicator.Draw(screen, ui.PhaseOf(s))
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, s.Round)
}

// Exit закрывает сессию: пишет реплей и отпускает звук.
func (g *GameState) Exit() {
	if g.closed {
		return
	}
	g.closed = true
	if err := g.session.Close(); err != nil {
		logger.Errorf("Closing session: %v", err)
	}
}
