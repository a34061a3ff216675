// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/launch"
	"bean-defense/internal/logger"
	"bean-defense/internal/progress"
	"bean-defense/internal/ui"
	"bean-defense/pkg/pathmap"
)

const (
	menuButtonW = 200
	menuButtonH = 36
	menuGap     = 10
)

// MenuState — выбор карты и сложности.
type MenuState struct {
	sm      *StateMachine
	cfg     launch.Config
	maps    []*ui.MenuButton
	diffs   []*ui.MenuButton
	start   *ui.MenuButton
	mapIdx  int
	diffIdx int
	message string
}

func NewMenuState(sm *StateMachine, cfg launch.Config) *MenuState {
	return &MenuState{sm: sm, cfg: cfg}
}

func (m *MenuState) Enter() {
	store, err := progress.Load(m.cfg.Profile)
	if err != nil {
		logger.Warnf("Menu: %v", err)
		store, _ = progress.Load("")
	}

	left := float32(config.ScreenWidth/2 - menuButtonW - menuGap)
	right := float32(config.ScreenWidth/2 + menuGap)
	m.maps = m.maps[:0]
	for i, id := range pathmap.All() {
		b := ui.NewMenuButton(left, float32(150+i*(menuButtonH+menuGap)), menuButtonW, menuButtonH, string(id))
		unlocked, _ := store.IsMapUnlocked(id)
		b.Locked = !unlocked
		if string(id) == m.cfg.Map && unlocked {
			m.mapIdx = i
		}
		m.maps = append(m.maps, b)
	}
	m.diffs = m.diffs[:0]
	for i, d := range defs.Difficulties {
		b := ui.NewMenuButton(right, float32(150+i*(menuButtonH+menuGap)), menuButtonW, menuButtonH, d.Name)
		if d.Name == m.cfg.Difficulty {
			m.diffIdx = i
		}
		m.diffs = append(m.diffs, b)
	}
	m.start = ui.NewMenuButton(float32(config.ScreenWidth/2-menuButtonW/2), 400, menuButtonW, menuButtonH, "START")
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.startGame()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	for i, b := range m.maps {
		if b.IsClicked(x, y) {
			m.mapIdx = i
		}
	}
	for i, b := range m.diffs {
		if b.IsClicked(x, y) {
			m.diffIdx = i
		}
	}
	if m.start.IsClicked(x, y) {
		m.startGame()
	}
}

func (m *MenuState) startGame() {
	cfg := m.cfg
	cfg.Map = m.maps[m.mapIdx].Text
	cfg.Difficulty = m.diffs[m.diffIdx].Text
	session, err := launch.Start(&cfg)
	if err != nil {
		logger.Errorf("Start failed: %v", err)
		m.message = err.Error()
		return
	}
	m.cfg.Map, m.cfg.Difficulty = cfg.Map, cfg.Difficulty
	m.sm.SetState(NewGameState(m.sm, session, m.cfg))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	face := basicfont.Face7x13
	text.Draw(screen, "BEAN DEFENSE", face, config.ScreenWidth/2-42, 80, config.TextLightColor)
	text.Draw(screen, "Map", face, int(m.maps[0].X), 135, config.TextLightColor)
	text.Draw(screen, "Difficulty", face, int(m.diffs[0].X), 135, config.TextLightColor)
	for i, b := range m.maps {
		b.Selected = i == m.mapIdx
		b.Draw(screen)
	}
	for i, b := range m.diffs {
		b.Selected = i == m.diffIdx
		b.Draw(screen)
	}
	m.start.Draw(screen)
	if m.message != "" {
		text.Draw(screen, m.message, face, 40, 480, config.PreviewBadColor)
	}
}

func (m *MenuState) Exit() {}
