// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// overlay активирует s поверх текущего состояния без его Exit.
func (sm *StateMachine) overlay(s State) {
	sm.current = s
	s.Enter()
}

// resume возвращает состояние, перекрытое overlay, без повторного Enter.
func (sm *StateMachine) resume(s State) {
	sm.current = s
}

// Quit просит приложение завершиться после текущего кадра.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

// Done reports whether Quit was requested.
func (sm *StateMachine) Done() bool {
	return sm.quit
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
