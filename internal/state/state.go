// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"zombie-shooter/internal/app"
	"zombie-shooter/internal/audio"
	"zombie-shooter/internal/component"
	"zombie-shooter/internal/interfaces"
	"zombie-shooter/internal/system"
	"zombie-shooter/internal/ui"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context — общие зависимости экранов.
type Context struct {
	Game   *app.Game
	Sound  *audio.SoundManager   // может быть nil
	Board  interfaces.ScoreBoard // может быть nil
	Render *system.RenderSystem
	HUD    *ui.HUD
	Input  interfaces.Input
	Bounds component.Bounds // обновляется из Layout каждый кадр
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Context *Context
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{Context: ctx}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
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
