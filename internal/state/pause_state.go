// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zombie-shooter/internal/config"
	"zombie-shooter/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует предыдущее состояние под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	resume        *ui.Button
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.stateMachine.Context.Sound.Pause()
}

func (s *PauseState) Update(deltaTime float64) {
	b := s.stateMachine.Context.Bounds
	s.resume = ui.NewButton(ui.CenteredRect(int(b.Width/2), int(b.Height/2)+70, 160, 40), "RESUME")

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.stateMachine.Context.Sound.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || s.resume.IsClicked() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, config.OverlayColor, false)
	ui.DrawBanner(screen, "PAUSED", "P / Esc to resume")
	if s.resume != nil {
		s.resume.Draw(screen)
	}
}

func (s *PauseState) Exit() {}
