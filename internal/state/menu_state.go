// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"zombie-shooter/internal/config"
	"zombie-shooter/internal/input"
	"zombie-shooter/internal/ui"
)

var _ State = (*MenuState)(nil)

// MenuState — экран ввода имени перед забегом.
type MenuState struct {
	sm     *StateMachine
	name   *input.TextField
	play   *ui.Button
	frames int
}

func NewMenuState(sm *StateMachine, lastName string) *MenuState {
	return &MenuState{
		sm:   sm,
		name: input.NewTextField(config.MaxNameLength, lastName),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.frames++
	m.name.Update()

	b := m.sm.Context.Bounds
	m.play = ui.NewButton(ui.CenteredRect(int(b.Width/2), int(b.Height/2)+120, 160, 40), "PLAY")

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) || m.play.IsClicked() {
		m.sm.SetState(NewGameState(m.sm, PlayerName(m.name.Value())))
	}
}

// PlayerName подставляет имя по умолчанию для пустого ввода.
func PlayerName(typed string) string {
	if typed == "" {
		return "Anonymous"
	}
	return typed
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.sm.Context.Render.Draw(screen, m.sm.Context.Game.Snapshot())
	cx := screen.Bounds().Dx() / 2
	cy := screen.Bounds().Dy() / 2

	ui.DrawBanner(screen, "ZOMBIE SHOOTER", "")
	ui.DrawCentered(screen, "Enter your name:", ui.Face, cx, cy+62, config.UIFaintColor)

	field := m.name.Raw()
	if (m.frames/30)%2 == 0 {
		field += "_"
	}
	ui.DrawCentered(screen, field, ui.Face, cx, cy+82, config.UITextColor)

	if m.play != nil {
		m.play.Draw(screen)
	}
	ui.DrawCentered(screen, "WASD / arrows to move, mouse to aim, hold LMB to fire", ui.Face, cx, cy+170, config.UIFaintColor)
	ui.DrawCentered(screen, "P / Esc pause, M mute", ui.Face, cx, cy+188, config.UIFaintColor)
}

func (m *MenuState) Exit() {}
