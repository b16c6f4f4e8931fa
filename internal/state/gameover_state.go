// internal/state/gameover_state.go
package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zombie-shooter/internal/app"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/interfaces"
	"zombie-shooter/internal/ui"
)

var _ State = (*GameOverState)(nil)

const leaderboardTimeout = 2 * time.Second

// flusher — хранилище, которое умеет дождаться записи очереди.
type flusher interface {
	Flush(ctx context.Context) error
}

// GameOverState сохраняет результат и показывает таблицу рекордов.
type GameOverState struct {
	sm     *StateMachine
	result interfaces.FinalScore
	stats  app.Stats
	panel  *ui.LeaderboardPanel
	again  *ui.Button

	mu      sync.Mutex
	top     []interfaces.FinalScore
	loadErr error
	cancel  context.CancelFunc
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	return &GameOverState{
		sm:    sm,
		panel: ui.NewLeaderboardPanel(),
	}
}

func (s *GameOverState) Enter() {
	game := s.sm.Context.Game
	s.result = game.Result()
	s.stats = game.Stats()

	board := s.sm.Context.Board
	if board == nil {
		s.loadErr = fmt.Errorf("leaderboard disabled")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
	s.cancel = cancel
	if err := board.Record(ctx, s.result); err != nil {
		slog.Warn("failed to record score", "run_id", s.result.RunID, "error", err)
	}
	go s.load(ctx, board)
}

// load дожидается записи и читает лучшие результаты, не блокируя кадр.
func (s *GameOverState) load(ctx context.Context, board interfaces.ScoreBoard) {
	if f, ok := board.(flusher); ok {
		if err := f.Flush(ctx); err != nil {
			slog.Warn("leaderboard flush failed", "error", err)
		}
	}
	top, err := board.Top(ctx, config.LeaderboardSize)
	if err != nil {
		slog.Warn("failed to load leaderboard", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
	if top == nil {
		top = []interfaces.FinalScore{}
	}
	s.top = top
}

func (s *GameOverState) Update(deltaTime float64) {
	ctx := s.sm.Context
	// Частицы догорают на фоне
	ctx.Game.Update(deltaTime, ctx.Bounds, interfaces.IdleInput{})

	b := ctx.Bounds
	s.again = ui.NewButton(ui.CenteredRect(int(b.Width/2), int(b.Height/2)+230, 180, 40), "PLAY AGAIN")

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		ctx.Sound.ToggleMute()
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) || s.again.IsClicked():
		s.sm.SetState(NewGameState(s.sm, s.result.PlayerName))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.result.PlayerName))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	ctx := s.sm.Context
	ctx.Render.Draw(screen, ctx.Game.Snapshot())

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	ui.DrawBanner(screen, "GAME OVER", fmt.Sprintf("%s  score %d  level %d", s.result.PlayerName, s.result.Score, s.result.Level))
	acc := fmt.Sprintf("shots %d  hits %d  accuracy %.0f%%", s.stats.ShotsFired, s.stats.Hits, s.stats.Accuracy()*100)
	ui.DrawCentered(screen, acc, ui.Face, w/2, h/2+44, config.UIFaintColor)

	s.mu.Lock()
	top, loadErr := s.top, s.loadErr
	s.mu.Unlock()
	s.panel.Draw(screen, w/2, h/2+60, top, s.result.RunID, loadErr)

	if s.again != nil {
		s.again.Draw(screen)
	}
	ui.DrawCentered(screen, "Enter to play again, Esc to change name", ui.Face, w/2, h/2+270, config.UIFaintColor)
}

func (s *GameOverState) Exit() {
	if s.cancel != nil {
		s.cancel()
	}
}
