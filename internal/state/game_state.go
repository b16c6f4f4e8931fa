// internal/state/game_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState — идёт забег.
type GameState struct {
	sm         *StateMachine
	playerName string
	resumed    bool
}

func NewGameState(sm *StateMachine, playerName string) *GameState {
	return &GameState{sm: sm, playerName: playerName}
}

func (g *GameState) Enter() {
	ctx := g.sm.Context
	if g.resumed {
		g.resumed = false
		ctx.Sound.Resume()
		return
	}
	ctx.Game.Init(g.playerName, ctx.Bounds)
	ctx.Sound.StartMusic()
}

func (g *GameState) Update(deltaTime float64) {
	ctx := g.sm.Context

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		ctx.Sound.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.resumed = true
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	ctx.Game.Update(deltaTime, ctx.Bounds, ctx.Input)

	if ctx.Game.IsGameOver() {
		res := ctx.Game.Result()
		slog.Info("run finished", "player", res.PlayerName, "score", res.Score, "level", res.Level)
		g.sm.SetState(NewGameOverState(g.sm))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	ctx := g.sm.Context
	snap := ctx.Game.Snapshot()
	ctx.Render.Draw(screen, snap)
	ctx.HUD.Draw(screen, snap, ctx.Sound.Muted())
}

func (g *GameState) Exit() {}
