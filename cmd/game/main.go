// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"zombie-shooter/internal/app"
	"zombie-shooter/internal/audio"
	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/defs"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/input"
	"zombie-shooter/internal/interfaces"
	"zombie-shooter/internal/leaderboard"
	"zombie-shooter/internal/state"
	"zombie-shooter/internal/system"
	"zombie-shooter/internal/ui"
)

type AppGame struct {
	stateMachine *state.StateMachine
	clock        *app.FrameClock
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.Tick())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт логический размер, равный размеру окна; игровое поле следует за ним.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Context.Bounds = component.Bounds{
		Width:  float64(outsideWidth),
		Height: float64(outsideHeight),
	}
	return outsideWidth, outsideHeight
}

func main() {
	settings, err := config.ParseSettings(os.Args[1:])
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel})))

	if settings.DebugAddr != "" {
		go func() {
			slog.Info("pprof listening", "addr", settings.DebugAddr)
			if err := http.ListenAndServe(settings.DebugAddr, nil); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Warn("pprof server stopped", "error", err)
			}
		}()
	}

	archetypes, err := defs.LoadArchetypes(settings.TuningPath)
	if err != nil {
		slog.Warn("using default enemy tuning", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var board interfaces.ScoreBoard
	var recorder *leaderboard.Recorder
	store, err := leaderboard.Open(settings.DBPath)
	if err != nil {
		slog.Warn("leaderboard disabled", "path", settings.DBPath, "error", err)
	} else {
		recorder = leaderboard.NewRecorder(ctx, store, config.ScoreQueueSize)
		board = recorder
	}

	dispatcher := event.NewDispatcher()
	sound := audio.NewSoundManager(settings.Muted)
	dispatcher.SubscribeAll(sound, event.Feedback...)

	game := app.NewGame(archetypes, settings.Seed, dispatcher)

	sm := state.NewStateMachine(&state.Context{
		Game:   game,
		Sound:  sound,
		Board:  board,
		Render: system.NewRenderSystem(),
		HUD:    ui.NewHUD(),
		Input:  input.KeyboardMouse{},
		Bounds: component.Bounds{Width: float64(settings.Width), Height: float64(settings.Height)},
	})
	if settings.PlayerName != "" {
		sm.SetState(state.NewGameState(sm, settings.PlayerName))
	} else {
		sm.SetState(state.NewMenuState(sm, ""))
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Zombie Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(&AppGame{stateMachine: sm, clock: app.NewFrameClock(time.Now)})

	if recorder != nil {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to flush leaderboard", "error", err)
		}
		if err := store.Close(); err != nil {
			slog.Warn("failed to close leaderboard", "error", err)
		}
	}
	if runErr != nil {
		slog.Error("game stopped", "error", runErr)
		os.Exit(1)
	}
}
