// internal/app/game.go
package app

import (
	"log/slog"

	"github.com/google/uuid"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/defs"
	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/interfaces"
	"zombie-shooter/internal/system"
	"zombie-shooter/internal/utils"
)

// Stats — счётчики сессии для экрана итогов.
type Stats struct {
	ShotsFired int
	Hits       int
}

// Accuracy возвращает долю попаданий в диапазоне [0, 1].
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

// Game владеет одной игровой сессией: сущностями, системами и прогрессом.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Archetypes      defs.Archetypes

	PlayerSystem       *system.PlayerSystem
	MovementSystem     *system.MovementSystem
	BossSystem         *system.BossSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem

	started bool
	stats   Stats
}

// NewGame собирает системы вокруг общего ECS. Сессия начинается только после Init.
func NewGame(archetypes defs.Archetypes, seed int64, eventDispatcher *event.Dispatcher) *Game {
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(seed)
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Archetypes:      archetypes,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.BossSystem = system.NewBossSystem(ecs, eventDispatcher, archetypes.Boss.AttackCooldown, archetypes.Boss.AttackDuration)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, rng, archetypes)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.ShotFired, event.EnemyHit)
	return g
}

// Init сбрасывает сессию целиком и ставит игрока в центр.
// Повторный вызов всегда даёт одинаковое стартовое состояние.
func (g *Game) Init(playerName string, bounds component.Bounds) {
	g.ECS.Reset()
	g.ECS.Progress = component.NewProgress(playerName, uuid.NewString())
	g.stats = Stats{}

	center := bounds.Center()
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &center
	g.ECS.Colliders[id] = &component.Collider{Radius: config.PlayerRadius}
	g.ECS.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	g.ECS.Players[id] = &component.Player{AimX: center.X, AimY: center.Y}
	g.ECS.PlayerID = id

	g.started = true
	slog.Info("game started", "player", playerName, "run_id", g.ECS.Progress.RunID)
}

// Update выполняет один шаг симуляции. deltaTime зажимается в [0, MaxDeltaTime].
// После окончания игры догорают только частицы.
func (g *Game) Update(deltaTime float64, bounds component.Bounds, input interfaces.Input) {
	if !g.started {
		return
	}
	deltaTime = utils.Clamp(deltaTime, 0, config.MaxDeltaTime)
	p := g.ECS.Progress

	if p.GameOver {
		g.VisualEffectSystem.Update(deltaTime)
		g.ECS.Compact()
		return
	}

	p.Elapsed += deltaTime
	g.PlayerSystem.Update(deltaTime, bounds, input)
	g.MovementSystem.Update(deltaTime)
	g.BossSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime, bounds)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(bounds)
	g.VisualEffectSystem.Update(deltaTime)
	g.ECS.Compact()
}

func (g *Game) Started() bool { return g.started }

func (g *Game) IsGameOver() bool {
	return g.started && g.ECS.Progress.GameOver
}

func (g *Game) Stats() Stats { return g.stats }

// Result возвращает итог сессии для таблицы рекордов.
func (g *Game) Result() interfaces.FinalScore {
	p := g.ECS.Progress
	return interfaces.FinalScore{
		RunID:      p.RunID,
		PlayerName: p.PlayerName,
		Score:      p.Score,
		Level:      p.Level,
	}
}

// GameEventListener ведёт статистику сессии по событиям систем.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		l.game.stats.ShotsFired++
	case event.EnemyHit:
		l.game.stats.Hits++
	}
}
