// internal/system/wave.go
package system

import (
	"log/slog"
	"math"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/defs"
	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/types"
	"zombie-shooter/internal/utils"
)

// WaveSystem ведёт прогрессию уровня: Spawning → BossActive → LevelComplete → Spawning.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	archetypes      defs.Archetypes
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, archetypes defs.Archetypes) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		archetypes:      archetypes,
	}
	eventDispatcher.Subscribe(event.BossKilled, ws)
	return ws
}

// LevelMultiplier — множитель силы зомби для уровня.
func LevelMultiplier(level int) float64 {
	return 1 + config.LevelDifficultyBonus*float64(level-1)
}

// Difficulty растёт со временем сессии (с потолком) и с уровнем.
func Difficulty(elapsed float64, level int) float64 {
	return (1 + math.Min(config.DifficultyTimeCap, elapsed/config.DifficultyTimeScale)) * LevelMultiplier(level)
}

// SpawnInterval возвращает паузу между появлениями зомби в секундах.
func SpawnInterval(elapsed float64) float64 {
	interval := config.InitialSpawnInterval.Seconds() - config.SpawnIntervalDecay.Seconds()*elapsed
	return utils.Clamp(interval, config.MinSpawnInterval.Seconds(), config.InitialSpawnInterval.Seconds())
}

func (s *WaveSystem) Update(deltaTime float64, bounds component.Bounds) {
	p := s.ecs.Progress
	if p.GameOver {
		return
	}

	switch p.Phase {
	case component.PhaseSpawning:
		if p.KillsThisLevel >= config.ZombiesPerLevel {
			s.SpawnBoss(bounds)
			return
		}
		p.SpawnCooldown -= deltaTime
		if p.SpawnCooldown <= 0 {
			s.SpawnZombie(bounds)
			p.SpawnCooldown = SpawnInterval(p.Elapsed)
		}
		s.updateGrowl(deltaTime)
	case component.PhaseLevelComplete:
		p.LevelCompleteTimer -= deltaTime
		if p.LevelCompleteTimer <= 0 {
			p.LevelCompleteTimer = 0
			p.Phase = component.PhaseSpawning
			slog.Info("level started", "level", p.Level)
			s.eventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: p.Level})
		}
	}
}

// SpawnZombie создаёт зомби за случайным краем игровой области.
func (s *WaveSystem) SpawnZombie(bounds component.Bounds) types.EntityID {
	def := s.archetypes.Zombie
	p := s.ecs.Progress

	radius := s.rng.Range(def.RadiusMin, def.RadiusMax)
	x, y := s.edgePoint(bounds)
	difficulty := Difficulty(p.Elapsed, p.Level)
	speed := (def.BaseSpeed + s.rng.Range(def.SpeedJitterMin, def.SpeedJitterMax)) * difficulty
	health := radius * def.HealthPerRadius * s.rng.Range(def.HealthJitterMin, def.HealthJitterMax) * LevelMultiplier(p.Level)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Pursuers[id] = &component.Pursuer{Speed: speed}
	s.ecs.Colliders[id] = &component.Collider{Radius: radius}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{ContactDPS: def.ContactDPS}
	s.ecs.Visuals[id] = &component.Visual{
		WalkCycle: s.rng.Angle(),
		WalkSpeed: config.ZombieWalkAnimationSpeed,
		Variant:   s.rng.IntRange(0, def.Variants-1),
	}
	return id
}

// edgePoint выбирает точку на расстоянии SpawnMargin за одной из четырёх сторон.
// Вдоль стороны точка берётся с тем же запасом, поэтому зомби приходят и из углов.
func (s *WaveSystem) edgePoint(bounds component.Bounds) (float64, float64) {
	m := config.SpawnMargin
	switch s.rng.IntRange(0, 3) {
	case 0: // сверху
		return s.rng.Range(-m, bounds.Width+m), -m
	case 1: // справа
		return bounds.Width + m, s.rng.Range(-m, bounds.Height+m)
	case 2: // снизу
		return s.rng.Range(-m, bounds.Width+m), bounds.Height + m
	default: // слева
		return -m, s.rng.Range(-m, bounds.Height+m)
	}
}

// SpawnBoss убирает всех обычных зомби и ставит босса в центр.
func (s *WaveSystem) SpawnBoss(bounds component.Bounds) types.EntityID {
	for _, id := range s.ecs.EnemyIDs() {
		s.ecs.Destroy(id)
	}

	def := s.archetypes.Boss
	zombie := s.archetypes.Zombie
	center := bounds.Center()
	health := def.Health()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &center
	s.ecs.Pursuers[id] = &component.Pursuer{Speed: def.Speed(zombie)}
	s.ecs.Colliders[id] = &component.Collider{Radius: def.Radius}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Bosses[id] = &component.Boss{
		ContactDPS:  def.ContactDPS(zombie),
		AttackReach: def.AttackReach,
	}
	s.ecs.Visuals[id] = &component.Visual{WalkSpeed: config.BossWalkAnimationSpeed}
	s.ecs.BossID = id

	p := s.ecs.Progress
	p.Phase = component.PhaseBossActive
	slog.Info("boss spawned", "level", p.Level, "health", health)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: id})
	return id
}

// OnEvent реагирует на смерть босса завершением уровня.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.BossKilled {
		s.completeLevel()
	}
}

func (s *WaveSystem) completeLevel() {
	p := s.ecs.Progress
	if p.Phase != component.PhaseBossActive {
		return
	}
	p.Level++
	p.KillsThisLevel = 0
	p.Phase = component.PhaseLevelComplete
	p.LevelCompleteTimer = config.LevelCompleteDuration.Seconds()
	slog.Info("level complete", "next_level", p.Level, "score", p.Score)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelComplete, Data: p.Level})
}

// updateGrowl время от времени сообщает о рыке, пока на поле есть зомби.
func (s *WaveSystem) updateGrowl(deltaTime float64) {
	p := s.ecs.Progress
	p.GrowlCooldown -= deltaTime
	if p.GrowlCooldown > 0 || len(s.ecs.EnemyIDs()) == 0 {
		return
	}
	p.GrowlCooldown = config.GrowlMinInterval.Seconds() + s.rng.Range(0, config.GrowlJitter.Seconds())
	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieGrowl})
}
