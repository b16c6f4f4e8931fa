// internal/system/combat.go
package system

import (
	"log/slog"

	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/types"
	"zombie-shooter/internal/utils"
)

// CombatSystem разрешает все столкновения тика: контактный урон игроку,
// попадания снарядов и смерти зомби и босса.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	if s.ecs.Progress.GameOver {
		return
	}
	s.applyContactDamage(deltaTime)
	if s.ecs.Progress.GameOver {
		return
	}
	s.resolveProjectileHits()
	s.sweepDeadEnemies()
	s.sweepDeadBoss()
}

// applyContactDamage: урон от нескольких зомби одновременно складывается.
func (s *CombatSystem) applyContactDamage(deltaTime float64) {
	playerPos, playerCol, ok := s.ecs.Player()
	if !ok {
		return
	}

	total := 0.0
	for _, id := range s.ecs.EnemyIDs() {
		pos := s.ecs.Positions[id]
		if utils.Overlaps(pos.X, pos.Y, s.ecs.Colliders[id].Radius, playerPos.X, playerPos.Y, playerCol.Radius) {
			total += s.ecs.Enemies[id].ContactDPS * deltaTime
		}
	}
	if id, boss, ok := s.ecs.Boss(); ok {
		pos := s.ecs.Positions[id]
		if utils.Overlaps(pos.X, pos.Y, s.ecs.Colliders[id].Radius, playerPos.X, playerPos.Y, playerCol.Radius) {
			total += boss.ContactDPS * deltaTime
		}
	}
	if total <= 0 {
		return
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: total})
	if ApplyDamage(s.ecs, s.ecs.PlayerID, total) {
		p := s.ecs.Progress
		p.GameOver = true
		slog.Info("game over", "player", p.PlayerName, "score", p.Score, "level", p.Level)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: p.Score})
	}
}

// resolveProjectileHits: каждый снаряд поражает не больше одной цели.
// Обычные зомби проверяются в порядке появления, босс последним.
func (s *CombatSystem) resolveProjectileHits() {
	for _, id := range s.ecs.ProjectileIDs() {
		pos := s.ecs.Positions[id]
		target := s.findTarget(pos.X, pos.Y, s.ecs.Colliders[id].Radius)
		if target == 0 {
			continue
		}
		ApplyDamage(s.ecs, target, s.ecs.Projectiles[id].Damage)
		s.ecs.Destroy(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: target})
	}
}

// findTarget пропускает уже убитых в этом тике, чтобы лишний снаряд пролетел дальше.
func (s *CombatSystem) findTarget(x, y, radius float64) types.EntityID {
	for _, id := range s.ecs.EnemyIDs() {
		if s.hits(id, x, y, radius) {
			return id
		}
	}
	if id, _, ok := s.ecs.Boss(); ok && s.hits(id, x, y, radius) {
		return id
	}
	return 0
}

func (s *CombatSystem) hits(id types.EntityID, x, y, radius float64) bool {
	if s.ecs.Healths[id].Value <= 0 {
		return false
	}
	pos := s.ecs.Positions[id]
	return utils.Overlaps(x, y, radius, pos.X, pos.Y, s.ecs.Colliders[id].Radius)
}

func (s *CombatSystem) sweepDeadEnemies() {
	p := s.ecs.Progress
	for _, id := range s.ecs.EnemyIDs() {
		if s.ecs.Healths[id].Value > 0 {
			continue
		}
		pos := s.ecs.Positions[id]
		spawnBurst(s.ecs, s.rng, pos.X, pos.Y, zombieBurst)
		s.ecs.Destroy(id)
		p.Score++
		p.KillsThisLevel++
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	}
}

func (s *CombatSystem) sweepDeadBoss() {
	id, _, ok := s.ecs.Boss()
	if !ok || s.ecs.Healths[id].Value > 0 {
		return
	}
	pos := s.ecs.Positions[id]
	spawnBurst(s.ecs, s.rng, pos.X, pos.Y, bossBurst)
	s.ecs.Destroy(id)
	slog.Info("boss killed", "level", s.ecs.Progress.Level)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossKilled, Data: id})
}
