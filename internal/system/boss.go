// internal/system/boss.go
package system

import (
	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/utils"
)

// BossSystem ведёт таймеры ближней атаки босса.
// Атака чисто косметическая: урон идёт только через контакт.
type BossSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	attackDuration  float64
	attackCooldown  float64
}

func NewBossSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, attackCooldown, attackDuration float64) *BossSystem {
	return &BossSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		attackCooldown:  attackCooldown,
		attackDuration:  attackDuration,
	}
}

func (s *BossSystem) Update(deltaTime float64) {
	id, boss, ok := s.ecs.Boss()
	if !ok {
		return
	}

	boss.AttackCooldown -= deltaTime
	if boss.IsAttacking {
		boss.AttackTimer -= deltaTime
		if boss.AttackTimer <= 0 {
			boss.IsAttacking = false
			boss.AttackTimer = 0
		}
	}

	playerPos, playerCol, ok := s.ecs.Player()
	if !ok || boss.AttackCooldown > 0 {
		return
	}
	pos := s.ecs.Positions[id]
	reach := s.ecs.Colliders[id].Radius + playerCol.Radius + boss.AttackReach
	if utils.Dist2(pos.X, pos.Y, playerPos.X, playerPos.Y) < reach*reach {
		boss.IsAttacking = true
		boss.AttackTimer = s.attackDuration
		boss.AttackCooldown = s.attackCooldown
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossAttack, Data: id})
	}
}
