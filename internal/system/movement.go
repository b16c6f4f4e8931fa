// internal/system/movement.go
package system

import (
	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/utils"
)

// MovementSystem ведёт зомби и босса к игроку и двигает снаряды.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.pursue(deltaTime)
	s.integrateProjectiles(deltaTime)
}

// pursue — прямолинейное преследование без обхода препятствий и без расталкивания.
func (s *MovementSystem) pursue(deltaTime float64) {
	target, _, ok := s.ecs.Player()
	if !ok {
		return
	}
	for id, pursuer := range s.ecs.Pursuers {
		if !s.ecs.IsAlive(id) {
			continue
		}
		pos := s.ecs.Positions[id]
		dir := utils.Normalize(target.X-pos.X, target.Y-pos.Y)
		pos.X += dir.X * pursuer.Speed * deltaTime
		pos.Y += dir.Y * pursuer.Speed * deltaTime
	}
}

func (s *MovementSystem) integrateProjectiles(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
		s.ecs.Projectiles[id].RemainingLife -= deltaTime
	}
}
