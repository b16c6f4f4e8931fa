// internal/system/projectile.go
package system

import (
	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/entity"
)

// ProjectileSystem убирает снаряды, которые истекли или улетели за экран.
// Движение снарядов выполняет MovementSystem.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(bounds component.Bounds) {
	for _, id := range s.ecs.ProjectileIDs() {
		if s.ecs.Projectiles[id].RemainingLife <= 0 || IsOffscreen(*s.ecs.Positions[id], bounds) {
			s.ecs.Destroy(id)
		}
	}
}

// IsOffscreen сообщает, вышла ли точка за экран дальше чем на OffscreenMargin.
// Точка ровно на границе поля тоже считается вышедшей.
func IsOffscreen(pos component.Position, bounds component.Bounds) bool {
	m := config.OffscreenMargin
	return pos.X <= -m || pos.X >= bounds.Width+m || pos.Y <= -m || pos.Y >= bounds.Height+m
}
