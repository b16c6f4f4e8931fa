// internal/system/visual_effect.go
package system

import (
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/entity"
)

// VisualEffectSystem ведёт косметику: частицы крови и анимацию ходьбы.
// Работает и после окончания игры, чтобы брызги успели догореть.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ParticleIDs() {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		particle := s.ecs.Particles[id]

		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
		vel.X *= config.ParticleDamping
		vel.Y *= config.ParticleDamping
		particle.RemainingLife -= deltaTime
		if particle.RemainingLife <= 0 {
			s.ecs.Destroy(id)
		}
	}

	if s.ecs.Progress.GameOver {
		return
	}
	for id, visual := range s.ecs.Visuals {
		if s.ecs.IsAlive(id) {
			visual.WalkCycle += deltaTime * visual.WalkSpeed
		}
	}
}
