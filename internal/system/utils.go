// internal/system/utils.go
package system

import (
	"math"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/types"
	"zombie-shooter/internal/utils"
)

// ApplyDamage наносит урон сущности. Здоровье не опускается ниже нуля.
// Возвращает true, если именно этот удар обнулил здоровье.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, ok := ecs.Healths[entityID]
	if !ok || damage <= 0 || health.Value <= 0 {
		return false
	}
	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
		return true
	}
	return false
}

// burst описывает разлёт брызг крови при смерти.
type burst struct {
	count              int
	speedMin, speedMax float64
	lifeMin, lifeMax   float64 // секунды
}

var (
	zombieBurst = burst{count: config.BloodParticlesOnDeath, speedMin: 40, speedMax: 180, lifeMin: 0.18, lifeMax: 0.42}
	bossBurst   = burst{count: config.BloodParticlesOnDeath * config.BossParticleMultiplier, speedMin: 60, speedMax: 200, lifeMin: 0.3, lifeMax: 0.6}
)

// spawnBurst создаёт частицы в точке (x, y) со случайными направлениями.
func spawnBurst(ecs *entity.ECS, rng *utils.PRNGService, x, y float64, b burst) {
	for i := 0; i < b.count; i++ {
		angle := rng.Angle()
		speed := rng.Range(b.speedMin, b.speedMax)
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{X: x, Y: y}
		ecs.Velocities[id] = &component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		ecs.Particles[id] = &component.Particle{RemainingLife: rng.Range(b.lifeMin, b.lifeMax)}
	}
}
