// internal/system/player_system.go
package system

import (
	"math"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/interfaces"
	"zombie-shooter/internal/utils"
)

// PlayerSystem двигает игрока по вводу и выпускает снаряды.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *PlayerSystem) Update(deltaTime float64, bounds component.Bounds, input interfaces.Input) {
	pos, col, ok := s.ecs.Player()
	if !ok {
		return
	}
	player := s.ecs.Players[s.ecs.PlayerID]

	// Диагональ нормализуется, чтобы скорость не росла в √2 раз
	dx, dy := input.MoveDirection()
	dir := utils.Normalize(float64(dx), float64(dy))
	pos.X += dir.X * config.PlayerMoveSpeed * deltaTime
	pos.Y += dir.Y * config.PlayerMoveSpeed * deltaTime
	pos.X = utils.Clamp(pos.X, col.Radius, bounds.Width-col.Radius)
	pos.Y = utils.Clamp(pos.Y, col.Radius, bounds.Height-col.Radius)

	player.AimX, player.AimY = input.AimTarget()

	player.FireCooldown -= deltaTime
	if !input.FireHeld() || s.ecs.Progress.GameOver {
		player.FireCooldown = math.Max(player.FireCooldown, 0)
		return
	}
	if player.FireCooldown <= 0 {
		s.shoot(pos, col.Radius, player.AimX, player.AimY)
		// Остаток переносится, чтобы темп не зависел от частоты кадров
		player.FireCooldown = math.Max(player.FireCooldown+1/config.BulletFireRate, 0)
	}
}

// shoot создаёт снаряд на краю игрока в направлении прицела.
// Если прицел совпадает с центром игрока, снаряд стоит на месте и исчезнет по таймеру.
func (s *PlayerSystem) shoot(pos *component.Position, radius, aimX, aimY float64) {
	dir := utils.Normalize(aimX-pos.X, aimY-pos.Y)
	offset := radius + config.BulletRadius + config.BulletSpawnPadding

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X + dir.X*offset, Y: pos.Y + dir.Y*offset}
	s.ecs.Velocities[id] = &component.Velocity{X: dir.X * config.BulletSpeed, Y: dir.Y * config.BulletSpeed}
	s.ecs.Colliders[id] = &component.Collider{Radius: config.BulletRadius}
	s.ecs.Projectiles[id] = &component.Projectile{
		Damage:        config.BulletDamage,
		RemainingLife: config.BulletLifetime.Seconds(),
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: id})
}
