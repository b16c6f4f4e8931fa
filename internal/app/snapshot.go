// internal/app/snapshot.go
package app

import (
	"zombie-shooter/internal/component"
)

// Snapshot копирует текущее состояние сессии. Зомби, снаряды и частицы
// идут в порядке создания, как их обходят системы.
func (g *Game) Snapshot() component.Snapshot {
	ecs := g.ECS
	snap := component.Snapshot{Progress: *ecs.Progress}

	if pos, col, ok := ecs.Player(); ok {
		h := ecs.Healths[ecs.PlayerID]
		pl := ecs.Players[ecs.PlayerID]
		snap.Player = &component.PlayerView{
			Circle:    component.Circle{X: pos.X, Y: pos.Y, Radius: col.Radius},
			Health:    h.Value,
			MaxHealth: h.Max,
			AimX:      pl.AimX,
			AimY:      pl.AimY,
		}
	}

	for _, id := range ecs.EnemyIDs() {
		pos, h, v := ecs.Positions[id], ecs.Healths[id], ecs.Visuals[id]
		view := component.ZombieView{
			Circle:    component.Circle{X: pos.X, Y: pos.Y, Radius: ecs.Colliders[id].Radius},
			Health:    h.Value,
			MaxHealth: h.Max,
		}
		if v != nil {
			view.WalkCycle, view.Variant = v.WalkCycle, v.Variant
		}
		snap.Zombies = append(snap.Zombies, view)
	}

	if id, boss, ok := ecs.Boss(); ok {
		pos, h := ecs.Positions[id], ecs.Healths[id]
		view := &component.BossView{
			Circle:    component.Circle{X: pos.X, Y: pos.Y, Radius: ecs.Colliders[id].Radius},
			Health:    h.Value,
			MaxHealth: h.Max,
			Attacking: boss.IsAttacking,
		}
		if v := ecs.Visuals[id]; v != nil {
			view.WalkCycle = v.WalkCycle
		}
		snap.Boss = view
	}

	for _, id := range ecs.ProjectileIDs() {
		pos := ecs.Positions[id]
		snap.Projectiles = append(snap.Projectiles, component.Circle{X: pos.X, Y: pos.Y, Radius: ecs.Colliders[id].Radius})
	}
	for _, id := range ecs.ParticleIDs() {
		pos := ecs.Positions[id]
		snap.Particles = append(snap.Particles, component.ParticleView{X: pos.X, Y: pos.Y, Life: ecs.Particles[id].RemainingLife})
	}
	return snap
}
