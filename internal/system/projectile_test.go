package system

import (
	"testing"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
)

func TestIsOffscreen(t *testing.T) {
	m := config.OffscreenMargin
	tests := []struct {
		name string
		pos  component.Position
		want bool
	}{
		{"center", component.Position{X: 600, Y: 450}, false},
		{"left at margin", component.Position{X: -m, Y: 450}, true},
		{"left inside margin", component.Position{X: -m + 0.1, Y: 450}, false},
		{"right at margin", component.Position{X: testBounds.Width + m, Y: 450}, true},
		{"top past margin", component.Position{X: 600, Y: -m - 1}, true},
		{"bottom inside margin", component.Position{X: 600, Y: testBounds.Height + m - 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOffscreen(tt.pos, testBounds); got != tt.want {
				t.Errorf("IsOffscreen(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestProjectileSystem_RemovesExpiredAndOffscreen(t *testing.T) {
	w := newWorld(t)
	expired := w.addProjectile(600, 450, 0, 0)
	w.ecs.Projectiles[expired].RemainingLife = 0
	gone := w.addProjectile(testBounds.Width+config.OffscreenMargin, 450, 700, 0)
	live := w.addProjectile(600, 450, 700, 0)

	NewProjectileSystem(w.ecs).Update(testBounds)

	if w.ecs.IsAlive(expired) || w.ecs.IsAlive(gone) {
		t.Error("expired and offscreen projectiles should be removed")
	}
	if !w.ecs.IsAlive(live) {
		t.Error("live projectile was removed")
	}
}

func TestProjectile_LivesAtMostItsLifetime(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(600, 450)
	pid := w.addProjectile(600, 450, 0, 0)
	move := NewMovementSystem(w.ecs)
	lifecycle := NewProjectileSystem(w.ecs)

	ticks := 0
	for w.ecs.IsAlive(pid) && ticks < 1000 {
		move.Update(0.05)
		lifecycle.Update(testBounds)
		ticks++
	}
	// 1.8 с при шаге 0.05 с
	if ticks < 36 || ticks > 37 {
		t.Errorf("projectile lived %d ticks, want 36..37", ticks)
	}
}
