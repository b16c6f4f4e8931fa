package system

import (
	"testing"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
	"zombie-shooter/internal/defs"
	"zombie-shooter/internal/entity"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/types"
	"zombie-shooter/internal/utils"
)

var testBounds = component.Bounds{Width: config.ScreenWidth, Height: config.ScreenHeight}

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	events     []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
	}
	w.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.events = append(w.events, e)
	}), event.Feedback...)
	return w
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (w *world) addPlayer(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Colliders[id] = &component.Collider{Radius: config.PlayerRadius}
	w.ecs.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	w.ecs.Players[id] = &component.Player{}
	w.ecs.PlayerID = id
	return id
}

func (w *world) addZombie(x, y, radius, health float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Pursuers[id] = &component.Pursuer{Speed: 70}
	w.ecs.Colliders[id] = &component.Collider{Radius: radius}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Enemies[id] = &component.Enemy{ContactDPS: config.ZombieContactDPS}
	w.ecs.Visuals[id] = &component.Visual{WalkSpeed: config.ZombieWalkAnimationSpeed}
	return id
}

func (w *world) addBoss(x, y float64) types.EntityID {
	def := defs.DefaultArchetypes()
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Pursuers[id] = &component.Pursuer{Speed: def.Boss.Speed(def.Zombie)}
	w.ecs.Colliders[id] = &component.Collider{Radius: def.Boss.Radius}
	w.ecs.Healths[id] = &component.Health{Value: def.Boss.Health(), Max: def.Boss.Health()}
	w.ecs.Bosses[id] = &component.Boss{ContactDPS: def.Boss.ContactDPS(def.Zombie), AttackReach: def.Boss.AttackReach}
	w.ecs.BossID = id
	w.ecs.Progress.Phase = component.PhaseBossActive
	return id
}

func (w *world) addProjectile(x, y, vx, vy float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{X: vx, Y: vy}
	w.ecs.Colliders[id] = &component.Collider{Radius: config.BulletRadius}
	w.ecs.Projectiles[id] = &component.Projectile{Damage: config.BulletDamage, RemainingLife: config.BulletLifetime.Seconds()}
	return id
}

type fakeInput struct {
	dx, dy     int
	aimX, aimY float64
	fire       bool
}

func (f fakeInput) MoveDirection() (int, int)     { return f.dx, f.dy }
func (f fakeInput) AimTarget() (float64, float64) { return f.aimX, f.aimY }
func (f fakeInput) FireHeld() bool                { return f.fire }
