package system

import (
	"math"
	"testing"

	"go.uber.org/mock/gomock"

	"zombie-shooter/internal/config"
	"zombie-shooter/internal/defs"
	"zombie-shooter/internal/event"
	"zombie-shooter/internal/event/mocks"
)

func TestCombatSystem_ProjectileKillsZombie(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	zid := w.addZombie(600, 450, 20, config.BulletDamage)
	pid := w.addProjectile(600, 450, 0, 0)
	sys := NewCombatSystem(w.ecs, w.dispatcher, w.rng)

	sys.Update(0.016)

	if w.ecs.IsAlive(zid) || w.ecs.IsAlive(pid) {
		t.Errorf("zombie alive=%v projectile alive=%v, want both removed", w.ecs.IsAlive(zid), w.ecs.IsAlive(pid))
	}
	p := w.ecs.Progress
	if p.Score != 1 || p.KillsThisLevel != 1 {
		t.Errorf("score=%d kills=%d, want 1 and 1", p.Score, p.KillsThisLevel)
	}
	if n := len(w.ecs.ParticleIDs()); n != config.BloodParticlesOnDeath {
		t.Errorf("particles = %d, want %d", n, config.BloodParticlesOnDeath)
	}
	if w.count(event.EnemyKilled) != 1 || w.count(event.EnemyHit) != 1 {
		t.Errorf("events = %v", w.events)
	}
}

func TestCombatSystem_ProjectileHitsOnlyOneTarget(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	first := w.addZombie(600, 450, 20, 100)
	second := w.addZombie(605, 450, 20, 100)
	w.addProjectile(602, 450, 0, 0)
	sys := NewCombatSystem(w.ecs, w.dispatcher, w.rng)

	sys.Update(0.016)

	if got := w.ecs.Healths[first].Value; got != 100-config.BulletDamage {
		t.Errorf("first zombie health = %v, want %v", got, 100-config.BulletDamage)
	}
	if got := w.ecs.Healths[second].Value; got != 100 {
		t.Errorf("second zombie health = %v, want 100", got)
	}
}

func TestCombatSystem_ZombiesCheckedBeforeBoss(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	bid := w.addBoss(600, 450)
	zid := w.addZombie(600, 450, 20, 100)
	w.addProjectile(600, 450, 0, 0)
	sys := NewCombatSystem(w.ecs, w.dispatcher, w.rng)

	sys.Update(0.016)

	if got := w.ecs.Healths[zid].Value; got != 100-config.BulletDamage {
		t.Errorf("zombie health = %v, want %v", got, 100-config.BulletDamage)
	}
	if h := w.ecs.Healths[bid]; h.Value != h.Max {
		t.Errorf("boss health = %v, want untouched %v", h.Value, h.Max)
	}
}

func TestCombatSystem_OverkillShotPassesThrough(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	w.addZombie(600, 450, 20, 10)
	first := w.addProjectile(600, 450, 0, 0)
	second := w.addProjectile(600, 450, 0, 0)
	sys := NewCombatSystem(w.ecs, w.dispatcher, w.rng)

	sys.Update(0.016)

	if w.ecs.IsAlive(first) {
		t.Error("first projectile should be consumed")
	}
	if !w.ecs.IsAlive(second) {
		t.Error("second projectile should not hit a zombie that is already dead")
	}
	if w.ecs.Progress.Score != 1 {
		t.Errorf("score = %d, want 1", w.ecs.Progress.Score)
	}
}

func TestCombatSystem_ContactDamageStacks(t *testing.T) {
	w := newWorld(t)
	pid := w.addPlayer(600, 450)
	w.addZombie(610, 450, 20, 100)
	w.addZombie(590, 450, 20, 100)
	w.addZombie(900, 900, 20, 100) // далеко
	sys := NewCombatSystem(w.ecs, w.dispatcher, w.rng)

	sys.Update(0.05)

	want := config.PlayerMaxHealth - 2*config.ZombieContactDPS*0.05
	if got := w.ecs.Healths[pid].Value; math.Abs(got-want) > 1e-9 {
		t.Errorf("player health = %v, want %v", got, want)
	}
	if w.count(event.PlayerHit) != 1 {
		t.Errorf("PlayerHit events = %d, want 1", w.count(event.PlayerHit))
	}
}

func TestCombatSystem_BossContactDoubleDamage(t *testing.T) {
	w := newWorld(t)
	pid := w.addPlayer(600, 450)
	w.addBoss(600, 500)
	sys := NewCombatSystem(w.ecs, w.dispatcher, w.rng)

	sys.Update(0.05)

	arch := defs.DefaultArchetypes()
	want := config.PlayerMaxHealth - arch.Boss.ContactDPS(arch.Zombie)*0.05
	if got := w.ecs.Healths[pid].Value; math.Abs(got-want) > 1e-9 {
		t.Errorf("player health = %v, want %v", got, want)
	}
}

func TestCombatSystem_GameOverIsSticky(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newWorld(t)
	pid := w.addPlayer(600, 450)
	w.ecs.Healths[pid].Value = 0.5
	w.addZombie(600, 450, 20, 100)

	listener := mocks.NewMockListener(ctrl)
	listener.EXPECT().OnEvent(gomock.Any()).Do(func(e event.Event) {
		if e.Type != event.GameOver {
			t.Errorf("unexpected event %v", e.Type)
		}
	}).Times(1)
	w.dispatcher.Subscribe(event.GameOver, listener)

	sys := NewCombatSystem(w.ecs, w.dispatcher, w.rng)
	for i := 0; i < 10; i++ {
		sys.Update(0.05)
	}

	if got := w.ecs.Healths[pid].Value; got != 0 {
		t.Errorf("player health = %v, want 0", got)
	}
	if !w.ecs.Progress.GameOver {
		t.Error("GameOver should be set")
	}
}

func TestCombatSystem_NoScoringAfterGameOver(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	w.addZombie(600, 450, 20, 10)
	w.addProjectile(600, 450, 0, 0)
	w.ecs.Progress.GameOver = true

	NewCombatSystem(w.ecs, w.dispatcher, w.rng).Update(0.05)

	if w.ecs.Progress.Score != 0 {
		t.Errorf("score = %d, want 0", w.ecs.Progress.Score)
	}
}

func TestCombatSystem_BossDeathCompletesLevel(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	NewWaveSystem(w.ecs, w.dispatcher, w.rng, defs.DefaultArchetypes())
	bid := w.addBoss(600, 450)
	w.ecs.Healths[bid].Value = config.BulletDamage
	w.ecs.Progress.KillsThisLevel = config.ZombiesPerLevel
	w.addProjectile(600, 450, 0, 0)

	NewCombatSystem(w.ecs, w.dispatcher, w.rng).Update(0.016)

	if _, _, ok := w.ecs.Boss(); ok {
		t.Error("boss should be gone")
	}
	if n := len(w.ecs.ParticleIDs()); n != config.BloodParticlesOnDeath*config.BossParticleMultiplier {
		t.Errorf("particles = %d, want %d", n, config.BloodParticlesOnDeath*config.BossParticleMultiplier)
	}
	p := w.ecs.Progress
	if p.Level != 2 || !p.LevelComplete() || p.KillsThisLevel != 0 {
		t.Errorf("progress = %+v, want level 2 complete", *p)
	}
	if p.Score != 0 {
		t.Errorf("boss kill changed score to %d", p.Score)
	}
}

func TestApplyDamage_ClampsAtZero(t *testing.T) {
	w := newWorld(t)
	zid := w.addZombie(0, 0, 20, 30)

	if !ApplyDamage(w.ecs, zid, 1000) {
		t.Error("lethal hit should report death")
	}
	if got := w.ecs.Healths[zid].Value; got != 0 {
		t.Errorf("health = %v, want 0", got)
	}
	if ApplyDamage(w.ecs, zid, 10) {
		t.Error("hitting a dead entity should not report death again")
	}
	if ApplyDamage(w.ecs, 999, 10) {
		t.Error("unknown entity should be ignored")
	}
}
