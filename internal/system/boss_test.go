package system

import (
	"testing"

	"zombie-shooter/internal/event"
)

func TestBossSystem_AttackCycle(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(600, 450)
	bid := w.addBoss(600, 520) // 70 < 40 + 20 + 20
	sys := NewBossSystem(w.ecs, w.dispatcher, 2.0, 0.5)
	boss := w.ecs.Bosses[bid]

	sys.Update(0.05)
	if !boss.IsAttacking || w.count(event.BossAttack) != 1 {
		t.Fatalf("boss should start attacking, IsAttacking=%v events=%d", boss.IsAttacking, w.count(event.BossAttack))
	}

	// Атака длится 0.5 с
	for i := 0; i < 11; i++ {
		sys.Update(0.05)
	}
	if boss.IsAttacking {
		t.Error("attack should be over after its duration")
	}
	if w.count(event.BossAttack) != 1 {
		t.Errorf("attack restarted before cooldown, events=%d", w.count(event.BossAttack))
	}

	// Через 2 с от начала атака повторяется
	for i := 0; i < 30; i++ {
		sys.Update(0.05)
	}
	if w.count(event.BossAttack) != 2 {
		t.Errorf("attacks after cooldown = %d, want 2", w.count(event.BossAttack))
	}
}

func TestBossSystem_OutOfReachDoesNotAttack(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	w.addBoss(600, 450)
	sys := NewBossSystem(w.ecs, w.dispatcher, 2.0, 0.5)

	for i := 0; i < 20; i++ {
		sys.Update(0.05)
	}
	if n := w.count(event.BossAttack); n != 0 {
		t.Errorf("attacks = %d, want 0", n)
	}
}

func TestBossSystem_NoBossIsNoop(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(100, 100)
	NewBossSystem(w.ecs, w.dispatcher, 2.0, 0.5).Update(0.05)
	if len(w.events) != 0 {
		t.Errorf("events = %v, want none", w.events)
	}
}
