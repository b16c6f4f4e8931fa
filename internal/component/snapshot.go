// internal/component/snapshot.go
package component

// Circle — общая часть всего, что рисуется кругом.
type Circle struct {
	X, Y, Radius float64
}

type PlayerView struct {
	Circle
	Health, MaxHealth float64
	AimX, AimY        float64
}

type ZombieView struct {
	Circle
	Health, MaxHealth float64
	WalkCycle         float64
	Variant           int
}

type BossView struct {
	Circle
	Health, MaxHealth float64
	WalkCycle         float64
	Attacking         bool
}

type ParticleView struct {
	X, Y float64
	Life float64 // оставшиеся секунды
}

// Snapshot — копия мира только для чтения, которую получает отрисовка.
// Player и Boss равны nil, пока их нет в мире.
type Snapshot struct {
	Player      *PlayerView
	Zombies     []ZombieView
	Boss        *BossView
	Projectiles []Circle
	Particles   []ParticleView
	Progress    Progress
}
