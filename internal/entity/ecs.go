// internal/entity/ecs.go
package entity

import (
	"zombie-shooter/internal/component"
	"zombie-shooter/internal/types"
)

// ECS владеет всеми сущностями одной игровой сессии.
// Удаление двухфазное: Destroy помечает сущность, Compact вычищает её в конце тика,
// поэтому системы могут безопасно удалять сущности во время обхода.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Pursuers    map[types.EntityID]*component.Pursuer
	Colliders   map[types.EntityID]*component.Collider
	Healths     map[types.EntityID]*component.Health
	Players     map[types.EntityID]*component.Player
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	Bosses      map[types.EntityID]*component.Boss
	Particles   map[types.EntityID]*component.Particle
	Visuals     map[types.EntityID]*component.Visual
	Progress    *component.Progress

	PlayerID types.EntityID
	BossID   types.EntityID // 0, если босса нет

	order []types.EntityID // порядок создания, задаёт порядок обхода
	dead  map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Pursuers:    make(map[types.EntityID]*component.Pursuer),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Healths:     make(map[types.EntityID]*component.Health),
		Players:     make(map[types.EntityID]*component.Player),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Bosses:      make(map[types.EntityID]*component.Boss),
		Particles:   make(map[types.EntityID]*component.Particle),
		Visuals:     make(map[types.EntityID]*component.Visual),
		Progress:    component.NewProgress("", ""),
		dead:        make(map[types.EntityID]struct{}),
	}
}

// Reset возвращает ECS в состояние сразу после NewECS.
// Указатель остаётся прежним, поэтому системы продолжают работать с ним.
func (ecs *ECS) Reset() {
	*ecs = *NewECS()
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.order = append(ecs.order, id)
	return id
}

// Destroy помечает сущность на удаление. Компоненты остаются доступны до Compact.
func (ecs *ECS) Destroy(id types.EntityID) {
	if id == 0 || ecs.Positions[id] == nil {
		return
	}
	ecs.dead[id] = struct{}{}
	if ecs.BossID == id {
		ecs.BossID = 0
	}
}

// IsAlive сообщает, существует ли сущность и не помечена ли она на удаление.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	_, isDead := ecs.dead[id]
	return !isDead && ecs.Positions[id] != nil
}

// Compact удаляет все помеченные сущности и их компоненты.
func (ecs *ECS) Compact() {
	if len(ecs.dead) == 0 {
		return
	}
	kept := ecs.order[:0]
	for _, id := range ecs.order {
		if _, isDead := ecs.dead[id]; isDead {
			ecs.removeComponents(id)
			continue
		}
		kept = append(kept, id)
	}
	ecs.order = kept
	clear(ecs.dead)
}

func (ecs *ECS) removeComponents(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Pursuers, id)
	delete(ecs.Colliders, id)
	delete(ecs.Healths, id)
	delete(ecs.Players, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Particles, id)
	delete(ecs.Visuals, id)
}

// EnemyIDs возвращает живых обычных врагов в порядке создания.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return ecs.collect(func(id types.EntityID) bool { _, ok := ecs.Enemies[id]; return ok })
}

// ProjectileIDs возвращает живые снаряды в порядке создания.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return ecs.collect(func(id types.EntityID) bool { _, ok := ecs.Projectiles[id]; return ok })
}

// ParticleIDs возвращает живые частицы в порядке создания.
func (ecs *ECS) ParticleIDs() []types.EntityID {
	return ecs.collect(func(id types.EntityID) bool { _, ok := ecs.Particles[id]; return ok })
}

func (ecs *ECS) collect(match func(types.EntityID) bool) []types.EntityID {
	var ids []types.EntityID
	for _, id := range ecs.order {
		if _, isDead := ecs.dead[id]; isDead {
			continue
		}
		if match(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Boss возвращает живого босса, если он есть.
func (ecs *ECS) Boss() (types.EntityID, *component.Boss, bool) {
	if !ecs.IsAlive(ecs.BossID) {
		return 0, nil, false
	}
	return ecs.BossID, ecs.Bosses[ecs.BossID], true
}

// Player возвращает позицию и коллайдер игрока.
func (ecs *ECS) Player() (*component.Position, *component.Collider, bool) {
	if !ecs.IsAlive(ecs.PlayerID) {
		return nil, nil, false
	}
	return ecs.Positions[ecs.PlayerID], ecs.Colliders[ecs.PlayerID], true
}

// Count возвращает число живых сущностей.
func (ecs *ECS) Count() int {
	return len(ecs.order) - len(ecs.dead)
}
