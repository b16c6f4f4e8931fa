// internal/defs/enemies.go
package defs

import "zombie-shooter/internal/config"

// ZombieDefinition описывает разброс параметров обычного зомби.
type ZombieDefinition struct {
	RadiusMin       float64 `json:"radius_min"`
	RadiusMax       float64 `json:"radius_max"`
	BaseSpeed       float64 `json:"base_speed"`
	SpeedJitterMin  float64 `json:"speed_jitter_min"`
	SpeedJitterMax  float64 `json:"speed_jitter_max"`
	HealthPerRadius float64 `json:"health_per_radius"`
	HealthJitterMin float64 `json:"health_jitter_min"`
	HealthJitterMax float64 `json:"health_jitter_max"`
	ContactDPS      float64 `json:"contact_dps"`
	Variants        int     `json:"variants"`
}

// BossDefinition описывает босса через множители над базовым зомби.
type BossDefinition struct {
	Radius           float64 `json:"radius"`
	BaseHealth       float64 `json:"base_health"`
	HealthMultiplier float64 `json:"health_multiplier"`
	SpeedMultiplier  float64 `json:"speed_multiplier"`
	DamageMultiplier float64 `json:"damage_multiplier"`
	AttackCooldown   float64 `json:"attack_cooldown"`
	AttackDuration   float64 `json:"attack_duration"`
	AttackReach      float64 `json:"attack_reach"`
}

// Health возвращает стартовое здоровье босса.
func (d BossDefinition) Health() float64 {
	return d.BaseHealth * d.HealthMultiplier
}

// Speed возвращает скорость босса относительно базового зомби.
func (d BossDefinition) Speed(zombie ZombieDefinition) float64 {
	return zombie.BaseSpeed * d.SpeedMultiplier
}

// ContactDPS возвращает урон босса в секунду при контакте.
func (d BossDefinition) ContactDPS(zombie ZombieDefinition) float64 {
	return zombie.ContactDPS * d.DamageMultiplier
}

// Archetypes — полный набор определений врагов для одной игры.
type Archetypes struct {
	Zombie ZombieDefinition `json:"zombie"`
	Boss   BossDefinition   `json:"boss"`
}

// DefaultArchetypes возвращает баланс, с которым игра поставляется.
func DefaultArchetypes() Archetypes {
	return Archetypes{
		Zombie: ZombieDefinition{
			RadiusMin:       16,
			RadiusMax:       26,
			BaseSpeed:       70,
			SpeedJitterMin:  -10,
			SpeedJitterMax:  25,
			HealthPerRadius: 8,
			HealthJitterMin: 0.6,
			HealthJitterMax: 1.1,
			ContactDPS:      config.ZombieContactDPS,
			Variants:        3,
		},
		Boss: BossDefinition{
			Radius:           40,
			BaseHealth:       200,
			HealthMultiplier: 3,
			SpeedMultiplier:  0.8,
			DamageMultiplier: 2,
			AttackCooldown:   2.0,
			AttackDuration:   0.5,
			AttackReach:      20,
		},
	}
}
