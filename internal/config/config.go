// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.05 // секунды; защита от скачков после сворачивания окна

	PlayerMaxHealth = 100.0
	PlayerMoveSpeed = 240.0 // пикселей в секунду
	PlayerRadius    = 20.0

	BulletRadius       = 4.0
	BulletSpeed        = 700.0
	BulletFireRate     = 7.0 // выстрелов в секунду при зажатой кнопке
	BulletDamage       = 45.0
	BulletLifetime     = 1800 * time.Millisecond
	BulletSpawnPadding = 1.0
	OffscreenMargin    = 50.0 // снаряд удаляется на этом расстоянии за краем экрана

	ZombieContactDPS = 28.0 // урон игроку в секунду при контакте
	SpawnMargin      = 40.0

	InitialSpawnInterval = 1100 * time.Millisecond
	MinSpawnInterval     = 350 * time.Millisecond
	SpawnIntervalDecay   = 6 * time.Millisecond // уменьшение интервала за каждую секунду игры

	DifficultyTimeScale  = 60.0 // секунд до +1 к сложности
	DifficultyTimeCap    = 2.5
	LevelDifficultyBonus = 0.3

	ZombiesPerLevel       = 10 // убийств до появления босса
	LevelCompleteDuration = 3 * time.Second

	BloodParticlesOnDeath    = 16
	BossParticleMultiplier   = 3
	ParticleDamping          = 0.98
	ParticleFadeTime         = 400 * time.Millisecond
	ZombieWalkAnimationSpeed = 8.0
	BossWalkAnimationSpeed   = 6.0

	GrowlMinInterval = 3 * time.Second
	GrowlJitter      = 2 * time.Second

	LeaderboardSize = 3
	MaxNameLength   = 16
	ScoreQueueSize  = 8
)

var (
	BackgroundColor = color.RGBA{13, 16, 23, 255}
	GridDarkColor   = color.RGBA{15, 19, 32, 255}
	GridLightColor  = color.RGBA{18, 22, 42, 255}
	PlayerFill      = color.RGBA{76, 201, 240, 255}
	PlayerStroke    = color.RGBA{58, 134, 255, 255}
	BulletColor     = color.RGBA{255, 209, 102, 255}
	BloodColor      = color.RGBA{177, 26, 26, 255}
	UITextColor     = color.RGBA{230, 237, 243, 255}
	UIFaintColor    = color.RGBA{154, 164, 178, 255}
	HPBarBackColor  = color.RGBA{43, 47, 58, 255}
	HPBarFillColor  = color.RGBA{32, 201, 151, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 140}
	BossFill        = color.RGBA{139, 0, 0, 255}
	BossStroke      = color.RGBA{75, 0, 0, 255}
	BossAttackColor = color.RGBA{255, 60, 60, 200}
	ZombieFills     = []color.RGBA{
		{74, 93, 35, 255},  // обычный
		{92, 107, 52, 255}, // бледный
		{61, 79, 43, 255},  // гнилой
	}
	ZombieStroke = color.RGBA{45, 106, 79, 255}
)
