// internal/event/types.go
package event

const (
	ShotFired     EventType = "ShotFired"     // Игрок выстрелил
	EnemyHit      EventType = "EnemyHit"      // Снаряд попал в зомби или босса
	EnemyKilled   EventType = "EnemyKilled"   // Зомби погиб
	ZombieGrowl   EventType = "ZombieGrowl"   // Случайный рык живых зомби
	BossSpawned   EventType = "BossSpawned"   // Появился босс
	BossAttack    EventType = "BossAttack"    // Босс начал атаку
	BossKilled    EventType = "BossKilled"    // Босс погиб
	LevelComplete EventType = "LevelComplete" // Уровень пройден
	LevelStarted  EventType = "LevelStarted"  // Снова идут волны зомби
	PlayerHit     EventType = "PlayerHit"     // Игрок получил урон
	GameOver      EventType = "GameOver"      // Здоровье игрока закончилось
)

// Feedback перечисляет все события, интересные звуку и другим «одноразовым» потребителям.
var Feedback = []EventType{
	ShotFired, EnemyHit, EnemyKilled, ZombieGrowl, BossSpawned, BossAttack,
	BossKilled, LevelComplete, LevelStarted, PlayerHit, GameOver,
}
