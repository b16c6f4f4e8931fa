// internal/component/player.go
package component

// Player хранит состояние, специфичное для аватара игрока.
type Player struct {
	FireCooldown float64 // Оставшееся время до следующего выстрела, секунды
	AimX, AimY   float64 // Последняя точка прицеливания (для отрисовки)
}
