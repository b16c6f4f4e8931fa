// internal/input/keyboard_mouse.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardMouse читает WASD/стрелки, курсор и левую кнопку мыши.
// Логический экран совпадает с окном, поэтому координаты курсора уже мировые.
type KeyboardMouse struct{}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (KeyboardMouse) MoveDirection() (dx, dy int) {
	if anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		dx--
	}
	if anyPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		dx++
	}
	if anyPressed(ebiten.KeyW, ebiten.KeyArrowUp) {
		dy--
	}
	if anyPressed(ebiten.KeyS, ebiten.KeyArrowDown) {
		dy++
	}
	return dx, dy
}

func (KeyboardMouse) AimTarget() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (KeyboardMouse) FireHeld() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
}
