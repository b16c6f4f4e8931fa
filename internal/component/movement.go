// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости в пикселях в секунду
type Velocity struct {
	X, Y float64
}

// Pursuer — сущность, которая каждый тик движется прямо к игроку.
type Pursuer struct {
	Speed float64
}

// Bounds — размеры игровой области в мировых единицах.
// Могут меняться между тиками при изменении размера окна.
type Bounds struct {
	Width, Height float64
}

// Center возвращает центр игровой области.
func (b Bounds) Center() Position {
	return Position{X: b.Width / 2, Y: b.Height / 2}
}
