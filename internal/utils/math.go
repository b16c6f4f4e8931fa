// internal/utils/math.go
package utils

import "math"

// Vec2 — двумерный вектор в мировых координатах.
type Vec2 struct {
	X, Y float64
}

// Len возвращает длину вектора.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func Normalize(x, y float64) Vec2 {
	l := math.Hypot(x, y)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{x / l, y / l}
}

// Clamp ограничивает значение диапазоном [min, max].
// Если min > max, побеждает max. NaN превращается в min.
func Clamp(v, min, max float64) float64 {
	if math.IsNaN(v) {
		v = min
	}
	return math.Min(max, math.Max(min, v))
}

// Dist2 — квадрат расстояния между двумя точками.
func Dist2(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Overlaps проверяет пересечение двух окружностей (касание тоже считается).
func Overlaps(ax, ay, ar, bx, by, br float64) bool {
	sum := ar + br
	return Dist2(ax, ay, bx, by) <= sum*sum
}
