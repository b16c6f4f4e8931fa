// internal/component/visual.go
package component

// Visual хранит поля, нужные только для отрисовки.
// Симуляция их не читает.
type Visual struct {
	WalkCycle float64 // фаза анимации ходьбы
	WalkSpeed float64
	Variant   int // косметический тип зомби
}
