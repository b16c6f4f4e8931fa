package component

// Particle — косметическая частица (кровь). В столкновениях не участвует.
type Particle struct {
	RemainingLife float64 // секунды
}
