package component

// Health — компонент здоровья. Value никогда не растёт после создания.
type Health struct {
	Value float64
	Max   float64
}

// Ratio возвращает долю оставшегося здоровья в диапазоне [0, 1].
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := h.Value / h.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Collider — круглая область столкновения.
type Collider struct {
	Radius float64
}
