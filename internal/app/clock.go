package app

import (
	"time"

	"zombie-shooter/internal/config"
	"zombie-shooter/internal/utils"
)

// FrameClock меряет время между кадрами хоста.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick возвращает секунды с прошлого вызова, зажатые в [0, MaxDeltaTime].
// Первый вызов после создания или Reset возвращает 0.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return utils.Clamp(dt, 0, config.MaxDeltaTime)
}

// Reset забывает прошлый кадр, например после паузы.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
