// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
type Projectile struct {
	Damage        float64
	RemainingLife float64 // секунды
}
