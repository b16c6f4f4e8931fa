package component

// Enemy — обычный зомби.
type Enemy struct {
	ContactDPS float64
}

// Boss — единственный крупный зомби уровня.
type Boss struct {
	ContactDPS     float64
	AttackCooldown float64 // до следующей возможной атаки
	AttackTimer    float64 // сколько ещё длится текущая атака
	IsAttacking    bool
	AttackReach    float64 // дополнительная дистанция срабатывания сверх суммы радиусов
}
