package interfaces

// Input — источник управления, который ядро опрашивает один раз за тик.
// Буферизация и очередь нажатий не требуются.
type Input interface {
	// MoveDirection возвращает зажатое направление движения, каждая ось в {-1, 0, 1}.
	MoveDirection() (dx, dy int)
	// AimTarget возвращает точку прицеливания в мировых координатах.
	AimTarget() (x, y float64)
	// FireHeld сообщает, зажата ли кнопка огня.
	FireHeld() bool
}

// IdleInput — ввод без движения и стрельбы; используется, пока игра не началась.
type IdleInput struct{}

func (IdleInput) MoveDirection() (int, int)     { return 0, 0 }
func (IdleInput) AimTarget() (float64, float64) { return 0, 0 }
func (IdleInput) FireHeld() bool                { return false }
