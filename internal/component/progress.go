package component

// Phase — фаза прогрессии уровня.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseBossActive
	PhaseLevelComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseBossActive:
		return "boss"
	case PhaseLevelComplete:
		return "level-complete"
	default:
		return "unknown"
	}
}

// Progress — состояние сессии: счёт, уровень, таймеры прогрессии.
type Progress struct {
	Phase              Phase
	Score              int
	Level              int
	KillsThisLevel     int
	Elapsed            float64 // секунды, растёт только пока игра не окончена
	SpawnCooldown      float64 // до появления следующего зомби
	LevelCompleteTimer float64 // сколько ещё показывается баннер завершения уровня
	GrowlCooldown      float64
	GameOver           bool
	PlayerName         string
	RunID              string
}

// NewProgress возвращает состояние начала новой игры.
func NewProgress(playerName, runID string) *Progress {
	return &Progress{
		Phase:      PhaseSpawning,
		Level:      1,
		PlayerName: playerName,
		RunID:      runID,
	}
}

func (p *Progress) BossActive() bool    { return p.Phase == PhaseBossActive }
func (p *Progress) LevelComplete() bool { return p.Phase == PhaseLevelComplete }
