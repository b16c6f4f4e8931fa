// internal/interfaces/score.go
package interfaces

import "context"

// FinalScore — итог сессии, который ядро отдаёт наружу после окончания игры.
type FinalScore struct {
	RunID      string
	PlayerName string
	Score      int
	Level      int
}

// ScoreRecorder сохраняет результаты. Ошибки сохранения не влияют на симуляцию.
type ScoreRecorder interface {
	Record(ctx context.Context, score FinalScore) error
}

// ScoreBoard дополнительно умеет отдавать лучшие результаты.
type ScoreBoard interface {
	ScoreRecorder
	Top(ctx context.Context, limit int) ([]FinalScore, error)
}
