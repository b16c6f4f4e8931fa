// internal/leaderboard/store.go
package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"zombie-shooter/internal/interfaces"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	run_id      TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	score       INTEGER NOT NULL,
	level       INTEGER NOT NULL,
	recorded_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS scores_rank ON scores (score DESC, level DESC);
`

// Store хранит результаты в SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open открывает (или создаёт) базу по пути path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open leaderboard %s: %w", path, err)
	}
	// SQLite не любит параллельных писателей
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create leaderboard schema: %w", err)
	}
	slog.Info("leaderboard opened", "path", path)
	return &Store{db: db, now: time.Now}, nil
}

// Save записывает результат. Повторная запись того же забега обновляет строку.
func (s *Store) Save(ctx context.Context, score interfaces.FinalScore) error {
	const query = `
	INSERT INTO scores (run_id, name, score, level, recorded_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(run_id) DO UPDATE SET
		name = excluded.name,
		score = excluded.score,
		level = excluded.level,
		recorded_at = excluded.recorded_at;
	`
	_, err := s.db.ExecContext(ctx, query, score.RunID, score.PlayerName, score.Score, score.Level, s.now().UTC())
	if err != nil {
		return fmt.Errorf("save score for run %s: %w", score.RunID, err)
	}
	return nil
}

// Top возвращает limit лучших результатов: по очкам, затем по уровню.
func (s *Store) Top(ctx context.Context, limit int) ([]interfaces.FinalScore, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, name, score, level FROM scores ORDER BY score DESC, level DESC, recorded_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var out []interfaces.FinalScore
	for rows.Next() {
		var fs interfaces.FinalScore
		if err := rows.Scan(&fs.RunID, &fs.PlayerName, &fs.Score, &fs.Level); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		out = append(out, fs)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
