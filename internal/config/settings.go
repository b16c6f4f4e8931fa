package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Settings — параметры запуска, которые не являются игровым балансом.
type Settings struct {
	DBPath     string
	TuningPath string
	PlayerName string
	DebugAddr  string
	LogLevel   slog.Level
	Seed       int64
	Muted      bool
	Width      int
	Height     int
}

// ParseSettings читает флаги командной строки; переменные окружения ZOMBIE_* задают значения по умолчанию.
func ParseSettings(args []string) (Settings, error) {
	fs := flag.NewFlagSet("zombie-shooter", flag.ContinueOnError)

	s := Settings{}
	var level string
	fs.StringVar(&s.DBPath, "db", envOr("ZOMBIE_DB", "leaderboard.db"), "path to the SQLite leaderboard")
	fs.StringVar(&s.TuningPath, "tuning", envOr("ZOMBIE_TUNING", ""), "optional JSON file overriding enemy archetypes")
	fs.StringVar(&s.PlayerName, "name", envOr("ZOMBIE_NAME", ""), "skip name entry and play as this name")
	fs.StringVar(&s.DebugAddr, "debug-addr", envOr("ZOMBIE_DEBUG_ADDR", ""), "serve net/http/pprof on this address")
	fs.StringVar(&level, "log-level", envOr("ZOMBIE_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.Int64Var(&s.Seed, "seed", envInt64("ZOMBIE_SEED", 0), "random seed, 0 means time based")
	fs.BoolVar(&s.Muted, "mute", os.Getenv("ZOMBIE_MUTE") != "", "start with sound disabled")
	fs.IntVar(&s.Width, "width", ScreenWidth, "initial window width")
	fs.IntVar(&s.Height, "height", ScreenHeight, "initial window height")

	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	if err := s.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Settings{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Settings{}, fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	return s, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("ignoring malformed environment value", "key", key, "value", v)
		return fallback
	}
	return n
}
