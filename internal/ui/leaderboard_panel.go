// internal/ui/leaderboard_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zombie-shooter/internal/config"
	"zombie-shooter/internal/interfaces"
)

// LeaderboardPanel показывает лучшие результаты на экране окончания игры.
type LeaderboardPanel struct {
	Width, Height int
}

func NewLeaderboardPanel() *LeaderboardPanel {
	return &LeaderboardPanel{Width: 320, Height: 150}
}

// FormatEntry возвращает строку таблицы вида "1. Ash ....... 42 (II)".
func FormatEntry(place int, e interfaces.FinalScore) string {
	name := e.PlayerName
	if name == "" {
		name = "???"
	}
	return fmt.Sprintf("%d. %-16s %5d  %s", place, name, e.Score, toRoman(e.Level))
}

// Draw рисует панель с центром по горизонтали в cx и верхом в y.
// entries == nil означает, что данные ещё загружаются.
func (p *LeaderboardPanel) Draw(screen *ebiten.Image, cx, y int, entries []interfaces.FinalScore, currentRun string, loadErr error) {
	x := cx - p.Width/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(p.Width), float32(p.Height), config.OverlayColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(p.Width), float32(p.Height), 1, config.UIFaintColor, false)

	DrawCentered(screen, "TOP SCORES", Face, cx, y+24, config.UITextColor)

	lineY := y + 56
	switch {
	case loadErr != nil:
		DrawCentered(screen, "leaderboard unavailable", Face, cx, lineY, config.UIFaintColor)
	case entries == nil:
		DrawCentered(screen, "loading...", Face, cx, lineY, config.UIFaintColor)
	case len(entries) == 0:
		DrawCentered(screen, "no scores yet", Face, cx, lineY, config.UIFaintColor)
	default:
		for i, e := range entries {
			clr := config.UITextColor
			if e.RunID == currentRun {
				clr = config.BulletColor
			}
			DrawCentered(screen, FormatEntry(i+1, e), Face, cx, lineY+i*24, clr)
		}
	}
}
