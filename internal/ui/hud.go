// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zombie-shooter/internal/component"
	"zombie-shooter/internal/config"
)

const (
	hudMargin      = 16
	healthBarWidth = 220
	quotaBarWidth  = 160
	bossBarWidth   = 420
	barHeight      = 14
	crosshairSize  = 10
)

// HUD рисует всё, что лежит поверх мира.
type HUD struct {
	Health *Bar
	Quota  *Bar
	Boss   *Bar
	Level  *LevelIndicator
}

func NewHUD() *HUD {
	return &HUD{
		Health: NewBar(hudMargin, hudMargin, healthBarWidth, barHeight, config.HPBarFillColor),
		Quota:  NewBar(hudMargin, hudMargin+barHeight+28, quotaBarWidth, barHeight/2, config.PlayerFill),
		Boss:   NewBar(0, 0, bossBarWidth, barHeight, config.BossFill),
		Level:  NewLevelIndicator(0, 0),
	}
}

// QuotaVisible: полоса прогресса уровня видна только пока идут волны.
func QuotaVisible(snap component.Snapshot) bool {
	return !snap.Progress.BossActive() && !snap.Progress.LevelComplete()
}

func (h *HUD) Draw(screen *ebiten.Image, snap component.Snapshot, muted bool) {
	w := screen.Bounds().Dx()
	hgt := screen.Bounds().Dy()
	p := snap.Progress

	// Здоровье и счёт
	var player component.PlayerView
	if snap.Player != nil {
		player = *snap.Player
	}
	ratio := 0.0
	if player.MaxHealth > 0 {
		ratio = player.Health / player.MaxHealth
	}
	h.Health.Draw(screen, ratio)
	hp := fmt.Sprintf("HP %d/%d", int(player.Health+0.5), int(player.MaxHealth))
	text.Draw(screen, hp, Face, hudMargin+healthBarWidth+10, hudMargin+barHeight-2, config.UITextColor)
	text.Draw(screen, fmt.Sprintf("SCORE %d", p.Score), Face, hudMargin, hudMargin+barHeight+20, config.UITextColor)

	if QuotaVisible(snap) {
		h.Quota.Draw(screen, float64(p.KillsThisLevel)/float64(config.ZombiesPerLevel))
		label := fmt.Sprintf("%d/%d", p.KillsThisLevel, config.ZombiesPerLevel)
		text.Draw(screen, label, Face, hudMargin+quotaBarWidth+10, int(h.Quota.Y)+barHeight/2, config.UIFaintColor)
	}

	h.Level.X, h.Level.Y = w/2, hudMargin+barHeight
	h.Level.Draw(screen, p.Level, p.BossActive())

	if snap.Boss != nil {
		h.Boss.X = float32(w-bossBarWidth) / 2
		h.Boss.Y = hudMargin + barHeight + 12
		h.Boss.Draw(screen, snap.Boss.Health/snap.Boss.MaxHealth)
		DrawCentered(screen, "BOSS", Face, w/2, int(h.Boss.Y)+barHeight+14, config.BossAttackColor)
	}

	if p.LevelComplete() {
		DrawBanner(screen, fmt.Sprintf("LEVEL %s COMPLETE", toRoman(p.Level-1)), "get ready...")
	}

	if muted {
		text.Draw(screen, "MUTED (M)", Face, w-hudMargin-TextWidth(Face, "MUTED (M)"), hgt-hudMargin, config.UIFaintColor)
	}
	text.Draw(screen, p.PlayerName, Face, hudMargin, hgt-hudMargin, config.UIFaintColor)

	if !p.GameOver && snap.Player != nil {
		drawCrosshair(screen, float32(player.AimX), float32(player.AimY))
	}
}

// DrawBanner рисует крупную надпись по центру экрана на полупрозрачной плашке.
func DrawBanner(screen *ebiten.Image, title, subtitle string) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	bw := float32(TextWidth(Face, title)*2 + 80)
	vector.DrawFilledRect(screen, (float32(w)-bw)/2, float32(h)/2-40, bw, 80, config.OverlayColor, false)

	// basicfont мелкий, поэтому заголовок рисуется через масштабированную картинку
	titleImg := ebiten.NewImage(TextWidth(Face, title)+2, 16)
	text.Draw(titleImg, title, Face, 1, 12, config.UITextColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(w)/2-float64(titleImg.Bounds().Dx()), float64(h)/2-30)
	screen.DrawImage(titleImg, op)
	titleImg.Deallocate()

	if subtitle != "" {
		DrawCentered(screen, subtitle, Face, w/2, h/2+24, config.UIFaintColor)
	}
}

func drawCrosshair(screen *ebiten.Image, x, y float32) {
	clr := color.RGBA{255, 255, 255, 200}
	vector.StrokeCircle(screen, x, y, crosshairSize, 1.5, clr, true)
	vector.StrokeLine(screen, x-crosshairSize-4, y, x-crosshairSize+4, y, 1.5, clr, true)
	vector.StrokeLine(screen, x+crosshairSize-4, y, x+crosshairSize+4, y, 1.5, clr, true)
	vector.StrokeLine(screen, x, y-crosshairSize-4, x, y-crosshairSize+4, 1.5, clr, true)
	vector.StrokeLine(screen, x, y+crosshairSize-4, x, y+crosshairSize+4, 1.5, clr, true)
}
