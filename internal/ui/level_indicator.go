// internal/ui/level_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"zombie-shooter/internal/config"
)

// LevelIndicator отображает номер текущего уровня римскими цифрами.
type LevelIndicator struct {
	X, Y             int // X — центр надписи
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y int) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		Color:            config.PlayerFill,
		BossColor:        config.BossAttackColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Во время босса надпись красная.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level int, bossActive bool) {
	if level <= 0 {
		return
	}
	label := "LEVEL " + toRoman(level)
	clr := i.Color
	if bossActive {
		clr = i.BossColor
	}
	x := i.X - TextWidth(Face, label)/2
	DrawOutlined(screen, label, Face, x, i.Y, i.OutlineThickness, clr, i.OutlineColor)
}
