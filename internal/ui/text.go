// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — шрифт интерфейса. Моноширинный, поэтому ширину строки легко посчитать.
var Face font.Face = basicfont.Face7x13

// TextWidth возвращает ширину строки в пикселях.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawCentered рисует строку с центром по cx. y — базовая линия.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	text.Draw(screen, s, face, cx-TextWidth(face, s)/2, y, clr)
}

// DrawOutlined рисует строку с обводкой толщиной thickness пикселей.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}
