// internal/ui/bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"zombie-shooter/internal/config"
)

const borderWidth = 1

// Bar — полоса заполнения с рамкой: здоровье, прогресс уровня, здоровье босса.
type Bar struct {
	X, Y          float32
	Width, Height float32
	Fill          color.Color
	Back          color.Color
	Border        color.Color
}

func NewBar(x, y, width, height float32, fill color.Color) *Bar {
	return &Bar{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Fill:   fill,
		Back:   config.HPBarBackColor,
		Border: color.White,
	}
}

// FillWidth возвращает ширину заполненной части для доли ratio.
func (b *Bar) FillWidth(ratio float64) float32 {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return float32(float64(b.Width-borderWidth*2) * ratio)
}

// Draw отрисовывает полосу, ratio зажимается в [0, 1].
func (b *Bar) Draw(screen *ebiten.Image, ratio float64) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, b.Back, true)
	if w := b.FillWidth(ratio); w > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, w, b.Height-borderWidth*2, b.Fill, true)
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, borderWidth, b.Border, true)
}
