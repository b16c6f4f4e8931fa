// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{43, 47, 58, 255},
		HoverColor: color.RGBA{58, 134, 255, 255},
	}
}

// Contains сообщает, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке в этом кадре.
func (b *Button) IsClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Contains(ebiten.CursorPosition())
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, true)

	baseline := b.Rect.Min.Y + b.Rect.Dy()/2 + Face.Metrics().Ascent.Ceil()/2
	DrawCentered(screen, b.Text, Face, b.Rect.Min.X+b.Rect.Dx()/2, baseline, b.TextColor)
}

// CenteredRect возвращает прямоугольник w×h с центром (cx, cy).
func CenteredRect(cx, cy, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
}
