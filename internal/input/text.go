package input

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TextField собирает введённые символы, например имя игрока.
type TextField struct {
	MaxLen int
	runes  []rune
	buf    []rune
}

func NewTextField(maxLen int, initial string) *TextField {
	f := &TextField{MaxLen: maxLen}
	f.Append([]rune(initial))
	return f
}

// Update забирает символы, набранные за кадр, и обрабатывает Backspace.
func (f *TextField) Update() {
	f.buf = ebiten.AppendInputChars(f.buf[:0])
	f.Append(f.buf)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.KeyPressDuration(ebiten.KeyBackspace) > 30 {
		f.Backspace()
	}
}

// Append добавляет печатные символы, пока не достигнут MaxLen.
func (f *TextField) Append(rs []rune) {
	for _, r := range rs {
		if len(f.runes) >= f.MaxLen {
			return
		}
		if unicode.IsPrint(r) {
			f.runes = append(f.runes, r)
		}
	}
}

func (f *TextField) Backspace() {
	if len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
}

// Value возвращает текст без пробелов по краям.
func (f *TextField) Value() string {
	return strings.TrimSpace(string(f.runes))
}

// Raw возвращает текст как есть, для отображения с курсором.
func (f *TextField) Raw() string {
	return string(f.runes)
}
