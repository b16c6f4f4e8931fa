package input

import "testing"

func TestTextField(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		typed   string
		erase   int
		want    string
	}{
		{"plain", "", "Ash", 0, "Ash"},
		{"limit", "", "abcdefghijkl", 0, "abcdefgh"},
		{"initial counts", "Bob", "bystander", 0, "Bobbysta"},
		{"control chars dropped", "", "a\tb\nc", 0, "abc"},
		{"backspace", "", "Alice", 2, "Ali"},
		{"backspace empty", "", "", 3, ""},
		{"trim", "", "  Zed ", 0, "Zed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextField(8, tt.initial)
			f.Append([]rune(tt.typed))
			for i := 0; i < tt.erase; i++ {
				f.Backspace()
			}
			if got := f.Value(); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}
