package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Update(deltaTime float64)  { *s.log = append(*s.log, s.name+".update") }
func (s *recordingState) Draw(screen *ebiten.Image) {}
func (s *recordingState) Exit()                     { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine(&Context{})
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm.Update(0.016) // без состояния ничего не происходит
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.SetState(nil)

	want := []string{"a.enter", "a.update", "a.exit", "b.enter", "b.exit"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if sm.Current() != nil {
		t.Errorf("current state should be nil")
	}
}

func TestPlayerName(t *testing.T) {
	if got := PlayerName(""); got != "Anonymous" {
		t.Errorf("PlayerName(\"\") = %q", got)
	}
	if got := PlayerName("Ash"); got != "Ash" {
		t.Errorf("PlayerName(\"Ash\") = %q", got)
	}
}
