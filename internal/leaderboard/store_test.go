package leaderboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"zombie-shooter/internal/interfaces"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_TopOrdersByScoreThenLevel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	clock := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { clock = clock.Add(time.Second); return clock }

	scores := []interfaces.FinalScore{
		{RunID: "a", PlayerName: "ann", Score: 10, Level: 1},
		{RunID: "b", PlayerName: "bob", Score: 30, Level: 3},
		{RunID: "c", PlayerName: "cid", Score: 30, Level: 4},
		{RunID: "d", PlayerName: "dee", Score: 5, Level: 1},
	}
	for _, sc := range scores {
		if err := s.Save(ctx, sc); err != nil {
			t.Fatalf("Save(%v): %v", sc, err)
		}
	}

	top, err := s.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := []string{"c", "b", "a"}
	if len(top) != len(want) {
		t.Fatalf("Top returned %d rows, want %d", len(top), len(want))
	}
	for i, id := range want {
		if top[i].RunID != id {
			t.Errorf("top[%d] = %s, want %s", i, top[i].RunID, id)
		}
	}
	if top[0].PlayerName != "cid" || top[0].Score != 30 || top[0].Level != 4 {
		t.Errorf("top[0] = %+v", top[0])
	}
}

func TestStore_SaveSameRunUpdates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, interfaces.FinalScore{RunID: "r", PlayerName: "x", Score: 1, Level: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, interfaces.FinalScore{RunID: "r", PlayerName: "x", Score: 9, Level: 2}); err != nil {
		t.Fatal(err)
	}

	top, err := s.Top(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Score != 9 {
		t.Errorf("Top = %+v, want single updated row", top)
	}
}

func TestStore_EmptyTop(t *testing.T) {
	s := openTestStore(t)
	top, err := s.Top(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("Top on empty store = %+v", top)
	}
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "scores.db"))
	if err == nil {
		t.Fatal("expected error for unreachable path")
	}
}
