package storage

import (
	"path/filepath"
	"testing"

	"github.com/twistylab/twisty"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "twisty.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestScrambleRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	if err := repo.Create("abc-123", 1000); err != nil {
		t.Fatalf("create: %v", err)
	}
	moves := []twisty.Move{twisty.F, twisty.RPrime, twisty.U}
	for i, m := range moves {
		if err := repo.AddMove("abc-123", i, int64(600*(i+1)), m); err != nil {
			t.Fatalf("add move %d: %v", i, err)
		}
	}
	if err := repo.Finish("abc-123", 5000, len(moves), false); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got, err := repo.Moves("abc-123")
	if err != nil {
		t.Fatalf("moves: %v", err)
	}
	if len(got) != len(moves) {
		t.Fatalf("expected %d moves, got %d", len(moves), len(got))
	}
	for i, m := range got {
		if m.Notation != moves[i].String() {
			t.Errorf("move %d: notation %q, want %q", i, m.Notation, moves[i].String())
		}
		if m.Clockwise != moves[i].Clockwise {
			t.Errorf("move %d: clockwise %v, want %v", i, m.Clockwise, moves[i].Clockwise)
		}
		if m.MoveIndex != i {
			t.Errorf("move %d: index %d", i, m.MoveIndex)
		}
	}

	list, err := repo.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one scramble, got %d", len(list))
	}
	s := list[0]
	if s.ScrambleID != "abc-123" || s.MoveCount != 3 || s.Stopped {
		t.Errorf("unexpected scramble row: %+v", s)
	}
	if s.EndedAtMs == nil || *s.EndedAtMs != 5000 {
		t.Errorf("ended_at_ms not recorded: %+v", s.EndedAtMs)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	for i, id := range []string{"first", "second", "third"} {
		if err := repo.Create(id, int64(1000*(i+1))); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	list, err := repo.List(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("limit not applied, got %d rows", len(list))
	}
	if list[0].ScrambleID != "third" || list[1].ScrambleID != "second" {
		t.Errorf("unexpected order: %s, %s", list[0].ScrambleID, list[1].ScrambleID)
	}
}
