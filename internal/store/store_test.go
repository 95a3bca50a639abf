package store

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/score"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	migs, err := assets.Migrations()
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	for _, m := range migs {
		if _, err := db.Exec(m.SQL); err != nil {
			t.Fatalf("apply %s: %v", m.Name, err)
		}
	}
	return db
}

func TestMemory_ScoresAndPrefs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if r, _ := m.Load(ctx); r != (score.Record{}) {
		t.Errorf("initial record %+v", r)
	}
	want := score.Record{Wins: 1, Streak: 1}
	_ = m.Save(ctx, want)
	if r, _ := m.Load(ctx); r != want {
		t.Errorf("record %+v, want %+v", r, want)
	}

	if _, ok, _ := m.Get(ctx, "theme"); ok {
		t.Error("unset preference reported as set")
	}
	_ = m.Set(ctx, "theme", "light")
	if v, ok, _ := m.Get(ctx, "theme"); !ok || v != "light" {
		t.Errorf("theme %q,%v", v, ok)
	}
}

func TestScores_RoundTripPerSession(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	a := NewScores(db, "session-a")
	b := NewScores(db, "session-b")

	if r, err := a.Load(ctx); err != nil || r != (score.Record{}) {
		t.Fatalf("empty load %+v, %v", r, err)
	}
	if err := a.Save(ctx, score.Record{Wins: 2, Losses: 1, Streak: 2}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := a.Save(ctx, score.Record{Wins: 3, Losses: 1, Streak: 3}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if err := b.Save(ctx, score.Record{Losses: 5}); err != nil {
		t.Fatalf("save b: %v", err)
	}

	got, err := a.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := (score.Record{Wins: 3, Losses: 1, Streak: 3}); got != want {
		t.Errorf("record %+v, want %+v", got, want)
	}
	if got, _ := b.Load(ctx); got.Losses != 5 {
		t.Errorf("session b %+v", got)
	}
}

func TestScores_PurgeOtherSessions(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_ = NewScores(db, "old-1").Save(ctx, score.Record{Wins: 1})
	_ = NewScores(db, "old-2").Save(ctx, score.Record{Wins: 2})
	cur := NewScores(db, "current")
	_ = cur.Save(ctx, score.Record{Wins: 7})

	n, err := cur.PurgeOtherSessions(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 2 {
		t.Errorf("purged %d, want 2", n)
	}
	if r, _ := NewScores(db, "old-1").Load(ctx); r != (score.Record{}) {
		t.Errorf("old session survived: %+v", r)
	}
	if r, _ := cur.Load(ctx); r.Wins != 7 {
		t.Errorf("current session lost: %+v", r)
	}
}

func TestSQLitePrefs(t *testing.T) {
	ctx := context.Background()
	p := NewPrefs(openTestDB(t))

	if _, ok, err := p.Get(ctx, "theme"); ok || err != nil {
		t.Fatalf("unset get ok=%v err=%v", ok, err)
	}
	if err := p.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := p.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, ok, err := p.Get(ctx, "theme"); err != nil || !ok || v != "light" {
		t.Errorf("theme %q ok=%v err=%v", v, ok, err)
	}
}
