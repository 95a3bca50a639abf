package session

import (
	"context"
	"testing"
	"time"

	"github.com/robalobadob/hangman/internal/store"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestResume_KeepsSessionWithinTTL(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewMemory()
	c := &clock{t: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	m := NewManager(prefs, time.Hour, WithClock(c.now))

	first, err := m.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !first.Fresh || first.ID == "" {
		t.Fatalf("first session %+v, want fresh with id", first)
	}

	c.t = c.t.Add(30 * time.Minute)
	second, err := m.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if second.Fresh || second.ID != first.ID {
		t.Errorf("second session %+v, want resumed %q", second, first.ID)
	}

	// sliding expiry: 50 minutes after the second resume is still inside it
	c.t = c.t.Add(50 * time.Minute)
	third, _ := m.Resume(ctx)
	if third.ID != first.ID {
		t.Errorf("sliding expiry lost the session")
	}
}

func TestResume_ExpiredTokenStartsFreshSession(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewMemory()
	c := &clock{t: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	m := NewManager(prefs, time.Hour, WithClock(c.now))

	first, _ := m.Resume(ctx)
	c.t = c.t.Add(2 * time.Hour)
	next, err := m.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !next.Fresh || next.ID == first.ID {
		t.Errorf("session %+v, want a fresh one", next)
	}
}

func TestResume_TamperedOrForeignToken(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewMemory()
	m := NewManager(prefs, time.Hour, WithSecret("one"))
	first, _ := m.Resume(ctx)

	other := NewManager(prefs, time.Hour, WithSecret("two"))
	s, err := other.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !s.Fresh || s.ID == first.ID {
		t.Errorf("token signed with another secret was accepted: %+v", s)
	}

	_ = prefs.Set(ctx, tokenKey, "not-a-token")
	s, _ = other.Resume(ctx)
	if !s.Fresh {
		t.Error("garbage token was accepted")
	}
}

func TestEnd(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory(), time.Hour)
	first, _ := m.Resume(ctx)
	if err := m.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}
	next, _ := m.Resume(ctx)
	if !next.Fresh || next.ID == first.ID {
		t.Errorf("session %+v after End, want fresh", next)
	}
}

func TestInstallSecretIsStable(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewMemory()
	first, _ := NewManager(prefs, time.Hour).Resume(ctx)
	second, _ := NewManager(prefs, time.Hour).Resume(ctx)
	if second.Fresh || second.ID != first.ID {
		t.Errorf("new manager over same prefs did not resume: %+v", second)
	}
}
