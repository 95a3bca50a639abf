package score

import (
	"context"
	"errors"
	"testing"
)

type memStore struct {
	rec     Record
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (Record, error) { return m.rec, m.loadErr }
func (m *memStore) Save(_ context.Context, r Record) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rec = r
	return nil
}

func TestBoard_WinIncrementsWinsAndStreak(t *testing.T) {
	ctx := context.Background()
	st := &memStore{rec: Record{Wins: 2, Losses: 1, Streak: 2}}
	b := Open(ctx, st)

	got := b.RecordWin(ctx)
	want := Record{Wins: 3, Losses: 1, Streak: 3}
	if got != want {
		t.Errorf("record %+v, want %+v", got, want)
	}
	if st.rec != want || st.saves != 1 {
		t.Errorf("persisted %+v after %d saves", st.rec, st.saves)
	}
}

func TestBoard_LossResetsStreak(t *testing.T) {
	ctx := context.Background()
	st := &memStore{rec: Record{Wins: 4, Streak: 4}}
	b := Open(ctx, st)

	got := b.RecordLoss(ctx)
	want := Record{Wins: 4, Losses: 1, Streak: 0}
	if got != want {
		t.Errorf("record %+v, want %+v", got, want)
	}
	if st.rec != want {
		t.Errorf("persisted %+v", st.rec)
	}
}

func TestBoard_LoadFailureStartsAtZero(t *testing.T) {
	b := Open(context.Background(), &memStore{rec: Record{Wins: 9}, loadErr: errors.New("boom")})
	if b.Record() != (Record{}) {
		t.Errorf("record %+v, want zero", b.Record())
	}
}

func TestBoard_SaveFailureKeepsCounters(t *testing.T) {
	ctx := context.Background()
	st := &memStore{saveErr: errors.New("disk full")}
	b := Open(ctx, st)
	b.RecordWin(ctx)
	b.RecordWin(ctx)
	if b.Record().Wins != 2 || b.Record().Streak != 2 {
		t.Errorf("record %+v", b.Record())
	}
	if st.saves != 2 {
		t.Errorf("saves %d, want one per mutation", st.saves)
	}
}

func TestBoard_SanitizesNegativeCounters(t *testing.T) {
	b := Open(context.Background(), &memStore{rec: Record{Wins: -1, Losses: -3, Streak: -2}})
	if b.Record() != (Record{}) {
		t.Errorf("record %+v", b.Record())
	}
}
