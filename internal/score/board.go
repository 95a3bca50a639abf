// Package score keeps the session win/loss/streak counters.
package score

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Record is the persisted score of a session.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Streak int `json:"streak"`
}

// Store persists a Record. Implementations live in the store package.
type Store interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, r Record) error
}

// Board is the scoreboard for the current session.
type Board struct {
	rec   Record
	store Store
}

// Open reads the record once. A failed read starts from zero.
func Open(ctx context.Context, st Store) *Board {
	b := &Board{store: st}
	rec, err := st.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load scores")
		return b
	}
	b.rec = sanitize(rec)
	return b
}

// RecordWin increments wins and streak together and persists.
func (b *Board) RecordWin(ctx context.Context) Record {
	b.rec.Wins++
	b.rec.Streak++
	b.persist(ctx)
	return b.rec
}

// RecordLoss increments losses, resets the streak and persists.
func (b *Board) RecordLoss(ctx context.Context) Record {
	b.rec.Losses++
	b.rec.Streak = 0
	b.persist(ctx)
	return b.rec
}

// Record returns the current counters.
func (b *Board) Record() Record { return b.rec }

// persist writes all three counters; a failure keeps the in-memory record.
func (b *Board) persist(ctx context.Context) {
	if err := b.store.Save(ctx, b.rec); err != nil {
		log.Warn().Err(err).
			Int("wins", b.rec.Wins).
			Int("losses", b.rec.Losses).
			Int("streak", b.rec.Streak).
			Msg("save scores")
	}
}

func sanitize(r Record) Record {
	if r.Wins < 0 {
		r.Wins = 0
	}
	if r.Losses < 0 {
		r.Losses = 0
	}
	if r.Streak < 0 {
		r.Streak = 0
	}
	return r
}
