// internal/store/sqlite.go
//
// SQLite-backed stores.
//   - Scores: one row per session in the scores table. Rows of ended
//     sessions are purged when a new session starts, which is what makes the
//     counters session-scoped.
//   - SQLitePrefs: key/value rows in the preferences table that survive
//     across sessions (theme, session token, install secret).
//
// Tables are created by the migrations in assets/sql.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/hangman/internal/score"
)

// Scores stores the counters of one session.
type Scores struct {
	db      *sql.DB
	session string
}

// NewScores binds a score store to sessionID.
func NewScores(db *sql.DB, sessionID string) *Scores {
	return &Scores{db: db, session: sessionID}
}

// Load reads the session's counters; a session without a row has zero
// counters.
func (s *Scores) Load(ctx context.Context) (score.Record, error) {
	var r score.Record
	err := s.db.QueryRowContext(ctx,
		`SELECT wins, losses, streak FROM scores WHERE session_id=?`, s.session,
	).Scan(&r.Wins, &r.Losses, &r.Streak)
	if errors.Is(err, sql.ErrNoRows) {
		return score.Record{}, nil
	}
	if err != nil {
		return score.Record{}, fmt.Errorf("load scores: %w", err)
	}
	return r, nil
}

// Save upserts all three counters.
func (s *Scores) Save(ctx context.Context, r score.Record) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO scores (session_id, wins, losses, streak, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(session_id) DO UPDATE SET
            wins=excluded.wins, losses=excluded.losses,
            streak=excluded.streak, updated_at=excluded.updated_at`,
		s.session, r.Wins, r.Losses, r.Streak, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

// PurgeOtherSessions deletes the counters of every other session and
// returns how many rows were removed.
func (s *Scores) PurgeOtherSessions(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scores WHERE session_id<>?`, s.session)
	if err != nil {
		return 0, fmt.Errorf("purge scores: %w", err)
	}
	return res.RowsAffected()
}

// SQLitePrefs stores preferences in the preferences table.
type SQLitePrefs struct{ db *sql.DB }

// NewPrefs constructs a preference store.
func NewPrefs(db *sql.DB) *SQLitePrefs { return &SQLitePrefs{db: db} }

// Get looks up key.
func (p *SQLitePrefs) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key=?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return v, true, nil
}

// Set upserts key.
func (p *SQLitePrefs) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}
