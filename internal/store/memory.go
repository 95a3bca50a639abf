// internal/store/memory.go
//
// In-memory implementation of the score and preference stores.
// Used by tests and when the client runs with DB_PATH=":memory:"-style
// ephemeral storage.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/hangman/internal/score"
)

// Prefs persists string preferences that outlive a session.
type Prefs interface {
	// Get returns the value for key and whether it was set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Memory is a map-backed score.Store and Prefs.
type Memory struct {
	mu    sync.RWMutex      // guards rec and prefs
	rec   score.Record      // current session counters
	prefs map[string]string // keyed by preference name
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{prefs: make(map[string]string)}
}

// Load returns the stored counters.
func (m *Memory) Load(ctx context.Context) (score.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rec, nil
}

// Save replaces the stored counters.
func (m *Memory) Save(ctx context.Context, r score.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = r
	return nil
}

// Get looks up a preference.
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.prefs[key]
	return v, ok, nil
}

// Set stores a preference.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[key] = value
	return nil
}
