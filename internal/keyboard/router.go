// Package keyboard routes pointer and physical key input to the game.
//
// Both input paths end in the same press method so that a click on an
// on-screen key and a key stroke are handled identically.
package keyboard

import "github.com/robalobadob/hangman/internal/game"

// Handler receives routed input.
type Handler interface {
	SubmitGuess(s game.Symbol)
	StartNewRound()
}

// Key is one symbol key on the on-screen keyboard.
type Key struct {
	Symbol  game.Symbol
	Status  game.KeyStatus
	Enabled bool
}

// Code identifies a non-character key.
type Code int

const (
	CodeRune Code = iota
	CodeEnter
	CodeOther
)

// Mod is a bit set of held modifiers.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModMeta
)

// KeyEvent is a physical key press, already translated from the terminal.
type KeyEvent struct {
	Code Code
	Rune rune
	Mod  Mod
}

// Router owns the 36 symbol keys.
type Router struct {
	h     Handler
	keys  []Key
	index map[game.Symbol]int
}

// New builds a router with every key enabled and unknown.
func New(h Handler) *Router {
	syms := game.Symbols()
	r := &Router{
		h:     h,
		keys:  make([]Key, len(syms)),
		index: make(map[game.Symbol]int, len(syms)),
	}
	for i, s := range syms {
		r.keys[i] = Key{Symbol: s, Enabled: true}
		r.index[s] = i
	}
	return r
}

// Press is the pointer path. Disabled and already confirmed keys are
// ignored. It reports whether the press was forwarded.
func (r *Router) Press(s game.Symbol) bool {
	i, ok := r.index[s]
	if !ok {
		return false
	}
	k := r.keys[i]
	if !k.Enabled || k.Status.Confirmed() || r.h == nil {
		return false
	}
	r.h.SubmitGuess(s)
	return true
}

// HandleKey is the physical key path. Modifier chords are ignored, Enter
// starts a new round, and single alphanumerics go through Press.
func (r *Router) HandleKey(ev KeyEvent) bool {
	if ev.Mod&(ModCtrl|ModAlt|ModMeta) != 0 {
		return false
	}
	switch ev.Code {
	case CodeEnter:
		if r.h == nil {
			return false
		}
		r.h.StartNewRound()
		return true
	case CodeRune:
		s, ok := game.ParseSymbol(ev.Rune)
		if !ok {
			return false
		}
		return r.Press(s)
	}
	return false
}

// Mark records a confirmed status for s. A key that is already confirmed
// never changes.
func (r *Router) Mark(s game.Symbol, st game.KeyStatus) {
	i, ok := r.index[s]
	if !ok || r.keys[i].Status.Confirmed() {
		return
	}
	r.keys[i].Status = st
}

// Status returns the status of s.
func (r *Router) Status(s game.Symbol) game.KeyStatus {
	if i, ok := r.index[s]; ok {
		return r.keys[i].Status
	}
	return game.StatusUnknown
}

// Confirmed reports whether s already has a final status this round.
func (r *Router) Confirmed(s game.Symbol) bool { return r.Status(s).Confirmed() }

// DisableAll disables every key that is still unknown. Called once when a
// round ends.
func (r *Router) DisableAll() {
	for i := range r.keys {
		if !r.keys[i].Status.Confirmed() {
			r.keys[i].Enabled = false
		}
	}
}

// ResetAll clears every status and re-enables every key. Called once when
// a round starts.
func (r *Router) ResetAll() {
	for i := range r.keys {
		r.keys[i].Status = game.StatusUnknown
		r.keys[i].Enabled = true
	}
}

// Snapshot returns a copy of the keys in keyboard order.
func (r *Router) Snapshot() []Key {
	out := make([]Key, len(r.keys))
	copy(out, r.keys)
	return out
}
