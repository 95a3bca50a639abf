// internal/game/engine.go
//
// Pure state transitions for a round.
// Responsibilities:
//   - Build a fresh RoundState from a new-round payload.
//   - Merge a guess evaluation into an existing state.
//   - Report what changed (Outcome) so the caller can drive side effects.
//
// Nothing here performs I/O; the controller owns requests and rendering.
package game

import (
	"errors"
	"fmt"
)

// ErrInvalidRound is returned when a new-round payload violates the data model.
var ErrInvalidRound = errors.New("invalid round payload")

// Outcome summarises the effect of one merged guess.
type Outcome struct {
	Symbol    Symbol
	Correct   bool
	Step      int // figure step to reveal (WrongGuesses-1), -1 on a correct guess
	Remaining int // lives left after the guess
	Finished  bool
	Won       bool
	Answer    string
}

// NewRound replaces any previous state with a fresh, active round.
// The guessed set starts empty and the hint starts hidden.
func NewRound(s RoundStart) (RoundState, error) {
	if s.MaxWrong <= 0 {
		return RoundState{}, fmt.Errorf("%w: max wrong %d", ErrInvalidRound, s.MaxWrong)
	}
	return RoundState{
		Active:      true,
		DisplayWord: s.DisplayWord,
		Guessed:     map[Symbol]struct{}{},
		MaxWrong:    s.MaxWrong,
		Hint:        s.Hint,
		Category:    s.Category,
		WordLength:  s.WordLength,
	}, nil
}

// CanGuess reports whether the round currently accepts guesses.
func (st RoundState) CanGuess() bool { return st.Active && !st.Over }

// HasGuessed reports whether s is in the guessed set.
func (st RoundState) HasGuessed(s Symbol) bool {
	_, ok := st.Guessed[s]
	return ok
}

// LivesRemaining is MaxWrong - WrongGuesses.
func (st RoundState) LivesRemaining() int { return st.MaxWrong - st.WrongGuesses }

// Merge overwrites the oracle-owned fields of st with r and returns the new
// state. st itself is not modified. Oracle data is normalised so the
// RoundState invariants hold even for an inconsistent payload.
func (st RoundState) Merge(r GuessResult) (RoundState, Outcome) {
	next := st
	next.DisplayWord = r.DisplayWord
	next.Guessed = make(map[Symbol]struct{}, len(r.Guessed))
	for _, g := range r.Guessed {
		for _, c := range g {
			if s, ok := ParseSymbol(c); ok {
				next.Guessed[s] = struct{}{}
			}
		}
	}
	if r.MaxWrong > 0 {
		next.MaxWrong = r.MaxWrong
	}
	next.WrongGuesses = clamp(r.WrongGuesses, 0, next.MaxWrong)
	next.Over = r.Over
	next.Won = r.Won && r.Over
	if next.Over {
		next.Active = false
		next.Answer = r.Answer
	}

	out := Outcome{
		Symbol:    r.Symbol,
		Correct:   r.Correct,
		Step:      -1,
		Remaining: next.LivesRemaining(),
		Finished:  next.Over,
		Won:       next.Won,
		Answer:    next.Answer,
	}
	if !r.Correct {
		out.Step = next.WrongGuesses - 1
	}
	return next, out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
