// internal/game/types.go
//
// Core type definitions for one hangman round as seen by the client.
// Defines:
//   - Symbol: one guessable character (A–Z, 0–9).
//   - KeyStatus: per-symbol confirmation state on the keyboard.
//   - RoundState: the authoritative in-memory state of a round.
//   - RoundStart / GuessResult: oracle payloads in transport-neutral form.

package game

// Symbol is a single guessable character, always upper-case ASCII.
type Symbol byte

// Alphabet lists every guessable symbol in keyboard order: letters, then digits.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Symbols returns the 36 symbols of Alphabet.
func Symbols() []Symbol {
	out := make([]Symbol, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		out[i] = Symbol(Alphabet[i])
	}
	return out
}

// ParseSymbol normalises r to upper case and reports whether it is a
// guessable symbol.
func ParseSymbol(r rune) (Symbol, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Symbol(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return Symbol(r), true
	}
	return 0, false
}

// String returns the symbol as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// KeyStatus is the confirmed outcome of a symbol within a round.
type KeyStatus int

const (
	StatusUnknown KeyStatus = iota
	StatusCorrect
	StatusWrong
)

func (k KeyStatus) String() string {
	switch k {
	case StatusCorrect:
		return "correct"
	case StatusWrong:
		return "wrong"
	}
	return "unknown"
}

// Confirmed reports whether the status is final for the round.
func (k KeyStatus) Confirmed() bool { return k != StatusUnknown }

// RoundState holds the state of a single puzzle attempt.
//
// Invariants (maintained by NewRound and Merge):
//   - 0 <= WrongGuesses <= MaxWrong
//   - Won implies Over
//   - Answer is empty until Over
type RoundState struct {
	Active       bool                // guesses are accepted
	DisplayWord  string              // oracle's partial reveal, e.g. "_ _ A _"
	Guessed      map[Symbol]struct{} // every symbol submitted this round
	WrongGuesses int
	MaxWrong     int
	Over         bool
	Won          bool
	HintVisible  bool // local UI toggle, never sent to the oracle
	Hint         string
	Category     string
	WordLength   int
	Answer       string // full answer, only once Over
}

// RoundStart is the oracle's payload for a freshly selected puzzle.
type RoundStart struct {
	DisplayWord string
	MaxWrong    int
	Hint        string
	Category    string
	WordLength  int
}

// GuessResult is the oracle's evaluation of one submitted symbol.
type GuessResult struct {
	Symbol       Symbol
	Correct      bool
	DisplayWord  string
	Guessed      []string
	WrongGuesses int
	MaxWrong     int
	Over         bool
	Won          bool
	Answer       string
}
