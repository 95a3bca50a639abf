package keyboard

import (
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

type recorder struct {
	guesses []game.Symbol
	starts  int
}

func (r *recorder) SubmitGuess(s game.Symbol) { r.guesses = append(r.guesses, s) }
func (r *recorder) StartNewRound()            { r.starts++ }

func TestRouter_BothPathsConverge(t *testing.T) {
	rec := &recorder{}
	r := New(rec)

	r.Press('A')
	r.HandleKey(KeyEvent{Code: CodeRune, Rune: 'b'})
	r.HandleKey(KeyEvent{Code: CodeRune, Rune: '7'})

	want := []game.Symbol{'A', 'B', '7'}
	if len(rec.guesses) != len(want) {
		t.Fatalf("guesses %v, want %v", rec.guesses, want)
	}
	for i := range want {
		if rec.guesses[i] != want[i] {
			t.Errorf("guess %d = %q, want %q", i, rec.guesses[i], want[i])
		}
	}
}

func TestRouter_IgnoresChordsAndNonSymbols(t *testing.T) {
	rec := &recorder{}
	r := New(rec)
	r.HandleKey(KeyEvent{Code: CodeRune, Rune: 'a', Mod: ModCtrl})
	r.HandleKey(KeyEvent{Code: CodeRune, Rune: 'a', Mod: ModAlt})
	r.HandleKey(KeyEvent{Code: CodeRune, Rune: 'a', Mod: ModMeta})
	r.HandleKey(KeyEvent{Code: CodeRune, Rune: '!'})
	r.HandleKey(KeyEvent{Code: CodeOther})
	if len(rec.guesses) != 0 {
		t.Errorf("guesses %v, want none", rec.guesses)
	}
}

func TestRouter_EnterStartsRound(t *testing.T) {
	rec := &recorder{}
	r := New(rec)
	r.DisableAll()
	if !r.HandleKey(KeyEvent{Code: CodeEnter}) {
		t.Error("Enter not handled")
	}
	if rec.starts != 1 {
		t.Errorf("starts %d, want 1", rec.starts)
	}
}

func TestRouter_ConfirmedKeysNeverRevert(t *testing.T) {
	rec := &recorder{}
	r := New(rec)
	r.Mark('A', game.StatusCorrect)
	r.Mark('A', game.StatusWrong)
	if r.Status('A') != game.StatusCorrect {
		t.Errorf("status %v, want correct", r.Status('A'))
	}
	if r.Press('A') {
		t.Error("confirmed key should not forward")
	}
	if len(rec.guesses) != 0 {
		t.Errorf("guesses %v", rec.guesses)
	}
}

func TestRouter_DisableAllAndReset(t *testing.T) {
	r := New(&recorder{})
	r.Mark('E', game.StatusCorrect)
	r.Mark('Z', game.StatusWrong)
	r.DisableAll()
	for _, k := range r.Snapshot() {
		wantEnabled := k.Symbol == 'E' || k.Symbol == 'Z'
		if k.Enabled != wantEnabled {
			t.Errorf("key %q enabled %v, want %v", k.Symbol, k.Enabled, wantEnabled)
		}
	}
	r.ResetAll()
	for _, k := range r.Snapshot() {
		if !k.Enabled || k.Status != game.StatusUnknown {
			t.Errorf("key %+v not reset", k)
		}
	}
	if n := len(r.Snapshot()); n != 36 {
		t.Errorf("keys %d, want 36", n)
	}
}
