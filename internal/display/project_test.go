package display

import (
	"reflect"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestProject_SingleWord(t *testing.T) {
	toks := Project(Input{DisplayWord: "_ _ A _"})
	want := []Kind{Slot, Slot, Letter, Slot}
	if got := kinds(toks); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds %v, want %v", got, want)
	}
	if toks[2].Glyph != 'A' || toks[2].Style != StyleRevealed {
		t.Errorf("token 2 %+v, want revealed A", toks[2])
	}
}

func TestProject_TwoWords(t *testing.T) {
	cases := map[string][]Kind{
		"C _ / _ T":   {Letter, Slot, Separator, Slot, Letter},
		"C _   _ T":   {Letter, Slot, Separator, Slot, Letter},
		"_ _   _   _": {Slot, Slot, Separator, Slot, Separator, Slot},
		" _ _":        {Slot, Slot},
		"_     _":     {Slot, Separator, Slot},
	}
	for in, want := range cases {
		if got := kinds(Project(Input{DisplayWord: in})); !reflect.DeepEqual(got, want) {
			t.Errorf("Project(%q) kinds %v, want %v", in, got, want)
		}
	}
}

func TestProject_Deterministic(t *testing.T) {
	in := Input{DisplayWord: "A _ B", Guessed: map[game.Symbol]struct{}{'A': {}}}
	if !reflect.DeepEqual(Project(in), Project(in)) {
		t.Error("Project not deterministic")
	}
}

func TestProject_AnswerHiddenUntilOver(t *testing.T) {
	toks := Project(Input{DisplayWord: "_ _", Answer: "NO"})
	for _, tok := range toks {
		if tok.Kind == Letter {
			t.Fatalf("answer leaked before round end: %+v", toks)
		}
	}
}

func TestProject_LossProvenance(t *testing.T) {
	toks := Project(Input{
		DisplayWord: "G _   _ _",
		Over:        true,
		Answer:      "GO UP",
		Guessed:     map[game.Symbol]struct{}{'G': {}, 'X': {}},
	})
	want := []Token{
		{Kind: Letter, Glyph: 'G', Style: StylePlayed},
		{Kind: Letter, Glyph: 'O', Style: StyleLoss},
		{Kind: Separator},
		{Kind: Letter, Glyph: 'U', Style: StyleLoss},
		{Kind: Letter, Glyph: 'P', Style: StyleLoss},
	}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("tokens %+v, want %+v", toks, want)
	}
}

func TestProject_WonReveal(t *testing.T) {
	toks := Project(Input{Over: true, Won: true, Answer: "LEO"})
	for _, tok := range toks {
		if tok.Style != StyleWon {
			t.Errorf("token %+v, want won style", tok)
		}
	}
	if len(toks) != 3 {
		t.Errorf("len %d, want 3", len(toks))
	}
}

func TestLives(t *testing.T) {
	cases := []struct {
		remaining, max int
		want           LivesView
	}{
		{6, 6, LivesView{Filled: 6, Empty: 0, Remaining: 6, Band: BandNormal, Text: "6 lives"}},
		{3, 6, LivesView{Filled: 3, Empty: 3, Remaining: 3, Band: BandNormal, Text: "3 lives"}},
		{2, 6, LivesView{Filled: 2, Empty: 4, Remaining: 2, Band: BandDanger, Text: "2 lives"}},
		{1, 6, LivesView{Filled: 1, Empty: 5, Remaining: 1, Band: BandDanger, Text: "1 life"}},
		{0, 6, LivesView{Filled: 0, Empty: 6, Remaining: 0, Band: BandDead, Text: "No lives"}},
		{-1, 6, LivesView{Filled: 0, Empty: 6, Remaining: -1, Band: BandDead, Text: "No lives"}},
	}
	for _, c := range cases {
		if got := Lives(c.remaining, c.max); got != c.want {
			t.Errorf("Lives(%d,%d) = %+v, want %+v", c.remaining, c.max, got, c.want)
		}
	}
}
