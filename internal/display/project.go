// Package display turns round state into visual tokens. Everything here is
// a pure function of its inputs so it can be tested without a screen.
package display

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/robalobadob/hangman/internal/game"
)

// Kind is the shape of a token in the word display.
type Kind int

const (
	Slot      Kind = iota // unrevealed position
	Letter                // visible glyph
	Separator             // gap between words
)

// Style tells the renderer where a visible letter came from.
type Style int

const (
	StyleNone     Style = iota
	StyleRevealed       // revealed by the oracle during play
	StyleWon            // end of a won round
	StylePlayed         // end of a lost round, symbol was guessed
	StyleLoss           // end of a lost round, symbol was never guessed
)

// Token is one cell group of the word display.
type Token struct {
	Kind  Kind
	Glyph rune
	Style Style
}

// Input is everything Project looks at.
type Input struct {
	DisplayWord string
	Over        bool
	Won         bool
	Answer      string
	Guessed     map[game.Symbol]struct{}
}

// Blank is the oracle's placeholder for an unrevealed glyph.
const Blank = "_"

// wordBreak is accepted as an explicit separator segment.
const wordBreak = "/"

// Project maps round state to the word display. The answer is only used
// once the round is over; before that only the oracle's partial reveal is
// shown.
func Project(in Input) []Token {
	if in.Over && in.Answer != "" {
		return projectAnswer(in)
	}
	return projectDisplay(in.DisplayWord)
}

func projectDisplay(word string) []Token {
	var out []Token
	for i, seg := range strings.Split(word, " ") {
		switch {
		case seg == "" && i == 0:
			continue
		case seg == "" || seg == wordBreak:
			out = appendSeparator(out)
		case seg == Blank:
			out = append(out, Token{Kind: Slot})
		default:
			for _, r := range seg {
				out = append(out, Token{Kind: Letter, Glyph: r, Style: StyleRevealed})
			}
		}
	}
	return out
}

func projectAnswer(in Input) []Token {
	out := make([]Token, 0, len(in.Answer))
	for _, r := range in.Answer {
		if unicode.IsSpace(r) {
			out = appendSeparator(out)
			continue
		}
		tok := Token{Kind: Letter, Glyph: unicode.ToUpper(r)}
		switch {
		case in.Won:
			tok.Style = StyleWon
		case guessed(in.Guessed, r):
			tok.Style = StylePlayed
		default:
			tok.Style = StyleLoss
		}
		out = append(out, tok)
	}
	return out
}

// appendSeparator collapses runs of separators into one. A run of empty
// segments in the display word therefore yields a single gap rather than one
// gap per segment, and a leading empty segment is skipped in projectDisplay.
func appendSeparator(out []Token) []Token {
	if len(out) > 0 && out[len(out)-1].Kind == Separator {
		return out
	}
	return append(out, Token{Kind: Separator})
}

func guessed(set map[game.Symbol]struct{}, r rune) bool {
	s, ok := game.ParseSymbol(r)
	if !ok {
		return false
	}
	_, ok = set[s]
	return ok
}

// Band is the colour band of the lives counter.
type Band int

const (
	BandNormal Band = iota
	BandDanger      // two or fewer lives
	BandDead        // no lives
)

// LivesView is the projection of the remaining-lives counter.
type LivesView struct {
	Filled    int
	Empty     int
	Remaining int
	Band      Band
	Text      string
}

// Lives projects remaining out of max lives.
func Lives(remaining, max int) LivesView {
	filled := remaining
	if filled < 0 {
		filled = 0
	}
	empty := max - filled
	if empty < 0 {
		empty = 0
	}
	v := LivesView{Filled: filled, Empty: empty, Remaining: remaining}
	switch {
	case remaining <= 0:
		v.Band, v.Text = BandDead, "No lives"
	case remaining == 1:
		v.Band, v.Text = BandDanger, "1 life"
	case remaining <= 2:
		v.Band, v.Text = BandDanger, fmt.Sprintf("%d lives", remaining)
	default:
		v.Band, v.Text = BandNormal, fmt.Sprintf("%d lives", remaining)
	}
	return v
}
