// internal/oracle/types.go
//
// Wire payloads of the word oracle and their conversion into game types.

package oracle

import "github.com/robalobadob/hangman/internal/game"

// NewRoundResponse is the body of POST /api/new-game.
type NewRoundResponse struct {
	DisplayWord    string   `json:"display_word"`
	Hint           string   `json:"hint"`
	Category       string   `json:"category"`
	WrongGuesses   int      `json:"wrong_guesses"`
	MaxWrong       int      `json:"max_wrong"`
	GuessedLetters []string `json:"guessed_letters"`
	GameOver       bool     `json:"game_over"`
	Won            bool     `json:"won"`
	WordLength     int      `json:"word_length"`
	Error          string   `json:"error,omitempty"`
}

// Start converts the payload into a game.RoundStart.
func (r NewRoundResponse) Start() game.RoundStart {
	return game.RoundStart{
		DisplayWord: r.DisplayWord,
		MaxWrong:    r.MaxWrong,
		Hint:        r.Hint,
		Category:    r.Category,
		WordLength:  r.WordLength,
	}
}

// guessReq is the body of POST /api/guess.
type guessReq struct {
	Letter string `json:"letter"`
}

// GuessResponse is the body of POST /api/guess. A non-empty Error means the
// oracle rejected the guess; the other fields are then meaningless.
type GuessResponse struct {
	Error          string   `json:"error,omitempty"`
	Correct        bool     `json:"correct"`
	DisplayWord    string   `json:"display_word"`
	GuessedLetters []string `json:"guessed_letters"`
	WrongGuesses   int      `json:"wrong_guesses"`
	MaxWrong       int      `json:"max_wrong"`
	GameOver       bool     `json:"game_over"`
	Won            bool     `json:"won"`
	Letter         string   `json:"letter,omitempty"`
	Answer         string   `json:"answer,omitempty"` // only when GameOver
	Hint           string   `json:"hint,omitempty"`
	Category       string   `json:"category,omitempty"`
}

// Rejected reports whether the oracle refused the guess.
func (r GuessResponse) Rejected() bool { return r.Error != "" }

// Result converts the payload into a game.GuessResult for symbol s.
func (r GuessResponse) Result(s game.Symbol) game.GuessResult {
	return game.GuessResult{
		Symbol:       s,
		Correct:      r.Correct,
		DisplayWord:  r.DisplayWord,
		Guessed:      r.GuessedLetters,
		WrongGuesses: r.WrongGuesses,
		MaxWrong:     r.MaxWrong,
		Over:         r.GameOver,
		Won:          r.Won,
		Answer:       r.Answer,
	}
}

type categoriesRes struct {
	Categories []string `json:"categories"`
}

type healthRes struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
