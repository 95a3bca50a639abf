// internal/controller/controller.go
//
// Game state synchronizer.
// Responsibilities:
//   - Own the canonical RoundState and the session scoreboard.
//   - Issue new-round and guess requests to the oracle without blocking the
//     UI loop, and merge the responses on the UI loop.
//   - Drive the keyboard, figure, confetti, message and sound side effects.
//   - Expose a read-only Snapshot for rendering.
//
// Concurrency:
//   - Every exported method and every merge runs on the UI goroutine.
//   - Oracle calls run inside Exec; their results come back through Post.
//   - Overlapping requests are allowed; there is no queueing or cancellation.
//     Responses that arrive after their round was replaced are dropped.

package controller

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/audio"
	"github.com/robalobadob/hangman/internal/confetti"
	"github.com/robalobadob/hangman/internal/display"
	"github.com/robalobadob/hangman/internal/figure"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/keyboard"
	"github.com/robalobadob/hangman/internal/messages"
	"github.com/robalobadob/hangman/internal/oracle"
	"github.com/robalobadob/hangman/internal/score"
	"github.com/robalobadob/hangman/internal/theme"
)

// NoticeKind classifies the message line.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeInfo
	NoticeWin
	NoticeLose
)

// Notice is the single user-visible message line.
type Notice struct {
	Text string
	Kind NoticeKind
}

// Deps are the collaborators of a Controller.
type Deps struct {
	Oracle   oracle.Client
	Board    *score.Board
	Messages *messages.Picker
	Confetti *confetti.Engine
	Theme    *theme.Store
	Sound    audio.Player // optional

	// Exec runs a blocking task off the UI loop. Defaults to a new goroutine.
	Exec func(task func())
	// Post hands a closure back to the UI loop. Defaults to calling it
	// directly, which is only safe together with a synchronous Exec.
	Post func(fn func())
}

// Controller owns the round state and drives every widget from it.
type Controller struct {
	ctx  context.Context
	deps Deps

	round   game.RoundState
	gen     uint64 // incremented on every accepted new round
	started bool

	keys       *keyboard.Router
	figure     *figure.Tracker
	notice     Notice
	categories []string
}

// New wires a controller. ctx bounds every oracle request.
func New(ctx context.Context, d Deps) (*Controller, error) {
	switch {
	case d.Oracle == nil:
		return nil, errors.New("controller: nil oracle")
	case d.Board == nil:
		return nil, errors.New("controller: nil scoreboard")
	case d.Messages == nil:
		return nil, errors.New("controller: nil message picker")
	case d.Confetti == nil:
		return nil, errors.New("controller: nil confetti engine")
	case d.Theme == nil:
		return nil, errors.New("controller: nil theme store")
	}
	if d.Sound == nil {
		d.Sound = audio.Nop{}
	}
	if d.Exec == nil {
		d.Exec = func(task func()) { go task() }
	}
	if d.Post == nil {
		d.Post = func(fn func()) { fn() }
	}
	c := &Controller{ctx: ctx, deps: d, figure: figure.New()}
	c.keys = keyboard.New(c)
	return c, nil
}

// Keyboard returns the input router bound to this controller.
func (c *Controller) Keyboard() *keyboard.Router { return c.keys }

// StartNewRound requests a fresh puzzle. It works in any round state.
func (c *Controller) StartNewRound() {
	ctx := c.ctx
	c.deps.Exec(func() {
		res, err := c.deps.Oracle.NewRound(ctx)
		c.deps.Post(func() { c.applyNewRound(res, err) })
	})
}

func (c *Controller) applyNewRound(res oracle.NewRoundResponse, err error) {
	var st game.RoundState
	if err == nil {
		st, err = game.NewRound(res.Start())
	}
	if err != nil {
		log.Warn().Err(err).Msg("start new round")
		c.notice = Notice{Text: messages.NewRoundFailed, Kind: NoticeInfo}
		return
	}

	c.round = st
	c.gen++
	c.started = true
	c.figure.Reset()
	c.keys.ResetAll()
	c.notice = Notice{}
	c.deps.Confetti.Clear()
	log.Info().
		Str("category", st.Category).
		Int("length", st.WordLength).
		Int("maxWrong", st.MaxWrong).
		Msg("round started")
}

// SubmitGuess sends s to the oracle unless the round is not accepting
// guesses or s is already confirmed.
func (c *Controller) SubmitGuess(s game.Symbol) {
	if !c.round.CanGuess() || c.keys.Confirmed(s) {
		return
	}
	ctx, gen := c.ctx, c.gen
	c.deps.Exec(func() {
		res, err := c.deps.Oracle.Guess(ctx, s)
		c.deps.Post(func() { c.applyGuess(gen, s, res, err) })
	})
}

func (c *Controller) applyGuess(gen uint64, s game.Symbol, res oracle.GuessResponse, err error) {
	switch {
	case err != nil:
		log.Error().Err(err).Str("symbol", s.String()).Msg("submit guess")
		return
	case res.Rejected():
		// Ignored: the router's guards should have prevented it.
		log.Debug().Str("symbol", s.String()).Str("reason", res.Error).Msg("guess rejected")
		return
	case gen != c.gen || !c.round.CanGuess():
		log.Debug().Str("symbol", s.String()).Msg("stale guess response dropped")
		return
	}

	next, out := c.round.Merge(res.Result(s))
	c.round = next
	if out.Correct {
		c.keys.Mark(s, game.StatusCorrect)
		c.deps.Sound.Play(audio.Correct)
	} else {
		c.keys.Mark(s, game.StatusWrong)
		c.figure.RecordWrongGuess(out.Step)
		c.deps.Sound.Play(audio.Wrong)
	}
	log.Debug().
		Str("symbol", s.String()).
		Bool("correct", out.Correct).
		Int("remaining", out.Remaining).
		Msg("guess merged")

	if !out.Finished {
		return
	}
	c.keys.DisableAll()
	if out.Won {
		c.win(out.Answer)
	} else {
		c.lose(out.Answer)
	}
}

func (c *Controller) win(answer string) {
	rec := c.deps.Board.RecordWin(c.ctx)
	c.figure.RenderSuccessFace()
	c.notice = Notice{Text: c.deps.Messages.Win(answer, rec.Streak), Kind: NoticeWin}
	c.deps.Confetti.Launch()
	c.deps.Sound.Play(audio.Win)
	log.Info().Int("wins", rec.Wins).Int("streak", rec.Streak).Msg("round won")
}

func (c *Controller) lose(answer string) {
	rec := c.deps.Board.RecordLoss(c.ctx)
	c.figure.RenderFailureFace()
	c.notice = Notice{Text: c.deps.Messages.Loss(answer), Kind: NoticeLose}
	c.deps.Sound.Play(audio.Loss)
	log.Info().Int("losses", rec.Losses).Msg("round lost")
}

// CheckOracle probes the oracle at start-up. When it is down an info notice
// says so; when it is up its category list is kept for the idle screen.
func (c *Controller) CheckOracle() {
	ctx := c.ctx
	c.deps.Exec(func() {
		err := c.deps.Oracle.Health(ctx)
		var cats []string
		if err == nil {
			var cerr error
			if cats, cerr = c.deps.Oracle.Categories(ctx); cerr != nil {
				log.Debug().Err(cerr).Msg("oracle categories")
			}
		}
		c.deps.Post(func() {
			if err != nil {
				log.Warn().Err(err).Msg("oracle health")
				if !c.started {
					c.notice = Notice{Text: messages.OracleDown, Kind: NoticeInfo}
				}
				return
			}
			c.categories = cats
		})
	})
}

// ToggleHint flips hint visibility. It is purely local.
func (c *Controller) ToggleHint() {
	if !c.started {
		return
	}
	c.round.HintVisible = !c.round.HintVisible
}

// ToggleTheme switches between dark and light and persists the choice.
func (c *Controller) ToggleTheme() {
	t, err := c.deps.Theme.Toggle(c.ctx)
	if err != nil {
		log.Warn().Err(err).Str("theme", string(t)).Msg("save theme")
	}
}

// Resize forwards a viewport change to the particle engine.
func (c *Controller) Resize(w, h float64) { c.deps.Confetti.Resize(w, h) }

// Frame runs one animation tick.
func (c *Controller) Frame() { c.deps.Confetti.Step() }

// Snapshot is everything the UI needs to draw one frame.
type Snapshot struct {
	Started  bool
	Round    game.RoundState
	Word     []display.Token
	Lives    display.LivesView
	Keys     []keyboard.Key
	Figure   figure.Snapshot
	Score    score.Record
	Notice   Notice
	Theme    theme.Theme
	Confetti bool

	// Categories the oracle offers, for the idle screen.
	Categories []string
}

// View projects the current state. It has no side effects.
func (c *Controller) View() Snapshot {
	round := c.round
	round.Guessed = make(map[game.Symbol]struct{}, len(c.round.Guessed))
	for s := range c.round.Guessed {
		round.Guessed[s] = struct{}{}
	}
	return Snapshot{
		Started: c.started,
		Round:   round,
		Word: display.Project(display.Input{
			DisplayWord: round.DisplayWord,
			Over:        round.Over,
			Won:         round.Won,
			Answer:      round.Answer,
			Guessed:     round.Guessed,
		}),
		Lives:    display.Lives(round.LivesRemaining(), round.MaxWrong),
		Keys:     c.keys.Snapshot(),
		Figure:   c.figure.Snapshot(),
		Score:    c.deps.Board.Record(),
		Notice:   c.notice,
		Theme:    c.deps.Theme.Current(),
		Confetti: c.deps.Confetti.Running(),

		Categories: append([]string(nil), c.categories...),
	}
}
