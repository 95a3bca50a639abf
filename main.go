package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/audio"
	"github.com/robalobadob/hangman/internal/confetti"
	"github.com/robalobadob/hangman/internal/controller"
	"github.com/robalobadob/hangman/internal/messages"
	"github.com/robalobadob/hangman/internal/oracle"
	"github.com/robalobadob/hangman/internal/score"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/theme"
	"github.com/robalobadob/hangman/internal/ui"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("hangman exited")
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging sends the global logger to cfg.LogFile, since the terminal
// belongs to the UI.
func setupLogging(cfg Config) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() {}, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}

func run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	prefs := store.NewPrefs(db)
	sess, err := session.NewManager(prefs, cfg.SessionTTL, session.WithSecret(cfg.SessionSecret)).Resume(ctx)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	scores := store.NewScores(db, sess.ID)
	if sess.Fresh {
		n, err := scores.PurgeOtherSessions(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("purge old scores")
		}
		log.Info().Str("session", sess.ID).Int64("purged", n).Time("expires", sess.ExpiresAt).Msg("session started")
	} else {
		log.Info().Str("session", sess.ID).Time("expires", sess.ExpiresAt).Msg("session resumed")
	}

	cat, err := messages.Load(cfg.WinMessages, cfg.LossMessages)
	if err != nil {
		log.Warn().Err(err).Msg("load message templates, using defaults")
		cat = messages.Default()
	}

	orc, err := oracle.NewHTTP(cfg.OracleURL, oracle.WithTimeout(cfg.OracleTimeout))
	if err != nil {
		return fmt.Errorf("oracle client: %w", err)
	}

	var sound audio.Player = audio.Nop{}
	if cfg.Sound {
		sp, err := audio.NewSpeaker()
		if err != nil {
			// Non-fatal, the game runs without sound
			log.Warn().Err(err).Msg("audio initialization failed")
		} else {
			defer sp.Close()
			sound = sp
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	rng := newRNG(cfg.Seed)
	app := ui.New(screen, cfg.FPS)
	ctrl, err := controller.New(ctx, controller.Deps{
		Oracle:   orc,
		Board:    score.Open(ctx, scores),
		Messages: messages.NewPicker(cat, rng),
		Confetti: confetti.New(app.Surface(), rng, confetti.DefaultParams()),
		Theme:    theme.Load(ctx, prefs, theme.SystemDetector),
		Sound:    sound,
		Post:     app.Post,
	})
	if err != nil {
		return err
	}
	app.Attach(ctrl)
	ctrl.CheckOracle()

	log.Info().Str("oracle", cfg.OracleURL).Int("fps", cfg.FPS).Msg("starting hangman")
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newRNG seeds the shared random source. Seed 0 picks one from the clock.
func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("random source")
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
