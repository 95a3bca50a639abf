// Package theme keeps the dark/light preference across sessions.
package theme

import (
	"context"

	"github.com/rs/zerolog/log"
	dark "github.com/thiagokokada/dark-mode-go"

	"github.com/robalobadob/hangman/internal/store"
)

// Theme is the colour scheme name persisted in preferences.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

const prefKey = "theme"

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Icon is the glyph shown in the header.
func (t Theme) Icon() string {
	if t == Light {
		return "☀"
	}
	return "☾"
}

// Detector reports whether the OS prefers a dark scheme.
type Detector func() (bool, error)

// SystemDetector asks the operating system.
func SystemDetector() (bool, error) { return dark.IsDarkMode() }

// Store holds the current theme and writes every change back.
type Store struct {
	prefs   store.Prefs
	current Theme
}

// Load reads the saved theme once. Without a saved value the detector
// decides; any failure falls back to Dark.
func Load(ctx context.Context, prefs store.Prefs, detect Detector) *Store {
	s := &Store{prefs: prefs, current: Dark}
	v, ok, err := prefs.Get(ctx, prefKey)
	if err != nil {
		log.Warn().Err(err).Msg("load theme")
	}
	switch Theme(v) {
	case Dark, Light:
		if ok {
			s.current = Theme(v)
			return s
		}
	}
	if detect != nil {
		if isDark, err := detect(); err == nil && !isDark {
			s.current = Light
		} else if err != nil {
			log.Debug().Err(err).Msg("detect dark mode")
		}
	}
	return s
}

// Current returns the active theme.
func (s *Store) Current() Theme { return s.current }

// Toggle switches theme and persists it. The switch stands even when the
// write fails.
func (s *Store) Toggle(ctx context.Context) (Theme, error) {
	s.current = s.current.Toggle()
	return s.current, s.prefs.Set(ctx, prefKey, string(s.current))
}
