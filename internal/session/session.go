// internal/session/session.go
//
// Session identity for session-scoped storage.
// Responsibilities:
//   - Issue an HS256 token naming the current session id.
//   - Resume the session from the stored token while it is valid.
//   - Treat an expired, tampered or missing token as "the session ended".
//
// Notes:
//   - The token lives in the preference store; each resume re-issues it with
//     a sliding expiry, so a session lasts until the client has been idle for
//     the configured TTL.
//   - The signing key is derived with HKDF-SHA256 from SESSION_SECRET or, when
//     unset, from a random per-install secret kept next to the token.

package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/hkdf"

	"github.com/robalobadob/hangman/internal/store"
)

const (
	tokenKey  = "session_token"
	secretKey = "install_secret"
	issuer    = "hangman"
	hkdfInfo  = "hangman session token v1"
)

// DefaultTTL is the idle time after which a session ends.
const DefaultTTL = 12 * time.Hour

// Session is the resolved identity of the running client.
type Session struct {
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Fresh     bool // true when the previous session had ended
}

// Manager resumes or starts sessions.
type Manager struct {
	prefs  store.Prefs
	ttl    time.Duration
	secret []byte
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithSecret sets the configured root secret instead of the install secret.
func WithSecret(s string) Option {
	return func(m *Manager) {
		if s != "" {
			m.secret = []byte(s)
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager constructs a Manager over prefs. A non-positive ttl selects
// DefaultTTL.
func NewManager(prefs store.Prefs, ttl time.Duration, opts ...Option) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{prefs: prefs, ttl: ttl, now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Resume returns the current session, starting a fresh one when the stored
// token is missing or no longer valid, and re-issues the token.
func (m *Manager) Resume(ctx context.Context) (Session, error) {
	key, err := m.signingKey(ctx)
	if err != nil {
		return Session{}, err
	}

	now := m.now()
	s := Session{Fresh: true}
	if tok, ok, err := m.prefs.Get(ctx, tokenKey); err != nil {
		return Session{}, fmt.Errorf("read session token: %w", err)
	} else if ok && tok != "" {
		if id, err := m.parse(tok, key); err == nil {
			s.ID, s.Fresh = id, false
		} else {
			log.Debug().Err(err).Msg("session token rejected")
		}
	}
	if s.Fresh {
		s.ID = genID()
	}

	s.IssuedAt = now
	s.ExpiresAt = now.Add(m.ttl)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   s.ID,
		IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}).SignedString(key)
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}
	if err := m.prefs.Set(ctx, tokenKey, signed); err != nil {
		return Session{}, fmt.Errorf("store session token: %w", err)
	}
	return s, nil
}

// End forgets the current session so the next Resume starts a fresh one.
func (m *Manager) End(ctx context.Context) error {
	return m.prefs.Set(ctx, tokenKey, "")
}

func (m *Manager) parse(tok string, key []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims,
		func(*jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("session token without subject")
	}
	return claims.Subject, nil
}

// signingKey derives the HMAC key from the root secret.
func (m *Manager) signingKey(ctx context.Context) ([]byte, error) {
	root := m.secret
	if root == nil {
		v, ok, err := m.prefs.Get(ctx, secretKey)
		if err != nil {
			return nil, fmt.Errorf("read install secret: %w", err)
		}
		if !ok || v == "" {
			var b [32]byte
			if _, err := rand.Read(b[:]); err != nil {
				return nil, fmt.Errorf("generate install secret: %w", err)
			}
			v = base64.RawURLEncoding.EncodeToString(b[:])
			if err := m.prefs.Set(ctx, secretKey, v); err != nil {
				return nil, fmt.Errorf("store install secret: %w", err)
			}
		}
		root = []byte(v)
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return key, nil
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
