// internal/oracle/client.go
//
// HTTP client for the word oracle.
// Endpoints:
//   - POST /api/new-game     → NewRoundResponse
//   - POST /api/guess        → GuessResponse (400 + {"error"} = rejected guess)
//   - GET  /api/categories   → category labels
//   - GET  /health           → liveness
//
// The oracle keys the current round to a session cookie, so the client keeps
// a cookie jar for its lifetime.

package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

var (
	// ErrTransport wraps network failures: dial, timeout, interrupted body.
	ErrTransport = errors.New("oracle transport")
	// ErrProtocol wraps responses that do not follow the wire format.
	ErrProtocol = errors.New("oracle protocol")
)

// maxBody bounds how much of a response is read.
const maxBody = 1 << 20

// Client is the oracle as seen by the game.
type Client interface {
	NewRound(ctx context.Context) (NewRoundResponse, error)
	Guess(ctx context.Context, s game.Symbol) (GuessResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Health(ctx context.Context) error
}

// HTTP is the net/http implementation of Client.
type HTTP struct {
	base *url.URL
	hc   *http.Client
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTP) { c.hc.Timeout = d }
}

// WithHTTPClient replaces the underlying client. A missing jar is added.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTP) { c.hc = hc }
}

// NewHTTP builds a client for the oracle at baseURL.
func NewHTTP(baseURL string, opts ...Option) (*HTTP, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("oracle url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("oracle url: unsupported scheme %q", u.Scheme)
	}
	c := &HTTP{base: u, hc: &http.Client{Timeout: 10 * time.Second}}
	for _, o := range opts {
		o(c)
	}
	if c.hc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.hc.Jar = jar
	}
	return c, nil
}

// NewRound asks the oracle for a fresh puzzle.
func (c *HTTP) NewRound(ctx context.Context) (NewRoundResponse, error) {
	var res NewRoundResponse
	status, err := c.do(ctx, http.MethodPost, "/api/new-game", nil, &res)
	if err != nil {
		return NewRoundResponse{}, err
	}
	if status != http.StatusOK || res.Error != "" {
		return NewRoundResponse{}, fmt.Errorf("%w: new round: status %d %s", ErrProtocol, status, res.Error)
	}
	if res.MaxWrong <= 0 {
		return NewRoundResponse{}, fmt.Errorf("%w: new round: max_wrong %d", ErrProtocol, res.MaxWrong)
	}
	return res, nil
}

// Guess submits one symbol. A rejection by the oracle is returned as a
// response with Error set and a nil error.
func (c *HTTP) Guess(ctx context.Context, s game.Symbol) (GuessResponse, error) {
	var res GuessResponse
	status, err := c.do(ctx, http.MethodPost, "/api/guess", guessReq{Letter: s.String()}, &res)
	if err != nil {
		return GuessResponse{}, err
	}
	switch {
	case res.Rejected():
		return res, nil
	case status != http.StatusOK:
		return GuessResponse{}, fmt.Errorf("%w: guess: status %d", ErrProtocol, status)
	}
	return res, nil
}

// Categories lists the oracle's category labels.
func (c *HTTP) Categories(ctx context.Context) ([]string, error) {
	var res categoriesRes
	status, err := c.do(ctx, http.MethodGet, "/api/categories", nil, &res)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: categories: status %d", ErrProtocol, status)
	}
	return res.Categories, nil
}

// Health checks that the oracle is up.
func (c *HTTP) Health(ctx context.Context) error {
	var res healthRes
	status, err := c.do(ctx, http.MethodGet, "/health", nil, &res)
	if err != nil {
		return err
	}
	if status != http.StatusOK || res.Status != "healthy" {
		return fmt.Errorf("%w: health: status %d %q", ErrProtocol, status, res.Status)
	}
	return nil
}

// do sends one JSON request and decodes the JSON response into out,
// whatever the status code.
func (c *HTTP) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reqBody)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read %s: %w", ErrTransport, path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode %s (status %d): %w", ErrProtocol, path, resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}
