// internal/oracletest/server.go
//
// Scripted fake of the word oracle for tests.
// Responsibilities:
//   - Router + middleware (JSON content type, panic recovery, request IDs).
//   - Endpoints: POST /api/new-game, POST /api/guess, GET /api/categories, GET /health.
//   - Per-client rounds keyed by a session cookie, like the real oracle.
//   - Request counting and failure injection for client tests.
//
// Notes:
//   - Words are served in order (cycling) so tests know the answer.
//   - Guess rules: 6 wrong guesses, one character A–Z/0–9, no repeats,
//     no guesses after the round is over. Violations answer 400 {"error"}.

package oracletest

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// MaxWrong is the wrong-guess allowance of every round.
const MaxWrong = 6

const cookieName = "session"

// Word is one puzzle.
type Word struct {
	Word     string
	Hint     string
	Category string
}

// Server is an in-process oracle.
type Server struct {
	r *chi.Mux

	mu       sync.Mutex        // guards everything below
	words    []Word            // served in order
	next     int               // index of the next word
	rounds   map[string]*round // keyed by session cookie
	requests map[string]int    // path -> count
	faults   map[string]int    // path -> status to answer once
}

// round is the server-side state of one puzzle.
type round struct {
	word         string
	hint         string
	category     string
	guessed      []string
	wrongGuesses int
	over         bool
	won          bool
}

// New constructs a Server over words.
func New(words ...Word) *Server {
	if len(words) == 0 {
		words = []Word{{Word: "GOPHER", Hint: "mascot", Category: "Go"}}
	}
	s := &Server{
		r:        chi.NewRouter(),
		words:    words,
		rounds:   make(map[string]*round),
		requests: make(map[string]int),
		faults:   make(map[string]int),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(jsonContentType)
	s.r.Use(s.count)

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "service": "hangman-game"})
	})

	// --- game ---
	s.r.Post("/api/new-game", s.handleNewGame)
	s.r.Post("/api/guess", s.handleGuess)
	s.r.Get("/api/categories", s.handleCategories)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Router exposes the handler.
func (s *Server) Router() http.Handler { return s.r }

// Start serves the router on a loopback httptest server.
func (s *Server) Start() *httptest.Server { return httptest.NewServer(s.r) }

// Requests returns how many requests hit path.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

// FailNext makes the next request to path answer status with a non-JSON body.
func (s *Server) FailNext(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[path] = status
}

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// count records the request and applies any injected fault.
func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		status, fault := s.faults[r.URL.Path]
		delete(s.faults, r.URL.Path)
		s.mu.Unlock()

		if fault {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(status)
			_, _ = w.Write([]byte("<html>upstream error</html>"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sid := ensureSession(w, r)

	s.mu.Lock()
	wd := s.words[s.next%len(s.words)]
	s.next++
	g := &round{word: strings.ToUpper(wd.Word), hint: wd.Hint, category: wd.Category, guessed: []string{}}
	s.rounds[sid] = g
	body := map[string]any{
		"display_word":    displayWord(g.word, g.guessed),
		"hint":            g.hint,
		"category":        g.category,
		"wrong_guesses":   0,
		"max_wrong":       MaxWrong,
		"guessed_letters": []string{},
		"game_over":       false,
		"won":             false,
		"word_length":     len(g.word),
	}
	s.mu.Unlock()

	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sid := ensureSession(w, r)

	var req struct {
		Letter string `json:"letter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.rounds[sid]
	switch {
	case g == nil:
		writeError(w, http.StatusBadRequest, "No active game. Start a new game.")
		return
	case g.over:
		writeError(w, http.StatusBadRequest, "Game is already over. Start a new game.")
		return
	}

	letter := strings.ToUpper(strings.TrimSpace(req.Letter))
	if len(letter) != 1 || !isSymbol(letter[0]) {
		writeError(w, http.StatusBadRequest, "Invalid input. Please guess a letter or number.")
		return
	}
	for _, l := range g.guessed {
		if l == letter {
			writeError(w, http.StatusBadRequest, "You already guessed '"+letter+"'. Try another.")
			return
		}
	}

	g.guessed = append(g.guessed, letter)
	correct := strings.Contains(g.word, letter)
	if !correct {
		g.wrongGuesses++
	}
	if allGuessed(g.word, g.guessed) {
		g.over, g.won = true, true
	}
	if g.wrongGuesses >= MaxWrong {
		g.over, g.won = true, false
	}

	body := map[string]any{
		"display_word":    displayWord(g.word, g.guessed),
		"hint":            g.hint,
		"category":        g.category,
		"wrong_guesses":   g.wrongGuesses,
		"max_wrong":       MaxWrong,
		"guessed_letters": append([]string(nil), g.guessed...),
		"correct":         correct,
		"game_over":       g.over,
		"won":             g.won,
		"letter":          letter,
	}
	if g.over {
		body["answer"] = g.word
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	set := map[string]struct{}{}
	for _, wd := range s.words {
		set[wd.Category] = struct{}{}
	}
	s.mu.Unlock()

	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	_ = json.NewEncoder(w).Encode(map[string][]string{"categories": out})
}

// ------------------------------ helpers ------------------------------------

// displayWord hides every unguessed letter, joining glyphs with spaces.
func displayWord(word string, guessed []string) string {
	parts := make([]string, 0, len(word))
	for _, c := range word {
		l := string(c)
		switch {
		case l == " " || contains(guessed, l):
			parts = append(parts, l)
		default:
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

func allGuessed(word string, guessed []string) bool {
	for _, c := range word {
		if c != ' ' && !contains(guessed, string(c)) {
			return false
		}
	}
	return true
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func isSymbol(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// ensureSession returns the session cookie, setting a new one if missing.
func ensureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	var b [16]byte
	_, _ = rand.Read(b[:])
	id := base64.RawURLEncoding.EncodeToString(b[:])
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: id, Path: "/", HttpOnly: true})
	return id
}
