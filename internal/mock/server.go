// Package mock serves a local stand-in for the joke API.
package mock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Joke is one entry of the mock corpus.
type Joke struct {
	Value      string
	Categories []string
}

// DefaultJokes is the built-in corpus.
var DefaultJokes = []Joke{
	{Value: "Chuck Norris counted to infinity twice."},
	{Value: "Chuck Norris can divide by zero."},
	{Value: "Chuck Norris doesn't read books. He stares them down until he gets the information he wants."},
	{Value: "Chuck Norris's keyboard doesn't have a Ctrl key because nothing controls Chuck Norris.", Categories: []string{"dev"}},
	{Value: "Chuck Norris writes code that optimizes itself.", Categories: []string{"dev"}},
	{Value: "Chuck Norris can unit test an entire application with a single assert.", Categories: []string{"dev"}},
	{Value: "Chuck Norris eats steak for every meal. Most times he forgets to kill the cow.", Categories: []string{"food"}},
	{Value: "Chuck Norris can make onions cry.", Categories: []string{"food"}},
	{Value: "Chuck Norris once kicked a horse in the chin. Its descendants are known today as giraffes.", Categories: []string{"animal"}},
	{Value: "Chuck Norris was the first man to win a staring contest against the sun.", Categories: []string{"science"}},
	{Value: "The dinosaurs looked at Chuck Norris the wrong way once.", Categories: []string{"history"}},
	{Value: "Chuck Norris doesn't wear a watch. He decides what time it is.", Categories: []string{"fashion"}},
}

// Server is a mock joke API.
type Server struct {
	jokes      []storedJoke
	categories []string

	port       int
	latency    time.Duration
	errorRate  float64
	corsOrigin string
	logger     *zap.Logger
}

type storedJoke struct {
	ID         string   `json:"id"`
	Value      string   `json:"value"`
	URL        string   `json:"url"`
	IconURL    string   `json:"icon_url"`
	Categories []string `json:"categories"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// Option configures a Server.
type Option func(*Server)

// WithPort sets the listen port. Zero picks a free port.
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithLatency delays every response.
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

// WithErrorRate makes a fraction of requests fail with 500. The rate is
// clamped to [0, 1].
func WithErrorRate(rate float64) Option {
	return func(s *Server) {
		s.errorRate = min(max(rate, 0), 1)
	}
}

// WithCORSOrigin sets the Access-Control-Allow-Origin value.
func WithCORSOrigin(origin string) Option {
	return func(s *Server) { s.corsOrigin = origin }
}

// WithJokes replaces the built-in corpus.
func WithJokes(jokes []Joke) Option {
	return func(s *Server) { s.setJokes(jokes) }
}

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a mock server.
func New(opts ...Option) *Server {
	s := &Server{
		port:       8080,
		corsOrigin: "*",
		logger:     zap.NewNop(),
	}
	s.setJokes(DefaultJokes)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) setJokes(jokes []Joke) {
	now := time.Now().UTC().Format("2006-01-02 15:04:05.000000")
	s.jokes = make([]storedJoke, 0, len(jokes))
	seen := map[string]bool{}
	s.categories = nil
	for _, j := range jokes {
		id := strings.ReplaceAll(uuid.New().String(), "-", "")[:22]
		cats := append([]string{}, j.Categories...)
		s.jokes = append(s.jokes, storedJoke{
			ID:         id,
			Value:      j.Value,
			URL:        "https://api.chucknorris.io/jokes/" + id,
			IconURL:    "https://api.chucknorris.io/img/avatar/chuck-norris.png",
			Categories: cats,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		for _, c := range cats {
			if !seen[c] {
				seen[c] = true
				s.categories = append(s.categories, c)
			}
		}
	}
}

// Port returns the configured port.
func (s *Server) Port() int { return s.port }

// Categories returns the categories in first-seen corpus order.
func (s *Server) Categories() []string {
	return append([]string{}, s.categories...)
}

// Routes lists the served endpoints.
func (s *Server) Routes() []string {
	return []string{
		"GET /jokes/random",
		"GET /jokes/random?category={category}",
		"GET /jokes/search?query={query}",
		"GET /jokes/categories",
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jokes/random", s.handleRandom)
	mux.HandleFunc("GET /jokes/search", s.handleSearch)
	mux.HandleFunc("GET /jokes/categories", s.handleCategories)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, "No route for "+r.Method+" "+r.URL.Path)
	})
	return s.middleware(mux)
}

// Start listens until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(s.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock joke API listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if s.latency > 0 {
			select {
			case <-time.After(s.latency):
			case <-r.Context().Done():
				return
			}
		}

		if s.errorRate > 0 && rand.Float64() < s.errorRate {
			s.logger.Debug("injected error", zap.String("path", r.URL.Path))
			s.writeError(w, http.StatusInternalServerError, "Injected failure")
			return
		}

		s.logger.Debug("request", zap.String("method", r.Method), zap.String("uri", r.URL.RequestURI()))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	pool := s.jokes
	if r.URL.Query().Has("category") {
		category := r.URL.Query().Get("category")
		pool = s.byCategory(category)
		if len(pool) == 0 {
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("No jokes for category \"%s\" found.", category))
			return
		}
	}
	if len(pool) == 0 {
		s.writeError(w, http.StatusNotFound, "No jokes available")
		return
	}
	writeJSON(w, http.StatusOK, pool[rand.IntN(len(pool))])
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if len(query) < 3 || len(query) > 120 {
		s.writeError(w, http.StatusBadRequest, "search.query: size must be between 3 and 120")
		return
	}

	needle := strings.ToLower(query)
	result := []storedJoke{}
	for _, j := range s.jokes {
		if strings.Contains(strings.ToLower(j.Value), needle) {
			result = append(result, j)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":  len(result),
		"result": result,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Categories())
}

func (s *Server) byCategory(category string) []storedJoke {
	var out []storedJoke
	for _, j := range s.jokes {
		for _, c := range j.Categories {
			if c == category {
				out = append(out, j)
				break
			}
		}
	}
	return out
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    status,
		"error":     http.StatusText(status),
		"message":   message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
