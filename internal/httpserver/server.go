// internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request log).
//   - Public endpoints: "/", "/health", "/difficulties".
//   - Game endpoints (per-session): /game/*, /stats, /history, /daily/*.
//   - Admin endpoints (basic auth): /admin/*.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Every game request is bound to one session, and so to one engine.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/samabhi804-sketch/hangman/internal/game"
	"github.com/samabhi804-sketch/hangman/internal/history"
	"github.com/samabhi804-sketch/hangman/internal/store"
	"github.com/samabhi804-sketch/hangman/internal/words"
)

// Options carries the tunables the server needs from config.
type Options struct {
	SessionSecret     string
	SessionTTL        time.Duration
	CookieSecure      bool
	ClientOrigin      string
	DailySalt         string
	AdminUser         string
	AdminPasswordHash string

	// Picker overrides word selection for every new engine (tests).
	Picker game.IndexFunc
	// Now overrides the clock used for daily words (tests).
	Now func() time.Time
}

// Server bundles router, session store, history journal and word lists.
type Server struct {
	r     *chi.Mux
	store store.Store
	hist  *history.Store // nil disables the journal
	words *words.Lists
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, hist *history.Store, lists *words.Lists, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, hist: hist, words: lists, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","/difficulties","POST /game/new","POST /game/guess","/game/state","/stats","/history","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/difficulties", s.handleDifficulties)

	// Game endpoints, one engine per session
	s.r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		s.mountGame(r)
		s.mountDaily(r)
	})

	s.mountAdmin()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router (useful for tests and for http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", sessionHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("reqId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

// handleDifficulties lists the tiers with display names and word counts.
func (s *Server) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	type tier struct {
		ID    game.Difficulty `json:"id"`
		Title string          `json:"title"`
		Words int             `json:"words"`
	}
	stats := s.words.Stats()
	out := make([]tier, 0, len(stats))
	for _, d := range game.Difficulties() {
		out = append(out, tier{ID: d, Title: d.Title(), Words: stats[d]})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// writeError writes {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
