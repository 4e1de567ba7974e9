package httpserver

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/samabhi804-sketch/hangman/internal/history"
	"github.com/samabhi804-sketch/hangman/internal/store"
)

// mountAdmin registers operator routes behind basic auth.
// Without ADMIN_PASSWORD_HASH the routes answer 404.
func (s *Server) mountAdmin() {
	s.r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Get("/sessions", s.handleListSessions)
		r.Delete("/sessions/{id}", s.handleDeleteSession)
		r.Get("/summary", s.handleSummary)
		r.Get("/words", s.handleWordStats)
	})
}

// requireAdmin checks basic auth against the configured user and bcrypt hash.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.AdminPasswordHash == "" {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		user, pw, ok := r.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(s.opts.AdminUser)) != 1 ||
			bcrypt.CompareHashAndPassword([]byte(s.opts.AdminPasswordHash), []byte(pw)) != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="hangman-admin"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids := s.store.List(r.Context())
	_ = json.NewEncoder(w).Encode(map[string]any{"count": len(ids), "ids": ids})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	log.Info().Str("session", id).Msg("session dropped by admin")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	rows := []history.TierSummary{}
	if s.hist != nil {
		got, err := s.hist.Summary(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("history summary")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		rows = append(rows, got...)
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// handleWordStats reports word counts per tier.
func (s *Server) handleWordStats(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.words.Stats())
}
