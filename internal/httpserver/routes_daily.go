// internal/httpserver/routes_daily.go
//
// HTTP routes for the "word of the day" mode.
//   - GET  /daily     → today's date key and the tiers on offer
//   - POST /daily/new → start today's round for a difficulty
//
// The daily word is a deterministic pick over date + tier + salt, so every
// session gets the same word per tier per UTC day. Daily rounds use the
// session's normal engine and count toward its statistics.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samabhi804-sketch/hangman/internal/daily"
	"github.com/samabhi804-sketch/hangman/internal/game"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// dailyInfoRes is returned by GET /daily.
type dailyInfoRes struct {
	Date         string            `json:"date"`
	Difficulties []game.Difficulty `json:"difficulties"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(dailyInfoRes{
		Date:         daily.DateKey(s.opts.Now()),
		Difficulties: game.Difficulties(),
	})
}

// handleDailyNew starts today's round; body {"difficulty": "..."} is optional.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	req.Daily = true
	s.startRound(w, r, req)
}
