// internal/httpserver/routes_game.go
//
// HTTP routes that drive a session's engine:
//   - POST /game/new   → start a round (difficulty optional: replays the last one)
//   - POST /game/guess → guess one letter
//   - GET  /game/state → current round
//   - GET  /stats      → wins / losses / streak
//   - GET  /history    → this session's finished rounds
//
// Finished rounds are journaled to history on a best-effort basis.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/samabhi804-sketch/hangman/internal/daily"
	"github.com/samabhi804-sketch/hangman/internal/game"
	"github.com/samabhi804-sketch/hangman/internal/history"
	"github.com/samabhi804-sketch/hangman/internal/store"
)

func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/guess", s.handleGuess)
	r.Get("/game/state", s.handleState)
	r.Get("/stats", s.handleStats)
	r.Get("/history", s.handleHistory)
}

// newGameReq is the payload for POST /game/new.
type newGameReq struct {
	Difficulty string `json:"difficulty"` // empty → last difficulty
	Daily      bool   `json:"daily"`      // word of the day
}

// stateRes is returned by /game/new and /game/state.
type stateRes struct {
	Round game.RoundView  `json:"round"`
	Stats game.Statistics `json:"stats"`
	Daily bool            `json:"daily"`
	Date  string          `json:"date,omitempty"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.startRound(w, r, req)
}

// startRound is shared by /game/new and /daily/new.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, req newGameReq) {
	sess := sessionFrom(r.Context())
	var res stateRes
	err := sess.Do(func(e *game.Engine) error {
		d := e.Difficulty()
		if req.Difficulty != "" {
			var err error
			if d, err = game.ParseDifficulty(req.Difficulty); err != nil {
				return err
			}
		}

		var (
			v   game.RoundView
			err error
		)
		if req.Daily {
			now := s.opts.Now()
			v, err = e.StartRoundWith(d, daily.Picker(now, s.opts.DailySalt, d))
			res.Date = daily.DateKey(now)
		} else {
			v, err = e.StartRound(d)
		}
		if err != nil {
			return err
		}
		sess.SetDaily(req.Daily)
		res.Round, res.Stats, res.Daily = v, e.Statistics(), req.Daily
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	log.Debug().Str("session", sess.ID).Str("difficulty", string(res.Round.Difficulty)).Bool("daily", res.Daily).Msg("round started")
	_ = json.NewEncoder(w).Encode(res)
}

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	Letter string `json:"letter"`
}

// guessRes is returned by POST /game/guess.
type guessRes struct {
	Result  game.GuessResult `json:"result"`
	Round   game.RoundView   `json:"round"`
	Stats   game.Statistics  `json:"stats"`
	Message string           `json:"message,omitempty"` // set when the round ends
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letter, ok := singleRune(req.Letter)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	}

	sess := sessionFrom(r.Context())
	var (
		res     guessRes
		isDaily bool
	)
	err := sess.Do(func(e *game.Engine) error {
		gr, err := e.Guess(letter)
		if err != nil {
			return err
		}
		res.Result = gr
		res.Round, _ = e.Round()
		res.Stats = e.Statistics()
		isDaily = sess.Daily()
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	if res.Result.Status.Terminal() {
		res.Message = endMessage(res.Result.Status, res.Result.Revealed, res.Round.Difficulty)
		s.recordRound(r, sess, res.Round, isDaily)
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	var (
		res stateRes
		ok  bool
	)
	_ = sess.Do(func(e *game.Engine) error {
		res.Round, ok = e.Round()
		res.Stats = e.Statistics()
		res.Daily = sess.Daily()
		return nil
	})
	if !ok {
		writeGameError(w, game.ErrNoRound)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var st game.Statistics
	_ = sessionFrom(r.Context()).Do(func(e *game.Engine) error {
		st = e.Statistics()
		return nil
	})
	_ = json.NewEncoder(w).Encode(st)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit > 100 {
		limit = 100
	}
	rows := []history.Entry{}
	if s.hist != nil {
		got, err := s.hist.Recent(r.Context(), sessionFrom(r.Context()).ID, limit)
		if err != nil {
			log.Error().Err(err).Msg("load history")
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		rows = append(rows, got...)
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// recordRound journals a finished round; failures are logged, never surfaced.
func (s *Server) recordRound(r *http.Request, sess *store.Session, v game.RoundView, isDaily bool) {
	log.Info().
		Str("session", sess.ID).
		Str("difficulty", string(v.Difficulty)).
		Str("status", string(v.Status)).
		Int("wrong", v.WrongCount).
		Msg("round finished")
	if s.hist == nil {
		return
	}
	err := s.hist.Record(r.Context(), history.Entry{
		SessionID:    sess.ID,
		Difficulty:   v.Difficulty,
		Word:         v.Word,
		Status:       v.Status,
		WrongGuesses: v.WrongCount,
		Guesses:      len(v.Guessed),
		Daily:        isDaily,
		FinishedAt:   s.opts.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("record round")
	}
}

// endMessage is the game-over text shown by the view.
func endMessage(st game.Status, word string, d game.Difficulty) string {
	if st == game.Won {
		return fmt.Sprintf("You guessed %q correctly! Great job on %s difficulty!", word, d.Title())
	}
	return fmt.Sprintf("The word was %q. Better luck next time on %s difficulty!", word, d.Title())
}

// singleRune accepts exactly one character, ignoring surrounding spaces.
func singleRune(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// writeGameError maps engine errors to HTTP status + code.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidDifficulty):
		writeError(w, http.StatusBadRequest, "invalid_difficulty")
	case errors.Is(err, game.ErrInvalidLetter):
		writeError(w, http.StatusBadRequest, "invalid_letter")
	case errors.Is(err, game.ErrRoundAlreadyOver):
		writeError(w, http.StatusConflict, "round_over")
	case errors.Is(err, game.ErrLetterAlreadyGuessed):
		writeError(w, http.StatusConflict, "already_guessed")
	case errors.Is(err, game.ErrNoRound):
		writeError(w, http.StatusNotFound, "no_round")
	default:
		log.Error().Err(err).Msg("game operation")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
