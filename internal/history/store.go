package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/samabhi804-sketch/hangman/internal/game"
)

// Entry is one finished round.
type Entry struct {
	SessionID    string          `json:"-"`
	Difficulty   game.Difficulty `json:"difficulty"`
	Word         string          `json:"word"`
	Status       game.Status     `json:"status"`
	WrongGuesses int             `json:"wrongGuesses"`
	Guesses      int             `json:"guesses"`
	Daily        bool            `json:"daily"`
	FinishedAt   time.Time       `json:"finishedAt"`
}

// Store reads and writes the rounds table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts a finished round. FinishedAt defaults to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds(session_id, difficulty, word, status, wrong_guesses, guesses, daily, finished_at)
		VALUES(?,?,?,?,?,?,?,?)`,
		e.SessionID, string(e.Difficulty), e.Word, string(e.Status), e.WrongGuesses, e.Guesses, e.Daily,
		e.FinishedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Recent returns a session's finished rounds, newest first.
func (s *Store) Recent(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, difficulty, word, status, wrong_guesses, guesses, daily, finished_at
		FROM rounds
		WHERE session_id=?
		ORDER BY id DESC
		LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e        Entry
			finished string
		)
		if err := rows.Scan(&e.SessionID, &e.Difficulty, &e.Word, &e.Status,
			&e.WrongGuesses, &e.Guesses, &e.Daily, &finished); err != nil {
			return nil, err
		}
		e.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, e)
	}
	return out, rows.Err()
}

// TierSummary aggregates finished rounds for one difficulty.
type TierSummary struct {
	Difficulty game.Difficulty `json:"difficulty"`
	Rounds     int             `json:"rounds"`
	Wins       int             `json:"wins"`
	Losses     int             `json:"losses"`
	AvgWrong   float64         `json:"avgWrong"`
}

// Summary returns per-difficulty totals across all sessions.
func (s *Store) Summary(ctx context.Context) ([]TierSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT difficulty,
		        COUNT(1),
		        SUM(CASE WHEN status='won' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN status='lost' THEN 1 ELSE 0 END),
		        AVG(wrong_guesses)
		FROM rounds
		GROUP BY difficulty
		ORDER BY difficulty`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TierSummary
	for rows.Next() {
		var t TierSummary
		if err := rows.Scan(&t.Difficulty, &t.Rounds, &t.Wins, &t.Losses, &t.AvgWrong); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
