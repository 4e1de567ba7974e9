// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Difficulty: word-list tier (easy/medium/hard).
//   - Status / Outcome: round state and per-guess result.
//   - RoundView / GuessResult / Statistics: plain values handed to views.
//   - Sentinel errors for rejected operations.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// MaxWrongGuesses is the number of incorrect guesses that loses a round.
// It matches the number of drawable failure stages.
const MaxWrongGuesses = 6

// Blank marks an unrevealed position in a masked word.
const Blank = '_'

// Difficulty selects which word list a round draws from.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns the tiers in display order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps user input ("Easy", " hard ") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", ErrInvalidDifficulty
}

// Title is the display name ("Easy").
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Status is the coarse state of a round.
type Status string

const (
	InProgress Status = "in_progress"
	Won        Status = "won"
	Lost       Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// Outcome is the evaluation of a single accepted guess.
type Outcome string

const (
	Correct   Outcome = "correct"
	Incorrect Outcome = "incorrect"
)

// WordBank maps each difficulty to its ordered list of lowercase words.
type WordBank map[Difficulty][]string

// Validate checks that every list holds only non-empty a–z words.
func (b WordBank) Validate() error {
	if len(b) == 0 {
		return errors.New("game: empty word bank")
	}
	for d, list := range b {
		for _, w := range list {
			if w == "" || !isLower(w) {
				return fmt.Errorf("game: invalid word %q in %s list", w, d)
			}
		}
	}
	return nil
}

// RoundView is a snapshot of the active round for rendering.
type RoundView struct {
	Difficulty   Difficulty `json:"difficulty"`
	Length       int        `json:"length"`
	Masked       string     `json:"masked"`
	Guessed      string     `json:"guessed"`
	WrongLetters string     `json:"wrongLetters"`
	WrongCount   int        `json:"wrongCount"`
	MaxWrong     int        `json:"maxWrong"`
	Status       Status     `json:"status"`
	Stages       []string   `json:"stages"`         // failure stages revealed so far
	Word         string     `json:"word,omitempty"` // only once the round is over
}

// GuessResult describes the effect of one accepted guess.
type GuessResult struct {
	Letter     rune    `json:"-"`
	Outcome    Outcome `json:"outcome"`
	WrongCount int     `json:"wrongCount"`
	Status     Status  `json:"status"`

	// Stage is the failure stage revealed by an incorrect guess.
	Stage string `json:"stage,omitempty"`

	// Set only when this guess ended the round.
	Revealed  string `json:"revealed,omitempty"`
	Unguessed string `json:"unguessed,omitempty"`
}

// Statistics are the cross-round counters of one engine.
type Statistics struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Streak int `json:"streak"`
}

var (
	ErrInvalidDifficulty    = errors.New("invalid difficulty")
	ErrInvalidLetter        = errors.New("invalid letter")
	ErrRoundAlreadyOver     = errors.New("round already over")
	ErrLetterAlreadyGuessed = errors.New("letter already guessed")
	ErrNoRound              = errors.New("no round started")
)

// isLower reports whether s is all lowercase ASCII letters.
func isLower(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
