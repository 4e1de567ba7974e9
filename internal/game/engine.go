// internal/game/engine.go
//
// Core game engine for hangman.
// Responsibilities:
//   - Pick a word for a round from the difficulty-tiered word bank.
//   - Validate and apply letter guesses.
//   - Track state transitions: in_progress → won/lost.
//   - Keep wins/losses/streak across rounds.
//
// Notes:
//   - The engine has no I/O and no locking. One instance belongs to one
//     session; callers sharing an instance must serialize calls.
//   - Randomness is injected via IndexFunc so tests can pin the word.
package game

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"unicode"
)

// IndexFunc returns an index in [0, n). Out-of-range results are wrapped.
type IndexFunc func(n int) int

// Option configures an Engine.
type Option func(*Engine)

// WithPicker replaces the default uniform random word picker.
func WithPicker(p IndexFunc) Option {
	return func(e *Engine) {
		if p != nil {
			e.pick = p
		}
	}
}

// round is the active game instance.
type round struct {
	difficulty Difficulty
	word       string   // uppercase
	guessed    []rune   // guess order
	seen       [26]bool // guessed set, indexed by letter
	wrong      int
	status     Status
}

// Engine owns the current round and the session statistics.
type Engine struct {
	bank       WordBank
	stages     []string
	pick       IndexFunc
	difficulty Difficulty
	cur        *round
	stats      Statistics
}

// NewEngine builds an engine over a word bank and the ordered failure stages
// (one per wrong guess). stages must cover MaxWrongGuesses.
func NewEngine(bank WordBank, stages []string, opts ...Option) (*Engine, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if len(stages) < MaxWrongGuesses {
		return nil, errors.New("game: not enough failure stages")
	}
	e := &Engine{
		bank:       bank,
		stages:     append([]string(nil), stages[:MaxWrongGuesses]...),
		pick:       randomIndex,
		difficulty: Easy,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// StartRound discards the current round and starts a new one on d.
// Statistics are untouched.
func (e *Engine) StartRound(d Difficulty) (RoundView, error) {
	return e.StartRoundWith(d, e.pick)
}

// StartRoundWith is StartRound with a one-off picker (e.g. the daily word).
func (e *Engine) StartRoundWith(d Difficulty, pick IndexFunc) (RoundView, error) {
	list := e.bank[d]
	if len(list) == 0 {
		return RoundView{}, ErrInvalidDifficulty
	}
	if pick == nil {
		pick = e.pick
	}
	i := pick(len(list)) % len(list)
	if i < 0 {
		i += len(list)
	}
	e.difficulty = d
	e.cur = &round{
		difficulty: d,
		word:       strings.ToUpper(list[i]),
		status:     InProgress,
	}
	return e.view(), nil
}

// Replay starts a new round on the last selected difficulty.
func (e *Engine) Replay() (RoundView, error) {
	return e.StartRound(e.difficulty)
}

// Difficulty is the last selected difficulty (easy before any round).
func (e *Engine) Difficulty() Difficulty { return e.difficulty }

// Guess applies one letter to the current round.
//
// Rejections (no state change):
//   - ErrNoRound before the first StartRound.
//   - ErrInvalidLetter if the letter is not A–Z after upper-casing.
//   - ErrRoundAlreadyOver once the round is won or lost.
//   - ErrLetterAlreadyGuessed for a repeat.
func (e *Engine) Guess(letter rune) (GuessResult, error) {
	r := e.cur
	if r == nil {
		return GuessResult{}, ErrNoRound
	}
	letter = unicode.ToUpper(letter)
	if letter < 'A' || letter > 'Z' {
		return GuessResult{}, ErrInvalidLetter
	}
	if r.status.Terminal() {
		return GuessResult{}, ErrRoundAlreadyOver
	}
	if r.seen[letter-'A'] {
		return GuessResult{}, ErrLetterAlreadyGuessed
	}

	r.seen[letter-'A'] = true
	r.guessed = append(r.guessed, letter)

	res := GuessResult{Letter: letter}
	if strings.ContainsRune(r.word, letter) {
		res.Outcome = Correct
		if r.revealed() {
			r.status = Won
			e.stats.Wins++
			e.stats.Streak++
		}
	} else {
		res.Outcome = Incorrect
		r.wrong++
		res.Stage = e.stages[r.wrong-1]
		if r.wrong == MaxWrongGuesses {
			r.status = Lost
			e.stats.Losses++
			e.stats.Streak = 0
		}
	}

	res.WrongCount = r.wrong
	res.Status = r.status
	if r.status.Terminal() {
		res.Revealed = r.word
		res.Unguessed = string(r.unguessed())
	}
	return res, nil
}

// MaskedWord returns the word with unguessed positions set to Blank.
// Nil before the first round.
func (e *Engine) MaskedWord() []rune {
	if e.cur == nil {
		return nil
	}
	return e.cur.masked()
}

// WrongLetters returns guessed letters absent from the word, in guess order.
func (e *Engine) WrongLetters() []rune {
	if e.cur == nil {
		return nil
	}
	return e.cur.wrongLetters()
}

// Statistics returns the cross-round counters.
func (e *Engine) Statistics() Statistics { return e.stats }

// Round returns a snapshot of the current round; false before the first one.
func (e *Engine) Round() (RoundView, bool) {
	if e.cur == nil {
		return RoundView{}, false
	}
	return e.view(), true
}

func (e *Engine) view() RoundView {
	r := e.cur
	v := RoundView{
		Difficulty:   r.difficulty,
		Length:       len(r.word),
		Masked:       string(r.masked()),
		Guessed:      string(r.guessed),
		WrongLetters: string(r.wrongLetters()),
		WrongCount:   r.wrong,
		MaxWrong:     MaxWrongGuesses,
		Status:       r.status,
		Stages:       append([]string{}, e.stages[:r.wrong]...),
	}
	if r.status.Terminal() {
		v.Word = r.word
	}
	return v
}

func (r *round) has(c rune) bool {
	return c >= 'A' && c <= 'Z' && r.seen[c-'A']
}

func (r *round) masked() []rune {
	out := make([]rune, 0, len(r.word))
	for _, c := range r.word {
		if r.has(c) {
			out = append(out, c)
		} else {
			out = append(out, Blank)
		}
	}
	return out
}

func (r *round) revealed() bool {
	for _, c := range r.word {
		if !r.has(c) {
			return false
		}
	}
	return true
}

func (r *round) wrongLetters() []rune {
	out := []rune{}
	for _, c := range r.guessed {
		if !strings.ContainsRune(r.word, c) {
			out = append(out, c)
		}
	}
	return out
}

// unguessed lists word letters never guessed, in word order, without repeats.
func (r *round) unguessed() []rune {
	var out []rune
	var added [26]bool
	for _, c := range r.word {
		if r.has(c) || added[c-'A'] {
			continue
		}
		added[c-'A'] = true
		out = append(out, c)
	}
	return out
}

// randomIndex picks uniformly with crypto/rand.
func randomIndex(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
