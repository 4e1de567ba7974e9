// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the easy/medium/hard lists from override files or fall back to the
//     embedded defaults in the assets package.
//   - Load the failure-stage identifiers that pace the drawing.
//   - Hand the result to the engine as a game.WordBank.
//
// Initialization behavior (Load):
//   For each tier, if its path in Paths is set, the file replaces the
//   embedded list for that tier; otherwise the embedded list is used.
//
// Constraints:
//   • Words must be alphabetic (a–z); others are dropped.
//   • Lists are normalized to lowercase.
//   • Every tier must end up non-empty.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samabhi804-sketch/hangman/assets"
	"github.com/samabhi804-sketch/hangman/internal/game"
)

// Paths holds optional per-tier override files.
type Paths struct {
	Easy   string
	Medium string
	Hard   string
}

func (p Paths) forTier(d game.Difficulty) string {
	switch d {
	case game.Easy:
		return p.Easy
	case game.Medium:
		return p.Medium
	case game.Hard:
		return p.Hard
	}
	return ""
}

// Lists is the loaded, read-only word data.
type Lists struct {
	bank   game.WordBank
	stages []string
}

// Load reads every tier and the stage list.
func Load(p Paths) (*Lists, error) {
	l := &Lists{bank: make(game.WordBank, 3)}
	for _, d := range game.Difficulties() {
		var (
			list []string
			err  error
		)
		if path := p.forTier(d); path != "" {
			list, err = readWordFile(path)
		} else {
			var raw []string
			raw, err = assets.WordList(string(d))
			list = normalize(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("words: load %s: %w", d, err)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("words: %s list is empty", d)
		}
		l.bank[d] = list
	}

	stages, err := assets.StageList()
	if err != nil {
		return nil, fmt.Errorf("words: load stages: %w", err)
	}
	if len(stages) < game.MaxWrongGuesses {
		return nil, fmt.Errorf("words: need %d stages, have %d", game.MaxWrongGuesses, len(stages))
	}
	l.stages = stages
	return l, nil
}

// Bank returns the word bank for game.NewEngine.
func (l *Lists) Bank() game.WordBank { return l.bank }

// Stages returns the failure stages in reveal order.
func (l *Lists) Stages() []string { return l.stages }

// Stats returns the number of words per tier.
func (l *Lists) Stats() map[game.Difficulty]int {
	out := make(map[game.Difficulty]int, len(l.bank))
	for d, list := range l.bank {
		out[d] = len(list)
	}
	return out
}

// readWordFile loads one word per line from a file, skipping blanks and
// "#" comments, lowercasing, and keeping only alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return normalize(raw), nil
}

func normalize(in []string) []string {
	var out []string
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
