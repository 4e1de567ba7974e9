// Package daily picks a deterministic "word of the day" per difficulty.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/samabhi804-sketch/hangman/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date and tier using
// HMAC(salt, "YYYY-MM-DD:tier") % n.
func WordIndex(date time.Time, salt string, d game.Difficulty, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + ":" + string(d)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker returns an engine picker that always lands on the day's word.
func Picker(date time.Time, salt string, d game.Difficulty) game.IndexFunc {
	return func(n int) int { return WordIndex(date, salt, d, n) }
}
