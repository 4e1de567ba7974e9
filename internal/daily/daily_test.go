package daily

import (
	"testing"
	"time"

	"github.com/samabhi804-sketch/hangman/internal/game"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 2, 5, 0, 0, 0, loc) // 2024-03-01 19:00 UTC
	if got := DateKey(ts); got != "2024-03-01" {
		t.Fatalf("DateKey = %s", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 5, 17, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)
	a := WordIndex(day, "salt", game.Easy, 50)
	if b := WordIndex(later, "salt", game.Easy, 50); a != b {
		t.Fatalf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 50 {
		t.Fatalf("index out of range: %d", a)
	}
	if WordIndex(day, "salt", game.Easy, 0) != 0 {
		t.Fatalf("empty list must map to 0")
	}
}

func TestWordIndexVariesAcrossDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(start.AddDate(0, 0, i), "salt", game.Medium, 1000)] = true
	}
	if len(seen) < 20 {
		t.Fatalf("only %d distinct indexes over 30 days", len(seen))
	}
}

func TestPickerDrivesEngine(t *testing.T) {
	bank := game.WordBank{game.Easy: {"cat", "dog", "sun", "hat"}}
	stages := []string{"a", "b", "c", "d", "e", "f"}
	day := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	want := bank[game.Easy][WordIndex(day, "s", game.Easy, 4)]
	for i := 0; i < 3; i++ {
		e, err := game.NewEngine(bank, stages)
		if err != nil {
			t.Fatalf("engine: %v", err)
		}
		if _, err := e.StartRoundWith(game.Easy, Picker(day, "s", game.Easy)); err != nil {
			t.Fatalf("start: %v", err)
		}
		var res game.GuessResult
		for _, c := range want {
			res, err = e.Guess(c)
			if err != nil {
				t.Fatalf("guess: %v", err)
			}
		}
		if res.Status != game.Won {
			t.Fatalf("daily word differs between engines")
		}
	}
}
