package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/samabhi804-sketch/hangman/internal/game"
)

func newEngine(t *testing.T) *game.Engine {
	t.Helper()
	e, err := game.NewEngine(
		game.WordBank{game.Easy: {"abcdefghijklmnopqrstuvwxyz"}},
		[]string{"1", "2", "3", "4", "5", "6"},
	)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := NewSession("abc", newEngine(t))
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Get(ctx, "abc")
	if err != nil || got != s {
		t.Fatalf("get: %v %v", got, err)
	}
	if _, err := st.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if ids := st.List(ctx); len(ids) != 1 || ids[0] != "abc" || st.Len() != 1 {
		t.Fatalf("list = %v len = %d", ids, st.Len())
	}
	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.Delete(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSweepDropsIdleSessions(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore().(*memory)
	stale := NewSession("stale", newEngine(t))
	fresh := NewSession("fresh", newEngine(t))
	_ = m.Save(ctx, stale)
	_ = m.Save(ctx, fresh)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	fresh.mu.Lock()
	fresh.lastSeen = time.Now().Add(2 * time.Hour)
	fresh.mu.Unlock()

	if n := m.Sweep(ctx, time.Hour); n != 1 {
		t.Fatalf("swept %d, want 1", n)
	}
	if _, err := m.Get(ctx, "stale"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stale session survived")
	}
	if _, err := m.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session dropped: %v", err)
	}
}

func TestSessionDoSerializesGuesses(t *testing.T) {
	s := NewSession("race", newEngine(t))
	if err := s.Do(func(e *game.Engine) error {
		_, err := e.StartRound(game.Easy)
		return err
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 26)
	for c := 'A'; c <= 'Z'; c++ {
		wg.Add(1)
		go func(l rune) {
			defer wg.Done()
			errs <- s.Do(func(e *game.Engine) error {
				_, err := e.Guess(l)
				return err
			})
		}(c)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("guess: %v", err)
		}
	}
	_ = s.Do(func(e *game.Engine) error {
		v, _ := e.Round()
		if v.Status != game.Won || len(v.Guessed) != 26 {
			t.Fatalf("after concurrent guesses: %+v", v)
		}
		return nil
	})
}

func TestRunSweeperStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := NewMemoryStore()
	ticks := make(chan int, 8)
	done := make(chan struct{})
	go func() {
		RunSweeper(ctx, st, 5*time.Millisecond, time.Hour, func(n int) {
			select {
			case ticks <- n:
			default:
			}
		})
		close(done)
	}()
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatalf("sweeper never ticked")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sweeper did not stop")
	}
}
