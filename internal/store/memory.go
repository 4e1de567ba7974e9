// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Each session owns exactly one game.Engine; the engine is only reachable
// through Session.Do, which serializes calls on a per-session mutex.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - ErrNotFound is returned for missing session IDs on Get().

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/samabhi804-sketch/hangman/internal/game"
)

// ErrNotFound is returned by Get and Delete for unknown IDs.
var ErrNotFound = errors.New("session not found")

// Session binds one engine to one player session.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex // guards engine, lastSeen and daily
	engine   *game.Engine
	lastSeen time.Time
	daily    bool
}

// NewSession wraps an engine.
func NewSession(id string, e *game.Engine) *Session {
	now := time.Now()
	return &Session{ID: id, CreatedAt: now, engine: e, lastSeen: now}
}

// Do runs fn with exclusive access to the session's engine.
func (s *Session) Do(fn func(e *game.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return fn(s.engine)
}

// SetDaily marks whether the current round is a daily round. Call inside Do.
func (s *Session) SetDaily(v bool) { s.daily = v }

// Daily reports whether the current round is a daily round. Call inside Do.
func (s *Session) Daily() bool { return s.daily }

// LastSeen returns the time of the last Do call.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Store defines the registry of live sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete drops a session, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all sessions, sorted.
	List(ctx context.Context) []string

	// Len reports the number of sessions.
	Len() int

	// Sweep drops sessions idle longer than idle and returns how many.
	Sweep(ctx context.Context, idle time.Duration) int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session), now: time.Now}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) List(ctx context.Context) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *memory) Sweep(ctx context.Context, idle time.Duration) int {
	cutoff := m.now().Add(-idle)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if ctx.Err() != nil {
			break
		}
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
// onSweep, if set, receives the number of sessions dropped per tick.
func RunSweeper(ctx context.Context, st Store, interval, idle time.Duration, onSweep func(n int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n := st.Sweep(ctx, idle)
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}
