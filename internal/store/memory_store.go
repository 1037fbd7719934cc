package store

import (
	"sync"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/lifecycle"
)

// Entry is a published lifecycle snapshot and when it was taken.
type Entry struct {
	Snapshot  lifecycle.Snapshot `json:"snapshot"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// MemoryStore holds the most recent lifecycle snapshot. Only the current
// session is visible: once the machine returns to Idle or picks up another
// game, the previous game is gone. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	latest Entry
	has    bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Publish replaces the current snapshot.
func (s *MemoryStore) Publish(snap lifecycle.Snapshot, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = Entry{Snapshot: snap, UpdatedAt: at}
	s.has = true
}

// Latest returns the most recent snapshot.
func (s *MemoryStore) Latest() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.has
}

// GetGame returns the current snapshot when it tracks game id.
func (s *MemoryStore) GetGame(id int64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.has || s.latest.Snapshot.Game == nil || s.latest.Snapshot.Game.ID != id {
		return Entry{}, false
	}
	return s.latest, true
}

// ListGames returns the tracked game's snapshot, if a session is active.
func (s *MemoryStore) ListGames() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.has || s.latest.Snapshot.Game == nil {
		return []Entry{}
	}
	return []Entry{s.latest}
}
