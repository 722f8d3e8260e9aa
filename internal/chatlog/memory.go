package chatlog

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps entries in process memory. Used in tests and when
// neither Postgres nor Redis is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends the entry.
func (s *MemoryStore) Save(_ context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *entry)
	return nil
}

// List returns entries newest first.
func (s *MemoryStore) List(_ context.Context, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

// Summarize counts totals and per-intent distribution.
func (s *MemoryStore) Summarize(_ context.Context) (*Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &Summary{
		Backend: "memory",
		Total:   int64(len(s.entries)),
		Intents: make(map[string]int64),
	}
	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	for _, e := range s.entries {
		summary.Intents[e.Intent]++
		if !e.Timestamp.Before(midnight) {
			summary.Today++
		}
	}
	return summary, nil
}
