package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 16

// MemoryStore is an in-memory Store. Runs beyond the history limit are
// dropped oldest first.
type MemoryStore struct {
	mu    sync.RWMutex
	runs  []Run
	byID  map[string]int
	limit int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		byID:  make(map[string]int),
		limit: defaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[run.ID]; exists {
		return "", ErrDuplicateRun
	}

	s.runs = append(s.runs, run)
	if len(s.runs) > s.limit {
		evicted := s.runs[0]
		s.runs = s.runs[1:]
		delete(s.byID, evicted.ID)
		for id, i := range s.byID {
			s.byID[id] = i - 1
		}
	}
	s.byID[run.ID] = len(s.runs) - 1

	return run.ID, nil
}

// Latest implements Store.
func (s *MemoryStore) Latest(_ context.Context) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.runs) == 0 {
		return Run{}, ErrNoRuns
	}

	return s.runs[len(s.runs)-1], nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Run{}, ErrRunNotFound
	}

	return s.runs[i], nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.runs)
}
