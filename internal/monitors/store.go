package monitors

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"waterdeck/internal/domain"
)

// ErrNotFound is returned when a monitor id is not in the store
var ErrNotFound = errors.New("monitor not found")

// Store provides access to monitor data
type Store interface {
	Get(id uuid.UUID) (*domain.Monitor, error)
	All() []*domain.Monitor
	Replace(monitors []*domain.Monitor)
	Delete(id uuid.UUID) (*domain.Monitor, error)
	Count() int
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu       sync.RWMutex
	monitors map[uuid.UUID]*domain.Monitor
}

// NewMemoryStore creates a new memory-based monitor store
func NewMemoryStore(initial []*domain.Monitor) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(initial)
	return s
}

func (s *MemoryStore) Get(id uuid.UUID) (*domain.Monitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.monitors[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	return m, nil
}

// All returns a snapshot of every monitor in no particular order
func (s *MemoryStore) All() []*domain.Monitor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Monitor, 0, len(s.monitors))
	for _, m := range s.monitors {
		result = append(result, m)
	}
	return result
}

// Replace swaps the store contents for the given monitors
func (s *MemoryStore) Replace(monitors []*domain.Monitor) {
	next := make(map[uuid.UUID]*domain.Monitor, len(monitors))
	for _, m := range monitors {
		if m != nil {
			next[m.ID] = m
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitors = next
}

func (s *MemoryStore) Delete(id uuid.UUID) (*domain.Monitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.monitors[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	delete(s.monitors, id)
	return m, nil
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.monitors)
}
