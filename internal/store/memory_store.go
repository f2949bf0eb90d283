package store

import (
	"sync"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

// ResultStore is an append-only, goroutine-safe collection of team records.
// Records keep the order in which they were appended.
type ResultStore struct {
	mu      sync.RWMutex
	records []teams.Record
}

// NewResultStore constructs an empty store sized for capacity records.
func NewResultStore(capacity int) *ResultStore {
	if capacity < 0 {
		capacity = 0
	}
	return &ResultStore{records: make([]teams.Record, 0, capacity)}
}

// Append adds rec. Nil records are ignored.
func (s *ResultStore) Append(rec teams.Record) {
	if rec == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Len returns the number of stored records.
func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ResultSet returns the stored records wrapped for output. The slice is a
// copy; the records themselves are shared.
func (s *ResultStore) ResultSet() teams.ResultSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]teams.Record, len(s.records))
	copy(out, s.records)
	return teams.NewResultSet(out)
}
