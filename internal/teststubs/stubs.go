package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

// ErrNoRecord is returned by StubProvider for ids it has no record for.
var ErrNoRecord = errors.New("stub: no record")

// StubProvider is a test double for providers.TeamInfoProvider.
type StubProvider struct {
	Records map[teams.TeamID]teams.Record
	Errs    map[teams.TeamID]error
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}

	mu        sync.Mutex
	requested []teams.TeamID
}

// FetchTeamInfo returns a copy of the configured record (or error) while tracking calls.
func (s *StubProvider) FetchTeamInfo(ctx context.Context, id teams.TeamID) (teams.Record, error) {
	_ = ctx
	s.mu.Lock()
	s.requested = append(s.requested, id)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Unlock()
	s.Calls.Add(1)

	if s.Err != nil {
		return nil, s.Err
	}
	if err, ok := s.Errs[id]; ok {
		return nil, err
	}
	rec, ok := s.Records[id]
	if !ok {
		return nil, ErrNoRecord
	}
	out := make(teams.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out, nil
}

// Requested returns the ids seen so far, in call order.
func (s *StubProvider) Requested() []teams.TeamID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]teams.TeamID(nil), s.requested...)
}

// StubResultWriter is a test double for batch.ResultWriter.
type StubResultWriter struct {
	Err     error
	Written []teams.ResultSet
	Bytes   int

	mu sync.Mutex
}

// WriteResults records the result set for verification in tests.
func (w *StubResultWriter) WriteResults(rs teams.ResultSet) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Written = append(w.Written, rs)
	if w.Err != nil {
		return 0, w.Err
	}
	return w.Bytes, nil
}

// Writes returns how many times WriteResults was called.
func (w *StubResultWriter) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Written)
}
