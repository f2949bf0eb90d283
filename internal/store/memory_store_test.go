package store

import (
	"strconv"
	"sync"
	"testing"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

func TestResultStoreAppendIgnoresNil(t *testing.T) {
	s := NewResultStore(2)
	s.Append(teams.Record{"team_id": "1", "name": "Alpha"})
	s.Append(teams.Record{"team_id": "2", "name": "Beta"})
	s.Append(nil)

	if got := s.Len(); got != 2 {
		t.Fatalf("expected 2 records, got %d", got)
	}
	if rec := s.ResultSet().Results[1]; rec["name"] != "Beta" {
		t.Fatalf("expected team 2 second, got %v", rec)
	}
}

func TestResultStoreKeepsAppendOrder(t *testing.T) {
	s := NewResultStore(-1)
	for _, id := range []string{"3", "1", "2"} {
		s.Append(teams.Record{"team_id": id})
	}
	rs := s.ResultSet()
	for i, want := range []string{"3", "1", "2"} {
		if rs.Results[i]["team_id"] != want {
			t.Fatalf("position %d: got %v want %s", i, rs.Results[i]["team_id"], want)
		}
	}
}

func TestResultStoreEmptyResultSet(t *testing.T) {
	rs := NewResultStore(0).ResultSet()
	if rs.Results == nil || len(rs.Results) != 0 {
		t.Fatalf("expected empty non-nil results, got %#v", rs.Results)
	}
}

func TestResultStoreResultSetIsACopy(t *testing.T) {
	s := NewResultStore(1)
	s.Append(teams.Record{"team_id": "1"})
	rs := s.ResultSet()
	s.Append(teams.Record{"team_id": "2"})
	if len(rs.Results) != 1 {
		t.Fatalf("earlier result set should not grow, got %d", len(rs.Results))
	}
}

func TestResultStoreConcurrentAppend(t *testing.T) {
	s := NewResultStore(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(teams.Record{"team_id": strconv.Itoa(i)})
		}(i)
	}
	wg.Wait()
	if s.Len() != 50 {
		t.Fatalf("expected 50 records, got %d", s.Len())
	}
}
