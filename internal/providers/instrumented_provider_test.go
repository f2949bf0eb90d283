package providers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/logging"
	"github.com/preston-bernstein/dota-teaminfo/internal/metrics"
	"github.com/preston-bernstein/dota-teaminfo/internal/teststubs"
	"github.com/preston-bernstein/dota-teaminfo/internal/testutil"
)

func TestInstrumentedProviderRecordsSuccess(t *testing.T) {
	inner := &teststubs.StubProvider{Records: map[teams.TeamID]teams.Record{
		"111": {"team_id": json.Number("111")},
	}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, nil, rec, "steam")

	got, err := p.FetchTeamInfo(context.Background(), "111")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got.ID() != "111" {
		t.Fatalf("unexpected record %v", got)
	}
	if rec.ProviderCalls("steam") != 1 || rec.ProviderErrors("steam") != 0 {
		t.Fatalf("unexpected metrics %+v", rec.Snapshot("steam"))
	}
}

func TestInstrumentedProviderDoesNotRetry(t *testing.T) {
	inner := &teststubs.StubProvider{Err: &TransportError{TeamID: "111", StatusCode: 503}}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedProvider(inner, logger, rec, "steam")

	_, err := p.FetchTeamInfo(context.Background(), "111")
	if _, ok := AsTransportError(err); !ok {
		t.Fatalf("expected transport error passthrough, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected exactly one attempt, got %d", inner.Calls.Load())
	}
	if rec.ProviderErrors("steam") != 1 {
		t.Fatalf("expected one recorded error")
	}
	out := buf.String()
	if !strings.Contains(out, "kind=transport") || !strings.Contains(out, logging.FieldStatusCode+"=503") {
		t.Fatalf("expected failure details in log, got %q", out)
	}
}

func TestInstrumentedProviderUsesContextLogger(t *testing.T) {
	inner := &teststubs.StubProvider{Err: errors.New("boom")}
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedProvider(inner, nil, nil, "")

	ctx := logging.WithContext(context.Background(), logger)
	if _, err := p.FetchTeamInfo(ctx, "5"); err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(buf.String(), "provider=provider") {
		t.Fatalf("expected fallback provider name in context logger output, got %q", buf.String())
	}
}

func TestInstrumentedProviderMeasuresLatency(t *testing.T) {
	inner := &teststubs.StubProvider{Records: map[teams.TeamID]teams.Record{"1": {"team_id": json.Number("1")}}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, nil, rec, "steam").(*instrumentedProvider)

	p.now = testutil.SteppingClock(testutil.MustParseRFC3339("2024-01-01T00:00:00Z"), 5*time.Millisecond)

	if _, err := p.FetchTeamInfo(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.LastCallLatency("steam"); got != 5*time.Millisecond {
		t.Fatalf("expected 5ms latency, got %s", got)
	}
}

func TestInstrumentedProviderNilInner(t *testing.T) {
	p := NewInstrumentedProvider(nil, nil, nil, "steam")
	if _, err := p.FetchTeamInfo(context.Background(), "1"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
