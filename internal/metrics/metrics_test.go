package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("steam", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("steam", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("steam"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("steam"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("steam"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("steam")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksPermitWaits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPermitWait("steam", 0)
	rec.RecordPermitWait("steam", time.Second)

	if got := rec.PermitsGranted("steam"); got != 2 {
		t.Fatalf("expected 2 permits, got %d", got)
	}
	if got := rec.Snapshot("steam").LastPermitWait; got != time.Second {
		t.Fatalf("expected last wait 1s, got %s", got)
	}
}

func TestRecorderTracksBatchTotals(t *testing.T) {
	rec := NewRecorder()
	rec.RecordBatch(3, 2, 1, time.Second)
	rec.RecordOutputWrite(128, nil)
	rec.RecordOutputWrite(0, errors.New("disk full"))

	b := rec.Batch()
	if b.Runs != 1 || b.Requested != 3 || b.Succeeded != 2 || b.Failed != 1 {
		t.Fatalf("unexpected batch totals %+v", b)
	}
	if b.BytesWritten != 128 || b.WriteErrors != 1 {
		t.Fatalf("unexpected write totals %+v", b)
	}
	if b.LastDuration != time.Second {
		t.Fatalf("expected last duration 1s, got %s", b.LastDuration)
	}
}

func TestRecorderUnknownProviderReturnsZero(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.Snapshot("missing"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("steam", time.Millisecond, nil)
	rec.RecordPermitWait("steam", time.Millisecond)
	rec.RecordBatch(1, 1, 0, time.Millisecond)
	rec.RecordOutputWrite(1, nil)
	if rec.ProviderCalls("steam") != 0 || rec.Batch().Runs != 0 {
		t.Fatalf("expected nil recorder to report zeros")
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("steam", time.Millisecond, nil)
			rec.RecordPermitWait("steam", time.Millisecond)
		}()
	}
	wg.Wait()

	if got := rec.ProviderCalls("steam"); got != 50 {
		t.Fatalf("expected 50 calls, got %d", got)
	}
	if got := rec.PermitsGranted("steam"); got != 50 {
		t.Fatalf("expected 50 permits, got %d", got)
	}
}
