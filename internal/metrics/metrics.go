package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	permits         int
	lastPermitWait  time.Duration
	lastCallLatency time.Duration
}

type batchStats struct {
	runs         int
	requested    int
	succeeded    int
	failed       int
	bytesWritten int
	writeErrors  int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// batch runs, mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	batch batchStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordPermitWait tracks how long a caller waited for a rate-limit permit.
func (r *Recorder) RecordPermitWait(provider string, wait time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.permits++
	stats.lastPermitWait = wait
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPermitWait(provider, wait)
	}
}

// RecordBatch tracks the outcome of one completed batch run.
func (r *Recorder) RecordBatch(requested, succeeded, failed int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.batch.runs++
	r.batch.requested += requested
	r.batch.succeeded += succeeded
	r.batch.failed += failed
	r.batch.lastDuration = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBatch(requested, succeeded, failed, duration)
	}
}

// RecordOutputWrite tracks the final results write.
func (r *Recorder) RecordOutputWrite(bytes int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if err != nil {
		r.batch.writeErrors++
	} else {
		r.batch.bytesWritten += bytes
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOutputWrite(bytes, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// PermitsGranted returns how many rate-limit permits were handed out for a provider.
func (r *Recorder) PermitsGranted(provider string) int {
	return r.Snapshot(provider).Permits
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	Permits         int
	LastPermitWait  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Permits:         stats.permits,
		LastPermitWait:  stats.lastPermitWait,
		LastCallLatency: stats.lastCallLatency,
	}
}

// BatchSnapshot is a copy of the accumulated batch totals.
type BatchSnapshot struct {
	Runs         int
	Requested    int
	Succeeded    int
	Failed       int
	BytesWritten int
	WriteErrors  int
	LastDuration time.Duration
}

// Batch returns the accumulated batch totals.
func (r *Recorder) Batch() BatchSnapshot {
	if r == nil {
		return BatchSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return BatchSnapshot{
		Runs:         r.batch.runs,
		Requested:    r.batch.requested,
		Succeeded:    r.batch.succeeded,
		Failed:       r.batch.failed,
		BytesWritten: r.batch.bytesWritten,
		WriteErrors:  r.batch.writeErrors,
		LastDuration: r.batch.lastDuration,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
