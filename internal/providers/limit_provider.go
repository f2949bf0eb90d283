package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/logging"
	"github.com/preston-bernstein/dota-teaminfo/internal/metrics"
)

const (
	defaultPermitInterval = time.Second
	defaultPermitBurst    = 1
)

// RateLimitedProvider wraps a TeamInfoProvider and hands out at most one
// permit per interval (plus the configured burst). Permits are granted in
// the order callers arrive.
type RateLimitedProvider struct {
	next     TeamInfoProvider
	limiter  *rate.Limiter
	interval time.Duration
	burst    int
	name     string
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewRateLimitedProvider returns a provider that acquires a permit before every call.
// Non-positive interval or burst fall back to 1 permit per second with no burst.
func NewRateLimitedProvider(next TeamInfoProvider, name string, interval time.Duration, burst int, logger *slog.Logger, recorder *metrics.Recorder) *RateLimitedProvider {
	if interval <= 0 {
		interval = defaultPermitInterval
	}
	if burst <= 0 {
		burst = defaultPermitBurst
	}
	return &RateLimitedProvider{
		next:     next,
		limiter:  rate.NewLimiter(rate.Every(interval), burst),
		interval: interval,
		burst:    burst,
		name:     name,
		logger:   logger,
		metrics:  recorder,
	}
}

// Acquire blocks until a permit is available. It only fails when ctx is done.
func (p *RateLimitedProvider) Acquire(ctx context.Context) error {
	start := time.Now()
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "rate-limited fetch canceled", "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	if p.metrics != nil {
		p.metrics.RecordPermitWait(p.name, time.Since(start))
	}
	return nil
}

// FetchTeamInfo acquires a permit and delegates to the wrapped provider.
func (p *RateLimitedProvider) FetchTeamInfo(ctx context.Context, id teams.TeamID) (teams.Record, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.Acquire(ctx); err != nil {
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "rate-limited provider fetch", slog.String(logging.FieldTeamID, id.String()))
	return p.next.FetchTeamInfo(ctx, id)
}

// Interval returns the configured minimum spacing between permits.
func (p *RateLimitedProvider) Interval() time.Duration {
	return p.interval
}

// Burst returns the configured bucket size.
func (p *RateLimitedProvider) Burst() int {
	return p.burst
}
