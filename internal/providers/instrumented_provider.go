package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/logging"
	"github.com/preston-bernstein/dota-teaminfo/internal/metrics"
)

// instrumentedProvider records latency and outcome of each upstream call.
// It never retries: one call in, one attempt out.
type instrumentedProvider struct {
	inner        TeamInfoProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and failure logging.
func NewInstrumentedProvider(inner TeamInfoProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) TeamInfoProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchTeamInfo(ctx context.Context, id teams.TeamID) (teams.Record, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	record, err := p.inner.FetchTeamInfo(ctx, id)
	elapsed := p.now().Sub(start)
	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)
	}

	if err != nil {
		args := []any{
			slog.String(logging.FieldTeamID, id.String()),
			slog.String(logging.FieldKind, ErrorKind(err)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			"error", err,
		}
		if tErr, ok := AsTransportError(err); ok && tErr.StatusCode > 0 {
			args = append(args, slog.Int(logging.FieldStatusCode, tErr.StatusCode))
		}
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "provider fetch failed", args...)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "provider fetch succeeded",
		slog.String(logging.FieldTeamID, id.String()),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return record, nil
}
