// Package runner wires configuration into a single batch run.
package runner

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/dota-teaminfo/internal/batch"
	"github.com/preston-bernstein/dota-teaminfo/internal/config"
	"github.com/preston-bernstein/dota-teaminfo/internal/logging"
	"github.com/preston-bernstein/dota-teaminfo/internal/metrics"
	"github.com/preston-bernstein/dota-teaminfo/internal/normalize"
	"github.com/preston-bernstein/dota-teaminfo/internal/snapshots"
)

var metricsSetup = metrics.Setup

// Runner executes one batch for a validated config.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs a Runner. cfg must already be validated.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Run loads the team ids, fetches and normalizes every team, writes the
// result set and flushes metrics. Only an unreadable team list is an error;
// fetch and write failures are reported through the Summary.
func (r *Runner) Run(ctx context.Context) (batch.Summary, error) {
	ids, err := batch.LoadTeamIDs(r.cfg.TeamsPath)
	if err != nil {
		return batch.Summary{}, err
	}

	recorder, flush := r.buildMetrics(ctx)
	defer r.flushMetrics(flush)

	provider := newProviderFactory(r.logger, recorder).build(r.cfg)
	pipeline := normalize.New(normalize.Options{
		CamelCase: r.cfg.CamelCase,
		Pretty:    r.cfg.Pretty,
	})
	writer := snapshots.NewWriter(r.cfg.Output, r.cfg.Pretty)

	logging.Info(r.logger, "run configured",
		slog.String(logging.FieldProvider, providerName(r.cfg.Provider, nil)),
		slog.String(logging.FieldPath, writer.Path()),
		slog.Int(logging.FieldCount, len(ids)),
		slog.Int64("interval_ms", provider.Interval().Milliseconds()),
		slog.Any("stages", pipeline.Stages()),
	)

	return batch.New(provider, pipeline, writer, r.logger, recorder).Run(ctx, ids), nil
}

func (r *Runner) buildMetrics(ctx context.Context) (*metrics.Recorder, func(context.Context) error) {
	rec, flush, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      r.cfg.Metrics.Enabled(),
		TextfilePath: r.cfg.Metrics.File,
		ServiceName:  r.cfg.Metrics.ServiceName,
		OtlpEndpoint: r.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: r.cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(r.logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil
	}
	return rec, flush
}

func (r *Runner) flushMetrics(flush func(context.Context) error) {
	if flush == nil {
		return
	}
	// The run context may already be canceled by a signal; the flush still runs.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := flush(ctx); err != nil {
		logging.Warn(r.logger, "metrics flush failed", "error", err)
	}
}
