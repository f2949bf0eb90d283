// Package batch drives one fetch per team id and writes the collected results.
package batch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/logging"
	"github.com/preston-bernstein/dota-teaminfo/internal/metrics"
	"github.com/preston-bernstein/dota-teaminfo/internal/normalize"
	"github.com/preston-bernstein/dota-teaminfo/internal/providers"
	"github.com/preston-bernstein/dota-teaminfo/internal/store"
)

// ResultWriter persists the finished result set.
type ResultWriter interface {
	WriteResults(rs teams.ResultSet) (int, error)
}

// Summary describes a finished run.
type Summary struct {
	RunID     string
	Requested int
	Succeeded int
	Failed    int
	Written   int
	Duration  time.Duration
	WriteErr  error
}

// Driver fans out one fetch per id and collects normalized records.
type Driver struct {
	provider providers.TeamInfoProvider
	pipeline *normalize.Pipeline
	writer   ResultWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
	newRunID func() string

	completed atomic.Int64
}

// New constructs a Driver. A nil pipeline leaves records as fetched.
func New(provider providers.TeamInfoProvider, pipeline *normalize.Pipeline, writer ResultWriter, logger *slog.Logger, recorder *metrics.Recorder) *Driver {
	return &Driver{
		provider: provider,
		pipeline: pipeline,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Run fetches every id, waits for all of them to complete and writes the
// result set exactly once. Individual failures are logged and skipped; they
// never stop the batch. Records appear in completion order.
func (d *Driver) Run(ctx context.Context, ids []teams.TeamID) Summary {
	start := d.now()
	summary := Summary{RunID: d.newRunID(), Requested: len(ids)}

	logger := d.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, summary.RunID))
	}
	ctx = logging.WithContext(ctx, logger)
	logging.Info(logger, "batch started", slog.Int(logging.FieldCount, len(ids)))

	var (
		results = store.NewResultStore(len(ids))
		failed  atomic.Int64
		g       errgroup.Group
	)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			rec, err := d.fetch(ctx, id)
			d.completed.Add(1)
			if err != nil {
				failed.Add(1)
				logging.Warn(logger, "team fetch failed",
					slog.String(logging.FieldTeamID, id.String()),
					slog.String(logging.FieldKind, providers.ErrorKind(err)),
					"error", err,
				)
				return nil
			}
			results.Append(rec)
			return nil
		})
	}
	_ = g.Wait()

	summary.Failed = int(failed.Load())
	summary.Succeeded = results.Len()
	summary.Written, summary.WriteErr = d.write(logger, results.ResultSet())
	summary.Duration = d.now().Sub(start)

	if d.metrics != nil {
		d.metrics.RecordBatch(summary.Requested, summary.Succeeded, summary.Failed, summary.Duration)
	}
	logging.Info(logger, "batch complete",
		slog.Int(logging.FieldCount, summary.Requested),
		slog.Int(logging.FieldSucceeded, summary.Succeeded),
		slog.Int(logging.FieldFailed, summary.Failed),
		slog.Int(logging.FieldBytes, summary.Written),
		slog.String(logging.FieldSize, humanize.Bytes(uint64(summary.Written))),
		slog.Int64(logging.FieldDurationMS, summary.Duration.Milliseconds()),
	)
	return summary
}

// Completed returns how many fetches have finished, successfully or not.
func (d *Driver) Completed() int {
	return int(d.completed.Load())
}

func (d *Driver) fetch(ctx context.Context, id teams.TeamID) (teams.Record, error) {
	if d.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	rec, err := d.provider.FetchTeamInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.pipeline.Apply(rec), nil
}

func (d *Driver) write(logger *slog.Logger, rs teams.ResultSet) (int, error) {
	if d.writer == nil {
		return 0, nil
	}
	n, err := d.writer.WriteResults(rs)
	if d.metrics != nil {
		d.metrics.RecordOutputWrite(n, err)
	}
	if err != nil {
		logging.Error(logger, "write results failed", err, slog.Int(logging.FieldCount, len(rs.Results)))
		return n, err
	}
	return n, nil
}
