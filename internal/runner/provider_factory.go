package runner

import (
	"log/slog"

	"github.com/preston-bernstein/dota-teaminfo/internal/config"
	"github.com/preston-bernstein/dota-teaminfo/internal/metrics"
	"github.com/preston-bernstein/dota-teaminfo/internal/providers"
)

// providerFactory assembles the provider with shared wrappers. The limiter is
// outermost so permit waits are not counted as upstream latency.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg *config.Config) *providers.RateLimitedProvider {
	return f.wrap(selectProvider(cfg), cfg)
}

func (f providerFactory) wrap(base providers.TeamInfoProvider, cfg *config.Config) *providers.RateLimitedProvider {
	name := providerName(cfg.Provider, base)
	instrumented := providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
	return providers.NewRateLimitedProvider(instrumented, name, cfg.RateLimit.Interval, cfg.RateLimit.Burst, f.logger, f.metrics)
}
