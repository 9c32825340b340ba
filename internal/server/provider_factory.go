package server

import (
	"log/slog"
	"time"

	"nba-schedule-service/internal/config"
	"nba-schedule-service/internal/metrics"
	"nba-schedule-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config, loc *time.Location) providers.ScheduleProvider {
	base := selectProvider(cfg, f.logger, f.metrics, loc)
	limited := providers.NewRateLimitedProvider(base, cfg.NBA.ScrapeInterval, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, 0, 0)
}
