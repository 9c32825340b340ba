package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/logging"
)

// rateLimitedProvider wraps a ScheduleProvider and enforces a minimum interval
// between calls. The NBA site is scraped, not queried, so back-to-back fetches
// buy nothing and risk getting the service blocked.
type rateLimitedProvider struct {
	next     ScheduleProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a ScheduleProvider that limits calls to the given interval.
// Calls block until the interval elapses.
func NewRateLimitedProvider(next ScheduleProvider, interval time.Duration, logger *slog.Logger) ScheduleProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, date string) ([]domain.Game, error) {
	if p.next == nil {
		providerLog(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		providerLog(ctx, p.logger, slog.LevelWarn, "rate-limited", "fetch canceled before interval elapsed")
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	providerLog(ctx, p.logger, slog.LevelInfo, "rate-limited", "forwarding fetch", slog.String(logging.FieldDate, date))
	return p.next.FetchSchedule(ctx, date)
}
