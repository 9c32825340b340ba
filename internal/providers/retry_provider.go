package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/logging"
	"nba-schedule-service/internal/schedule"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFactory func() backoff.BackOff

// retryingProvider wraps a ScheduleProvider with retry/backoff behavior.
// Session failures are retried; extraction problems surface as skips in the
// result and never trigger a retry.
type retryingProvider struct {
	inner       ScheduleProvider
	logger      *slog.Logger
	maxAttempts int
	newBackoff  backoffFactory
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/interval are <= 0, defaults are used.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, maxAttempts int, interval time.Duration) ScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		newBackoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = interval
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, date string) ([]domain.Game, error) {
	var lastErr error

	bo := backoff.WithContext(r.newBackoff(), ctx)
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		games, err := r.inner.FetchSchedule(ctx, date)
		if err == nil {
			return games, nil
		}
		lastErr = err

		if !retryable(err) || attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			return nil, ctx.Err()
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "err", lastErr)
	return nil, lastErr
}

// retryable reports whether another attempt can plausibly succeed. Session
// and transport failures qualify; bad input never does.
func retryable(err error) bool {
	if _, ok := schedule.AsParseError(err); ok {
		return false
	}
	if _, ok := schedule.AsValidationError(err); ok {
		return false
	}
	return true
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
