package providers

import (
	"context"
	"log/slog"

	"nba-schedule-service/internal/logging"
)

// providerLog resolves the request-scoped logger, falling back to the one the
// decorator was built with, and tags the entry with the decorator's name so
// chained providers stay distinguishable in the output. With neither logger
// available the entry is dropped.
func providerLog(ctx context.Context, fallback *slog.Logger, level slog.Level, provider, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
