package server

import (
	"log/slog"
	"time"

	"nba-schedule-service/internal/config"
	"nba-schedule-service/internal/metrics"
	"nba-schedule-service/internal/providers"
	"nba-schedule-service/internal/providers/fixture"
	"nba-schedule-service/internal/providers/nbacom"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, loc *time.Location) providers.ScheduleProvider {
	switch cfg.Provider {
	case "nbacom", "":
		return nbacom.New(nbacom.Config{
			ScheduleURL:  cfg.NBA.ScheduleURL,
			UserAgent:    cfg.NBA.UserAgent,
			HTTPTimeout:  cfg.NBA.HTTPTimeout,
			ReadyTimeout: cfg.NBA.ReadyTimeout,
			ReadyPoll:    cfg.NBA.ReadyPoll,
			DumpHTML:     cfg.NBA.DumpHTML,
			Timezone:     loc,
			Logger:       logger,
			Metrics:      recorder,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
