// Package nbacom provides a ScheduleProvider that scrapes the nba.com
// schedule page. Each fetch opens a fresh page session, waits for the
// schedule blocks to render, extracts records, and closes the session.
package nbacom

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nba-schedule-service/internal/dom"
	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/logging"
	"nba-schedule-service/internal/metrics"
	"nba-schedule-service/internal/schedule"
	"nba-schedule-service/internal/timeutil"
)

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "nbacom"

// monthPlaceholder is the token in the schedule URL replaced with the
// month name of the requested date, e.g. "?cal=MONTH" -> "?cal=March".
const monthPlaceholder = "MONTH"

// Config carries everything the scraper needs to reach and read the page.
type Config struct {
	ScheduleURL  string
	UserAgent    string
	HTTPTimeout  time.Duration
	ReadyTimeout time.Duration
	ReadyPoll    time.Duration
	DumpHTML     bool
	Timezone     *time.Location
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
}

type sessionFactory func(ctx context.Context, cfg dom.NBAConfig) (dom.Session, error)

// Provider scrapes schedule data from nba.com.
type Provider struct {
	cfg         Config
	extractor   *schedule.Extractor
	openSession sessionFactory
	now         func() time.Time
}

// New creates an nba.com provider. A nil Timezone means UTC.
func New(cfg Config) *Provider {
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	return &Provider{
		cfg:         cfg,
		extractor:   schedule.NewExtractor(cfg.Timezone, cfg.Logger),
		openSession: dom.OpenNBASession,
		now:         time.Now,
	}
}

// FetchSchedule scrapes the month page covering date and returns the valid
// records for that day. An empty date means today in the provider timezone.
func (p *Provider) FetchSchedule(ctx context.Context, date string) ([]domain.Game, error) {
	if date == "" {
		date = timeutil.FormatDate(p.now().In(p.cfg.Timezone))
	}

	url, err := p.monthURL(date)
	if err != nil {
		return nil, err
	}

	start := p.now()
	games, runErr := p.scrape(ctx, url, date)
	p.cfg.Metrics.RecordScrapeAttempt(ProviderName, p.now().Sub(start), runErr)
	if runErr != nil {
		return nil, runErr
	}
	return games, nil
}

func (p *Provider) scrape(ctx context.Context, url, date string) ([]domain.Game, error) {
	session, err := p.openSession(ctx, dom.NBAConfig{
		URL:          url,
		HTTPClient:   &http.Client{Timeout: p.cfg.HTTPTimeout},
		UserAgent:    p.cfg.UserAgent,
		ReadyTimeout: p.cfg.ReadyTimeout,
		ReadyPoll:    p.cfg.ReadyPoll,
		DumpHTML:     p.cfg.DumpHTML,
		Logger:       p.cfg.Logger,
	})
	if err != nil {
		return nil, &schedule.SessionError{Op: "open", Err: err}
	}
	defer session.Close()

	result, err := p.extractor.Run(ctx, session, date)
	if err != nil {
		return nil, err
	}

	p.cfg.Metrics.RecordSkips(ProviderName, result.SkippedDays(), result.SkippedGames())
	if len(result.Skipped) > 0 {
		logger := logging.FromContext(ctx, p.cfg.Logger)
		if logger != nil {
			logger.Warn("schedule extraction dropped units",
				slog.String(logging.FieldProvider, ProviderName),
				slog.String(logging.FieldDate, date),
				slog.Int("skipped_days", result.SkippedDays()),
				slog.Int("skipped_games", result.SkippedGames()),
			)
		}
	}

	return result.Games, nil
}

// monthURL builds the schedule page URL for the month containing date.
func (p *Provider) monthURL(date string) (string, error) {
	month, err := timeutil.MonthOf(date)
	if err != nil {
		return "", &schedule.ParseError{Text: date, Reason: "invalid target date"}
	}
	name, ok := schedule.MonthName(month)
	if !ok {
		return "", &schedule.ParseError{Text: date, Reason: "invalid target date"}
	}
	return strings.ReplaceAll(p.cfg.ScheduleURL, monthPlaceholder, name), nil
}
