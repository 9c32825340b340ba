package metrics

import (
	"sync"
	"time"
)

type scrapeStats struct {
	attempts     int
	errors       int
	skippedDays  int
	skippedGames int
	lastLatency  time.Duration
}

// Recorder captures lightweight, in-memory metrics about scrape runs.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*scrapeStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*scrapeStats),
		otel:  otel,
	}
}

// RecordScrapeAttempt increments counters for one scrape run and stores the
// last observed latency.
func (r *Recorder) RecordScrapeAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.attempts++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordScrapeAttempt(provider, duration, err)
	}
}

// RecordSkips tracks day- and game-level units dropped during a scrape run.
func (r *Recorder) RecordSkips(provider string, days, games int) {
	if r == nil || (days == 0 && games == 0) {
		return
	}

	stats := r.ensureStats(provider)
	stats.skippedDays += days
	stats.skippedGames += games
	if r.otel != nil {
		r.otel.recordSkips(provider, days, games)
	}
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Attempts     int
	Errors       int
	SkippedDays  int
	SkippedGames int
	LastLatency  time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Attempts:     stats.attempts,
		Errors:       stats.errors,
		SkippedDays:  stats.skippedDays,
		SkippedGames: stats.skippedGames,
		LastLatency:  stats.lastLatency,
	}
}

// ScrapeAttempts returns the total scrape runs recorded for a provider.
func (r *Recorder) ScrapeAttempts(provider string) int {
	return r.Snapshot(provider).Attempts
}

// ScrapeErrors returns the total failed scrape runs recorded for a provider.
func (r *Recorder) ScrapeErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) ensureStats(provider string) *scrapeStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &scrapeStats{}
		r.stats[provider] = stats
	}
	return stats
}
