// Package fixture provides a static ScheduleProvider useful for local
// development and wiring tests when scraping is undesirable.
package fixture

import (
	"context"
	"time"

	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/schedule"
	"nba-schedule-service/internal/timeutil"
)

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "fixture"

// Provider returns a deterministic set of games for any requested date.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a real time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

type matchup struct {
	awayTeam, homeTeam string
	arena, city, state string
	gameTime           string
	broadcaster        string
}

var matchups = []matchup{
	{
		awayTeam: "Lakers", homeTeam: "Celtics",
		arena: "TD Garden", city: "Boston", state: "MA",
		gameTime: "19:00 ET", broadcaster: "ESPN",
	},
	{
		awayTeam: "Heat", homeTeam: "Warriors",
		arena: "Chase Center", city: "San Francisco", state: "CA",
		gameTime: "22:00 ET", broadcaster: schedule.BroadcasterFallback,
	},
}

// FetchSchedule returns the same two matchups for every date. IDs are derived
// the same way as scraped records, so they stay stable per date.
func (p *Provider) FetchSchedule(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx

	if date == "" {
		date = timeutil.FormatDate(p.now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, &schedule.ParseError{Text: date, Reason: "invalid target date"}
	}

	games := make([]domain.Game, 0, len(matchups))
	for _, m := range matchups {
		broadcaster := m.broadcaster
		games = append(games, domain.Game{
			GameID:      schedule.GameID(date, m.homeTeam, m.awayTeam),
			FullDate:    date,
			GameTime:    m.gameTime,
			Broadcaster: &broadcaster,
			HomeTeam:    m.homeTeam,
			AwayTeam:    m.awayTeam,
			Arena:       m.arena,
			City:        m.city,
			State:       m.state,
		})
	}
	return games, nil
}
