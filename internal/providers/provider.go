package providers

import (
	"context"
	"errors"

	"nba-schedule-service/internal/domain"
)

// ErrProviderUnavailable indicates a provider is missing or misconfigured.
var ErrProviderUnavailable = errors.New("schedule provider unavailable")

// ScheduleProvider defines how upstream schedule data is fetched and normalized.
// The date parameter is a YYYY-MM-DD string naming which day's games to fetch;
// providers interpret an empty date as "today" in their configured timezone.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) ([]domain.Game, error)
}
