package testutil

import "nba-schedule-service/internal/domain"

// SampleGame returns a valid game record for the given ID.
func SampleGame(id string) domain.Game {
	broadcaster := "ESPN"
	return domain.Game{
		GameID:      id,
		FullDate:    "2025-03-15",
		GameTime:    "19:00 ET",
		Broadcaster: &broadcaster,
		HomeTeam:    "Lakers",
		AwayTeam:    "Warriors",
		Arena:       "Crypto.com Arena",
		City:        "Los Angeles",
		State:       "CA",
	}
}

// SampleSchedule returns one sample game per ID, all on the given date.
func SampleSchedule(date string, ids ...string) []domain.Game {
	games := make([]domain.Game, 0, len(ids))
	for _, id := range ids {
		game := SampleGame(id)
		game.FullDate = date
		games = append(games, game)
	}
	return games
}
