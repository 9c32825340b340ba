package schedule

import "nba-schedule-service/internal/domain"

// ValidateGame checks a candidate record against the Game shape: required
// strings non-empty, scores both absent or both present. Optional fields
// (broadcaster) may be nil. Returns a *ValidationError describing the first
// violation, or nil when the record is valid. It never panics past its own
// boundary; rejected records are dropped by the caller, not surfaced.
func ValidateGame(game domain.Game) error {
	required := []struct {
		name  string
		value string
	}{
		{"game_id", game.GameID},
		{"full_date", game.FullDate},
		{"game_time", game.GameTime},
		{"home_team", game.HomeTeam},
		{"away_team", game.AwayTeam},
		{"arena", game.Arena},
		{"city", game.City},
		{"state", game.State},
	}
	for _, field := range required {
		if field.value == "" {
			return &ValidationError{Reason: field.name + " is empty"}
		}
	}

	// A half-present score pair indicates an extraction anomaly, not a
	// valid in-between state.
	if (game.HomeTeamScore == nil) != (game.AwayTeamScore == nil) {
		return &ValidationError{Reason: "scores must be both absent or both present"}
	}

	return nil
}
