package domain

// Game is the canonical schedule record exposed by the service.
// IDs are content-addressed: derived from (date, home, away) so re-scraping
// the same slate yields the same IDs.
type Game struct {
	GameID        string  `json:"game_id"`
	FullDate      string  `json:"full_date"`
	GameTime      string  `json:"game_time"`
	Broadcaster   *string `json:"broadcaster"`
	HomeTeam      string  `json:"home_team"`
	AwayTeam      string  `json:"away_team"`
	HomeTeamScore *int    `json:"home_team_score"`
	AwayTeamScore *int    `json:"away_team_score"`
	Arena         string  `json:"arena"`
	City          string  `json:"city"`
	State         string  `json:"state"`
}

// Played reports whether the game has a recorded score.
func (g Game) Played() bool {
	return g.HomeTeamScore != nil && g.AwayTeamScore != nil
}

// ScheduleResponse is the payload returned by /schedule?date=YYYY-MM-DD.
type ScheduleResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewScheduleResponse builds a ScheduleResponse payload.
func NewScheduleResponse(date string, games []Game) ScheduleResponse {
	if games == nil {
		games = []Game{}
	}
	return ScheduleResponse{
		Date:  date,
		Games: games,
	}
}
