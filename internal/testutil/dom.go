package testutil

import (
	"context"

	"nba-schedule-service/internal/dom"
)

// StubSession is an in-memory dom.Session for pipeline tests.
type StubSession struct {
	DayList    []dom.Day
	ReadyErr   error
	DaysErr    error
	CloseCalls int
}

func (s *StubSession) WaitReady(ctx context.Context) error { return s.ReadyErr }

func (s *StubSession) Days() ([]dom.Day, error) {
	if s.DaysErr != nil {
		return nil, s.DaysErr
	}
	return s.DayList, nil
}

func (s *StubSession) Close() error {
	s.CloseCalls++
	return nil
}

// StubDay is an in-memory dom.Day.
type StubDay struct {
	Date     string
	DateErr  error
	GameList []dom.Game
	GamesErr error
}

func (d *StubDay) DateText() (string, error) {
	if d.DateErr != nil {
		return "", d.DateErr
	}
	return d.Date, nil
}

func (d *StubDay) Games() ([]dom.Game, error) {
	if d.GamesErr != nil {
		return nil, d.GamesErr
	}
	return d.GameList, nil
}

// StubGame is an in-memory dom.Game with per-field error injection.
type StubGame struct {
	Status    string
	StatusErr error

	BroadcastVal dom.Broadcast
	BroadcastErr error

	TeamNames []string
	TeamsErr  error

	ScoreTexts []string
	ScoresErr  error

	Arena       string
	CityState   string
	LocationErr error
}

func (g *StubGame) StatusText() (string, error) {
	if g.StatusErr != nil {
		return "", g.StatusErr
	}
	return g.Status, nil
}

func (g *StubGame) Broadcast() (dom.Broadcast, error) {
	if g.BroadcastErr != nil {
		return dom.Broadcast{}, g.BroadcastErr
	}
	return g.BroadcastVal, nil
}

func (g *StubGame) Teams() ([]string, error) {
	if g.TeamsErr != nil {
		return nil, g.TeamsErr
	}
	return g.TeamNames, nil
}

func (g *StubGame) Scores() ([]string, error) {
	if g.ScoresErr != nil {
		return nil, g.ScoresErr
	}
	return g.ScoreTexts, nil
}

func (g *StubGame) Location() (string, string, error) {
	if g.LocationErr != nil {
		return "", "", g.LocationErr
	}
	return g.Arena, g.CityState, nil
}

// SampleStubGame returns a fully populated, valid game block.
func SampleStubGame(away, home string) *StubGame {
	return &StubGame{
		Status:       "7:00 pm ET",
		BroadcastVal: dom.Broadcast{Present: true, Named: true, Name: "ESPN"},
		TeamNames:    []string{away, home},
		ScoreTexts:   nil,
		Arena:        "Crypto.com Arena",
		CityState:    "Los Angeles, CA",
	}
}
