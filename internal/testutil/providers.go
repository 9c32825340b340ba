package testutil

import (
	"context"
	"sync/atomic"

	"nba-schedule-service/internal/domain"
)

// StubProvider is a canned ScheduleProvider for wiring tests.
type StubProvider struct {
	Games []domain.Game
	Err   error
	calls atomic.Int64
}

func (p *StubProvider) FetchSchedule(ctx context.Context, date string) ([]domain.Game, error) {
	p.calls.Add(1)
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Games, nil
}

// Calls reports how many times FetchSchedule ran.
func (p *StubProvider) Calls() int {
	return int(p.calls.Load())
}

// FlakyProvider fails a fixed number of times before succeeding.
type FlakyProvider struct {
	FailuresBeforeSuccess int
	Games                 []domain.Game
	Err                   error
	calls                 atomic.Int64
}

func (p *FlakyProvider) FetchSchedule(ctx context.Context, date string) ([]domain.Game, error) {
	n := p.calls.Add(1)
	if int(n) <= p.FailuresBeforeSuccess {
		return nil, p.Err
	}
	return p.Games, nil
}

// Calls reports how many times FetchSchedule ran.
func (p *FlakyProvider) Calls() int {
	return int(p.calls.Load())
}
