package schedule

import "nba-schedule-service/internal/domain"

// Store defines the contract for persisting and retrieving schedules.
type Store interface {
	SetSchedule(date string, games []domain.Game)
	ScheduleFor(date string) ([]domain.Game, bool)
	GetGame(id string) (domain.Game, bool)
}

// Service coordinates schedule operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ScheduleFor returns the cached games for a date, if that date has been stored.
func (s *Service) ScheduleFor(date string) ([]domain.Game, bool) {
	return s.store.ScheduleFor(date)
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domain.Game, bool) {
	return s.store.GetGame(id)
}

// ReplaceSchedule swaps the stored games for a date with a new snapshot.
func (s *Service) ReplaceSchedule(date string, games []domain.Game) {
	s.store.SetSchedule(date, games)
}
