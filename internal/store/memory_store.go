package store

import (
	"sync"

	"nba-schedule-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of schedules in memory, indexed
// by date and by game ID.
type MemoryStore struct {
	mu     sync.RWMutex
	byDate map[string][]domain.Game
	byID   map[string]domain.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byDate: make(map[string][]domain.Game),
		byID:   make(map[string]domain.Game),
	}
}

// SetSchedule replaces the stored games for one date. Games previously held
// under that date drop out of the ID index unless the new snapshot carries
// them again.
func (s *MemoryStore) SetSchedule(date string, games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.byDate[date] {
		delete(s.byID, g.GameID)
	}

	// Snapshots keep the order the games were scraped in, so a date served
	// from the store reads the same as one fetched live.
	snapshot := make([]domain.Game, len(games))
	copy(snapshot, games)

	s.byDate[date] = snapshot
	for _, g := range snapshot {
		s.byID[g.GameID] = g
	}
}

// ScheduleFor returns a copy of the games stored for a date and whether the
// date has ever been stored. An empty slice with ok=true means a known empty
// day.
func (s *MemoryStore) ScheduleFor(date string) ([]domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games, ok := s.byDate[date]
	if !ok {
		return nil, false
	}
	result := make([]domain.Game, len(games))
	copy(result, games)
	return result, true
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byID[id]
	return g, ok
}
