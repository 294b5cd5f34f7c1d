package store

import (
	"sort"
	"sync"

	"college-scores-service/internal/domain"
)

// MemoryStore keeps thread-safe per-sport snapshots of games and teams in
// memory. Writers replace whole snapshots; readers get copies.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string][]domain.Game          // by sport key
	byID  map[string]domain.Game            // across sports
	teams map[string]map[string]domain.Team // sport key -> team ID
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string][]domain.Game),
		byID:  make(map[string]domain.Game),
		teams: make(map[string]map[string]domain.Team),
	}
}

// ListGames returns all games grouped in declared sport order.
func (s *MemoryStore) ListGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Game
	for _, sport := range domain.Sports() {
		result = append(result, s.games[sport.Key]...)
	}
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byID[id]
	return g, ok
}

// SetGames replaces one sport's games with a new snapshot.
func (s *MemoryStore) SetGames(sportKey string, games []domain.Game) {
	snapshot := make([]domain.Game, len(games))
	copy(snapshot, games)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.games[sportKey] {
		delete(s.byID, g.ID)
	}
	s.games[sportKey] = snapshot
	for _, g := range snapshot {
		s.byID[g.ID] = g
	}
}

// SetTeams replaces one sport's teams with a new snapshot.
func (s *MemoryStore) SetTeams(sportKey string, teams []domain.Team) {
	indexed := make(map[string]domain.Team, len(teams))
	for _, t := range teams {
		indexed[t.ID] = t
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[sportKey] = indexed
}

// ListTeams returns all teams in declared sport order.
func (s *MemoryStore) ListTeams() []domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Team
	for _, sport := range domain.Sports() {
		sportTeams := make([]domain.Team, 0, len(s.teams[sport.Key]))
		for _, team := range s.teams[sport.Key] {
			sportTeams = append(sportTeams, team)
		}
		sort.Slice(sportTeams, func(i, j int) bool {
			return sportTeams[i].Name < sportTeams[j].Name
		})
		result = append(result, sportTeams...)
	}
	return result
}

// GetTeam retrieves a team by sport and provider ID.
func (s *MemoryStore) GetTeam(sportKey, teamID string) (domain.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[sportKey][teamID]
	return team, ok
}
