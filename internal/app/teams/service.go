// Package teams serves team listings. Teams are recomputed from the
// provider on every refresh; there is no persistent team identity.
package teams

import (
	"context"
	"sync"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/providers"
)

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []domain.Team
	SetTeams(sportKey string, teams []domain.Team)
}

// Service coordinates team operations using a Store.
type Service struct {
	store    Store
	provider providers.TeamProvider
}

// NewService constructs a Service with the provided Store and provider.
func NewService(store Store, provider providers.TeamProvider) *Service {
	return &Service{store: store, provider: provider}
}

// Teams recomputes the team list from the provider and returns it across
// all sports in declared order. The store snapshot doubles as the ID
// directory for history lookups.
func (s *Service) Teams(ctx context.Context) []domain.Team {
	s.Refresh(ctx)
	return s.store.ListTeams()
}

// Refresh fetches every sport's team list concurrently and replaces the
// store snapshot. A degraded sport contributes an empty list.
func (s *Service) Refresh(ctx context.Context) {
	sports := domain.Sports()
	results := make([][]domain.Team, len(sports))

	var wg sync.WaitGroup
	for i, sport := range sports {
		wg.Add(1)
		go func(i int, sport domain.Sport) {
			defer wg.Done()
			results[i] = s.provider.FetchTeams(ctx, sport)
		}(i, sport)
	}
	wg.Wait()

	for i, sport := range sports {
		s.store.SetTeams(sport.Key, results[i])
	}
}
