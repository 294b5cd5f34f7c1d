package teams

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/store"
)

type stubTeamProvider struct {
	bySport map[string][]domain.Team
}

func (s *stubTeamProvider) FetchTeams(ctx context.Context, sport domain.Sport) []domain.Team {
	teams, ok := s.bySport[sport.Key]
	if !ok {
		return []domain.Team{}
	}
	return teams
}

func TestTeamsRecomputesEachQuery(t *testing.T) {
	provider := &stubTeamProvider{bySport: map[string][]domain.Team{
		"nba": {{ID: "1", Name: "Celtics", Sport: "nba"}},
	}}
	svc := NewService(store.NewMemoryStore(), provider)

	teams := svc.Teams(context.Background())
	require.Len(t, teams, 1)
	assert.Equal(t, "Celtics", teams[0].Name)

	provider.bySport["nba"] = []domain.Team{
		{ID: "1", Name: "Celtics", Sport: "nba"},
		{ID: "2", Name: "Lakers", Sport: "nba"},
	}

	teams = svc.Teams(context.Background())
	assert.Len(t, teams, 2)
}

func TestTeamsDegradedSportYieldsOthers(t *testing.T) {
	provider := &stubTeamProvider{bySport: map[string][]domain.Team{
		"nfl": {{ID: "9", Name: "Bears", Sport: "nfl"}},
	}}
	memory := store.NewMemoryStore()
	svc := NewService(memory, provider)

	teams := svc.Teams(context.Background())

	require.Len(t, teams, 1)
	assert.Equal(t, "Bears", teams[0].Name)

	team, ok := memory.GetTeam("nfl", "9")
	require.True(t, ok)
	assert.Equal(t, "Bears", team.Name)
}
