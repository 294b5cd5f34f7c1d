package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/identity"
)

type stubCache struct {
	index domain.SeasonIndex
}

func (c *stubCache) Games(team string) ([]domain.TeamGame, bool) {
	games, ok := c.index[team]
	return games, ok
}

func (c *stubCache) TeamNames() []string {
	names := make([]string, 0, len(c.index))
	for name := range c.index {
		names = append(names, name)
	}
	return names
}

type stubDirectory struct {
	teams map[string]domain.Team
}

func (d *stubDirectory) GetTeam(sportKey, teamID string) (domain.Team, bool) {
	team, ok := d.teams[teamID]
	return team, ok
}

type stubScoreboard struct {
	games []domain.Game
	from  time.Time
	to    time.Time
}

func (s *stubScoreboard) FetchScoreboard(ctx context.Context, sport domain.Sport) []domain.Game {
	return s.games
}

func (s *stubScoreboard) FetchScoreboardRange(ctx context.Context, sport domain.Sport, from, to time.Time) []domain.Game {
	s.from, s.to = from, to
	return s.games
}

func mustSport(t *testing.T, key string) domain.Sport {
	t.Helper()
	sport, ok := domain.SportByKey(key)
	require.True(t, ok)
	return sport
}

func cacheIndex() domain.SeasonIndex {
	return domain.SeasonIndex{
		"Ohio State": {
			{Date: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), Opponent: "Michigan", IsHome: true, TeamScore: 10, OpponentScore: 13},
			{Date: time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC), Opponent: "Indiana", IsHome: true, TeamScore: 38, OpponentScore: 15},
			{Date: time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC), Opponent: "Northwestern", IsHome: false, TeamScore: 31, OpponentScore: 7},
			{Date: time.Date(2024, 11, 9, 0, 0, 0, 0, time.UTC), Opponent: "Purdue", IsHome: true, TeamScore: 45, OpponentScore: 0},
		},
		"Ohio": {
			{Date: time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC), Opponent: "Ball State", IsHome: true, TeamScore: 28, OpponentScore: 20},
		},
	}
}

func newCacheResolver(t *testing.T, directory TeamDirectory) *Resolver {
	t.Helper()
	ids, err := identity.NewResolver()
	require.NoError(t, err)
	return NewResolver(Config{
		Identity:  ids,
		Caches:    map[string]SeasonCache{"ncaaf": &stubCache{index: cacheIndex()}},
		Directory: directory,
	})
}

func TestTeamHistoryCacheExactName(t *testing.T) {
	directory := &stubDirectory{teams: map[string]domain.Team{
		"194": {ID: "194", Name: "Ohio State", Sport: "ncaaf"},
	}}
	resolver := newCacheResolver(t, directory)

	history := resolver.TeamHistory(context.Background(), mustSport(t, "ncaaf"), "194")

	assert.Equal(t, "Ohio State", history.Team.Name)
	// Cache-backed history returns the whole season, not a trailing window.
	require.Len(t, history.Games, 4)

	latest := history.Games[0]
	assert.Equal(t, "2024-11-30", latest.Date)
	assert.Equal(t, "Ohio State", latest.HomeTeam.Name)
	assert.Equal(t, "Michigan", latest.AwayTeam.Name)
	assert.Equal(t, 10, latest.HomeTeam.Score)
	assert.Equal(t, 13, latest.AwayTeam.Score)
	assert.Equal(t, 23, latest.Total)

	away := history.Games[2]
	assert.Equal(t, "Ohio State", away.AwayTeam.Name)
	assert.Equal(t, "Northwestern", away.HomeTeam.Name)
}

func TestTeamHistoryCacheCrossID(t *testing.T) {
	// The scoreboard name differs from the season dataset key; the cross-ID
	// table bridges the numeric ID to the dataset's school name.
	directory := &stubDirectory{teams: map[string]domain.Team{
		"194": {ID: "194", Name: "Ohio State Buckeyes", Sport: "ncaaf"},
	}}
	resolver := newCacheResolver(t, directory)

	history := resolver.TeamHistory(context.Background(), mustSport(t, "ncaaf"), "194")

	require.Len(t, history.Games, 4)
	assert.Equal(t, "Ohio State", history.Games[0].HomeTeam.Name)
}

func TestTeamHistoryCacheCrossIDBeatsFuzzy(t *testing.T) {
	// Without the table, "Ohio State Buckeyes" would fuzzy-match the
	// lexicographically earlier "Ohio". The exact mapping must win.
	directory := &stubDirectory{teams: map[string]domain.Team{
		"194": {ID: "194", Name: "Ohio State Buckeyes", Sport: "ncaaf"},
	}}
	resolver := newCacheResolver(t, directory)

	history := resolver.TeamHistory(context.Background(), mustSport(t, "ncaaf"), "194")

	require.NotEmpty(t, history.Games)
	assert.NotEqual(t, "Ohio", history.Games[0].HomeTeam.Name)
}

func TestTeamHistoryCacheFuzzyFallback(t *testing.T) {
	directory := &stubDirectory{teams: map[string]domain.Team{
		"9999": {ID: "9999", Name: "Michigan Wolverines", Sport: "ncaaf"},
	}}
	resolver := NewResolver(Config{
		Caches: map[string]SeasonCache{"ncaaf": &stubCache{index: domain.SeasonIndex{
			"Michigan": {{Date: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), Opponent: "Ohio State", IsHome: false, TeamScore: 13, OpponentScore: 10}},
		}}},
		Directory: directory,
	})

	history := resolver.TeamHistory(context.Background(), mustSport(t, "ncaaf"), "9999")

	require.Len(t, history.Games, 1)
	assert.Equal(t, "Michigan", history.Games[0].AwayTeam.Name)
}

func TestTeamHistoryCacheMissReturnsEmptyGames(t *testing.T) {
	resolver := newCacheResolver(t, &stubDirectory{})

	history := resolver.TeamHistory(context.Background(), mustSport(t, "ncaaf"), "unknown-team")

	assert.Equal(t, "unknown-team", history.Team.ID)
	require.NotNil(t, history.Games)
	assert.Empty(t, history.Games)
}

func TestTeamHistoryLiveWindow(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	scoreboard := &stubScoreboard{games: []domain.Game{
		{ID: "g1", HomeTeamID: "1", AwayTeamID: "2", HomeTeam: "Celtics", AwayTeam: "Heat", HomeScore: 110, AwayScore: 102, Status: domain.StatusFinal, StartTime: now.AddDate(0, 0, -3)},
		{ID: "g2", HomeTeamID: "3", AwayTeamID: "1", HomeTeam: "Knicks", AwayTeam: "Celtics", HomeScore: 95, AwayScore: 99, Status: domain.StatusFinal, StartTime: now.AddDate(0, 0, -1)},
		{ID: "g3", HomeTeamID: "1", AwayTeamID: "4", HomeTeam: "Celtics", AwayTeam: "Bucks", Status: domain.StatusScheduled, StartTime: now.AddDate(0, 0, 1)},
		{ID: "g4", HomeTeamID: "5", AwayTeamID: "6", HomeTeam: "Lakers", AwayTeam: "Suns", HomeScore: 120, AwayScore: 118, Status: domain.StatusFinal, StartTime: now.AddDate(0, 0, -2)},
		{ID: "g5", HomeTeamID: "1", AwayTeamID: "7", HomeTeam: "Celtics", AwayTeam: "Magic", HomeScore: 105, AwayScore: 90, Status: domain.StatusFinal, StartTime: now.AddDate(0, 0, -10)},
		{ID: "g6", HomeTeamID: "1", AwayTeamID: "8", HomeTeam: "Celtics", AwayTeam: "Raptors", HomeScore: 112, AwayScore: 100, Status: domain.StatusFinal, StartTime: now.AddDate(0, 0, -20)},
	}}
	directory := &stubDirectory{teams: map[string]domain.Team{
		"1": {ID: "1", Name: "Celtics", Sport: "nba"},
	}}
	resolver := NewResolver(Config{Scoreboard: scoreboard, Directory: directory})
	resolver.now = func() time.Time { return now }

	history := resolver.TeamHistory(context.Background(), mustSport(t, "nba"), "1")

	assert.Equal(t, now.AddDate(0, 0, -90), scoreboard.from)
	assert.Equal(t, now, scoreboard.to)

	require.Len(t, history.Games, 3)
	assert.Equal(t, "2025-01-31", history.Games[0].Date)
	assert.Equal(t, "Knicks", history.Games[0].HomeTeam.Name)
	assert.Equal(t, 194, history.Games[0].Total)
	assert.Equal(t, "2025-01-29", history.Games[1].Date)
	assert.Equal(t, "2025-01-22", history.Games[2].Date)
}
