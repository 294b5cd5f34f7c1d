package providers

import (
	"context"
	"time"

	"college-scores-service/internal/domain"
)

// ScoreboardProvider fetches normalized games from an upstream scoreboard.
// Implementations degrade to an empty slice on upstream failure (non-2xx,
// transport error); absence of data means "no games", never a fatal
// condition. One attempt per call; callers decide whether to re-poll.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, sport domain.Sport) []domain.Game
	FetchScoreboardRange(ctx context.Context, sport domain.Sport, from, to time.Time) []domain.Game
}

// TeamProvider fetches normalized teams for a sport. Same degrade-to-empty
// contract as ScoreboardProvider.
type TeamProvider interface {
	FetchTeams(ctx context.Context, sport domain.Sport) []domain.Team
}

// SeasonProvider downloads a full season dataset for a cache-backed sport.
// Unlike the scoreboard providers it returns errors: the season cache
// manager branches on failure to keep its prior snapshot.
type SeasonProvider interface {
	FetchSeason(ctx context.Context, now time.Time) ([]domain.SeasonGame, error)
}

// TotalsProvider fetches over/under lines for a sport from the odds API.
// Degrades to an empty slice when unconfigured or unavailable.
type TotalsProvider interface {
	FetchTotals(ctx context.Context, sport domain.Sport) []domain.OddsTotal
}
