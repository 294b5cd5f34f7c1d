// Package games aggregates scoreboard data across sports and serves game
// queries from the in-memory snapshot.
package games

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/providers"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domain.Game
	GetGame(id string) (domain.Game, bool)
	SetGames(sportKey string, games []domain.Game)
}

// HistoryResolver supplies recent-game stats for game detail responses.
type HistoryResolver interface {
	TeamHistory(ctx context.Context, sport domain.Sport, teamID string) domain.TeamHistory
}

// Stats carries both teams' recent history on a game detail response.
type Stats struct {
	Home domain.TeamHistory `json:"home"`
	Away domain.TeamHistory `json:"away"`
}

// Detail is a single game plus its stats block.
type Detail struct {
	Game  domain.Game `json:"game"`
	Stats *Stats      `json:"stats,omitempty"`
}

// Service coordinates game aggregation and lookups.
type Service struct {
	store      Store
	scoreboard providers.ScoreboardProvider
	totals     providers.TotalsProvider
	history    HistoryResolver
	logger     *slog.Logger
}

// NewService constructs a Service. totals and history may be nil; the
// service then serves games without supplemental lines or stats.
func NewService(store Store, scoreboard providers.ScoreboardProvider, totals providers.TotalsProvider, history HistoryResolver, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		scoreboard: scoreboard,
		totals:     totals,
		history:    history,
		logger:     logger,
	}
}

// Aggregate fetches every sport's scoreboard concurrently, merges in
// supplemental odds lines, and replaces the store snapshot. A sport whose
// fetch degrades contributes an empty list; the others still land.
func (s *Service) Aggregate(ctx context.Context) []domain.Game {
	start := time.Now()
	sports := domain.Sports()
	results := make([][]domain.Game, len(sports))

	var wg sync.WaitGroup
	for i, sport := range sports {
		wg.Add(1)
		go func(i int, sport domain.Sport) {
			defer wg.Done()
			games := s.scoreboard.FetchScoreboard(ctx, sport)
			if s.totals != nil {
				mergeTotals(games, s.totals.FetchTotals(ctx, sport))
			}
			results[i] = games
		}(i, sport)
	}
	wg.Wait()

	var all []domain.Game
	for i, sport := range sports {
		s.store.SetGames(sport.Key, results[i])
		all = append(all, results[i]...)
	}

	logging.Info(s.logger, "scoreboards aggregated",
		slog.Int(logging.FieldCount, len(all)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return all
}

// Games returns the current snapshot in declared sport order.
func (s *Service) Games() []domain.Game {
	return s.store.ListGames()
}

// GameByID returns a single game plus both teams' recent history.
func (s *Service) GameByID(ctx context.Context, id string) (Detail, bool) {
	game, ok := s.store.GetGame(id)
	if !ok {
		return Detail{}, false
	}
	detail := Detail{Game: game}

	sport, ok := domain.SportByKey(game.Sport)
	if !ok || s.history == nil {
		return detail, true
	}
	if game.HomeTeamID == "" || game.AwayTeamID == "" {
		return detail, true
	}
	detail.Stats = &Stats{
		Home: s.history.TeamHistory(ctx, sport, game.HomeTeamID),
		Away: s.history.TeamHistory(ctx, sport, game.AwayTeamID),
	}
	return detail, true
}

// mergeTotals fills in over/under lines for games the scoreboard left bare.
// Matching is by home/away name pair, case-insensitive.
func mergeTotals(games []domain.Game, totals []domain.OddsTotal) {
	if len(totals) == 0 {
		return
	}
	for i := range games {
		if games[i].TotalLine != nil {
			continue
		}
		for _, total := range totals {
			if !teamsMatch(games[i], total) {
				continue
			}
			line := total.Total
			bookmaker := total.Bookmaker
			games[i].TotalLine = &line
			games[i].Bookmaker = &bookmaker
			break
		}
	}
}

func teamsMatch(game domain.Game, total domain.OddsTotal) bool {
	return nameMatch(game.HomeTeam, total.HomeTeam) && nameMatch(game.AwayTeam, total.AwayTeam)
}

// nameMatch tolerates the odds feed and scoreboard disagreeing on suffixes
// like mascots by accepting either name containing the other.
func nameMatch(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
