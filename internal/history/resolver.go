// Package history resolves a team's recent completed games. Cache-backed
// sports answer from the season cache; everything else queries a trailing
// scoreboard window live.
package history

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/identity"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/providers"
	"college-scores-service/internal/timeutil"
)

const (
	// liveWindowDays is how far back the live branch looks.
	liveWindowDays = 90
	// historyLimit caps how many games the live branch returns.
	historyLimit = 3
)

// SeasonCache is the slice of a season cache manager the resolver needs.
type SeasonCache interface {
	Games(team string) ([]domain.TeamGame, bool)
	TeamNames() []string
}

// TeamDirectory looks up a team's display identity by provider ID.
type TeamDirectory interface {
	GetTeam(sportKey, teamID string) (domain.Team, bool)
}

// Config wires a resolver to its data sources.
type Config struct {
	Scoreboard providers.ScoreboardProvider
	Identity   *identity.Resolver
	Caches     map[string]SeasonCache // by sport key
	Directory  TeamDirectory
	Logger     *slog.Logger
}

// Resolver answers team history queries.
type Resolver struct {
	scoreboard providers.ScoreboardProvider
	identity   *identity.Resolver
	caches     map[string]SeasonCache
	directory  TeamDirectory
	logger     *slog.Logger
	now        func() time.Time
}

// NewResolver constructs a history resolver.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{
		scoreboard: cfg.Scoreboard,
		identity:   cfg.Identity,
		caches:     cfg.Caches,
		directory:  cfg.Directory,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// TeamHistory returns the team's most recent completed games, newest first.
// An unknown team or a cold cache yields an empty game list, never an error.
func (r *Resolver) TeamHistory(ctx context.Context, sport domain.Sport, teamID string) domain.TeamHistory {
	team := r.teamIdentity(sport, teamID)
	if sport.CacheBacked {
		return r.fromCache(sport, team)
	}
	return r.fromScoreboard(ctx, sport, team)
}

func (r *Resolver) teamIdentity(sport domain.Sport, teamID string) domain.Team {
	if r.directory != nil {
		if team, ok := r.directory.GetTeam(sport.Key, teamID); ok {
			return team
		}
	}
	return domain.Team{ID: teamID, Name: teamID, Sport: sport.Key}
}

// fromCache resolves the team against the season index. Resolution order:
// the display name as an exact key, then the cross-ID table, then a fuzzy
// name match.
func (r *Resolver) fromCache(sport domain.Sport, team domain.Team) domain.TeamHistory {
	history := domain.TeamHistory{Team: team, Games: []domain.HistoryEntry{}}

	cache, ok := r.caches[sport.Key]
	if !ok {
		return history
	}

	key, games, found := r.resolveCacheKey(cache, team)
	if !found {
		logging.Warn(r.logger, "team not found in season cache",
			slog.String(logging.FieldSport, sport.Key),
			slog.String("team_id", team.ID),
			slog.String("team_name", team.Name),
		)
		return history
	}

	// Cache-backed history carries the whole season, not a trailing window.
	for _, game := range games {
		history.Games = append(history.Games, domain.HistoryFromTeamGame(key, game))
	}
	return history
}

func (r *Resolver) resolveCacheKey(cache SeasonCache, team domain.Team) (string, []domain.TeamGame, bool) {
	if games, ok := cache.Games(team.Name); ok {
		return team.Name, games, true
	}
	if r.identity != nil {
		if mapped, ok := r.identity.CrossID(team.ID); ok {
			if games, ok := cache.Games(mapped); ok {
				return mapped, games, true
			}
		}
	}
	if matched, ok := identity.FuzzyMatch(team.Name, cache.TeamNames()); ok {
		if games, ok := cache.Games(matched); ok {
			return matched, games, true
		}
	}
	return "", nil, false
}

// fromScoreboard queries the trailing window live and keeps the team's
// completed games.
func (r *Resolver) fromScoreboard(ctx context.Context, sport domain.Sport, team domain.Team) domain.TeamHistory {
	history := domain.TeamHistory{Team: team, Games: []domain.HistoryEntry{}}

	now := r.now()
	games := r.scoreboard.FetchScoreboardRange(ctx, sport, now.AddDate(0, 0, -liveWindowDays), now)

	var involved []domain.Game
	for _, game := range games {
		if game.Status != domain.StatusFinal {
			continue
		}
		if game.HomeTeamID != team.ID && game.AwayTeamID != team.ID {
			continue
		}
		involved = append(involved, game)
	}
	sort.Slice(involved, func(i, j int) bool {
		return involved[i].StartTime.After(involved[j].StartTime)
	})

	for i, game := range involved {
		if i == historyLimit {
			break
		}
		history.Games = append(history.Games, domain.HistoryEntry{
			Date:     game.StartTime.Format(timeutil.DateLayout),
			HomeTeam: domain.HistorySide{Name: game.HomeTeam, Logo: game.HomeLogo, Score: game.HomeScore},
			AwayTeam: domain.HistorySide{Name: game.AwayTeam, Logo: game.AwayLogo, Score: game.AwayScore},
			Total:    game.HomeScore + game.AwayScore,
		})
	}
	return history
}
