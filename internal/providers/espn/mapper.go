package espn

import (
	"errors"
	"log/slog"
	"strings"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
)

// placeholderNames mark events whose participants are not yet decided
// (tournament brackets, TBD slots). Matching is a case-sensitive substring
// check; lower-case variants are deliberately not excluded.
var placeholderNames = []string{"TBD", "Winner", "Loser"}

var (
	errNoCompetition = errors.New("event has no competition")
	errMissingTeam   = errors.New("competitor side missing")
	errPlaceholder   = errors.New("placeholder team name")
	errEmptyTeamName = errors.New("empty team name")
)

// mapEvents normalizes a scoreboard payload. A malformed event is skipped
// and logged; it never aborts the batch.
func mapEvents(payload scoreboardResponse, sport domain.Sport, logger *slog.Logger) []domain.Game {
	games := make([]domain.Game, 0, len(payload.Events))
	for _, event := range payload.Events {
		game, err := mapEvent(event, sport)
		if err != nil {
			logging.Warn(logger, "skipping event",
				slog.String(logging.FieldSport, sport.Key),
				"event_id", event.ID,
				"reason", err.Error(),
			)
			continue
		}
		games = append(games, game)
	}
	return games
}

func mapEvent(event eventResponse, sport domain.Sport) (domain.Game, error) {
	if len(event.Competitions) == 0 {
		return domain.Game{}, errNoCompetition
	}
	comp := event.Competitions[0]

	home, homeOK := findCompetitor(comp.Competitors, "home")
	away, awayOK := findCompetitor(comp.Competitors, "away")
	if !homeOK || !awayOK {
		return domain.Game{}, errMissingTeam
	}

	homeName := displayName(home.Team)
	awayName := displayName(away.Team)
	if err := validTeamName(homeName); err != nil {
		return domain.Game{}, err
	}
	if err := validTeamName(awayName); err != nil {
		return domain.Game{}, err
	}

	game := domain.Game{
		ID:         event.ID,
		Sport:      sport.Key,
		SportName:  sport.Name,
		HomeTeam:   homeName,
		AwayTeam:   awayName,
		HomeTeamID: home.Team.ID,
		AwayTeamID: away.Team.ID,
		HomeLogo:   teamLogo(home.Team),
		AwayLogo:   teamLogo(away.Team),
		HomeScore:  parseScore(home.Score),
		AwayScore:  parseScore(away.Score),
		Status:     deriveStatus(event),
		StartTime:  event.Date.Time,
	}

	if line, bookmaker, ok := extractTotal(comp.Odds); ok {
		game.TotalLine = &line
		game.Bookmaker = &bookmaker
	}

	if game.Status == domain.StatusLive {
		game.Period, game.Clock = liveDetails(event)
	}

	return game, nil
}

func findCompetitor(competitors []competitorResponse, side string) (competitorResponse, bool) {
	for _, c := range competitors {
		if c.HomeAway == side {
			return c, true
		}
	}
	return competitorResponse{}, false
}

func displayName(team teamResponse) string {
	if team.DisplayName != "" {
		return team.DisplayName
	}
	return strings.TrimSpace(team.Location + " " + team.Name)
}

func validTeamName(name string) error {
	if name == "" {
		return errEmptyTeamName
	}
	for _, placeholder := range placeholderNames {
		if strings.Contains(name, placeholder) {
			return errPlaceholder
		}
	}
	return nil
}

func teamLogo(team teamResponse) string {
	if team.Logo != "" {
		return team.Logo
	}
	if len(team.Logos) > 0 {
		return team.Logos[0].Href
	}
	return ""
}

// extractTotal returns the over/under from the first odds entry that carries
// one.
func extractTotal(odds []oddsResponse) (float64, string, bool) {
	for _, o := range odds {
		if o.OverUnder != nil {
			return *o.OverUnder, o.Provider.Name, true
		}
	}
	return 0, "", false
}

func deriveStatus(event eventResponse) domain.GameStatus {
	status := event.Status
	if len(event.Competitions) > 0 && event.Competitions[0].Status.Type.State != "" {
		status = event.Competitions[0].Status
	}
	switch {
	case status.Type.Completed:
		return domain.StatusFinal
	case status.Type.State == "in":
		return domain.StatusLive
	default:
		return domain.StatusScheduled
	}
}

// liveDetails extracts period and clock through an ordered list of
// extraction paths: competition-level status first, then event-level. Each
// field independently takes the first non-empty value; both stay nil only
// when no path yields one.
func liveDetails(event eventResponse) (*int, *string) {
	sources := make([]statusResponse, 0, 2)
	if len(event.Competitions) > 0 {
		sources = append(sources, event.Competitions[0].Status)
	}
	sources = append(sources, event.Status)

	var period *int
	var clock *string
	for _, s := range sources {
		if period == nil && s.Period > 0 {
			p := s.Period
			period = &p
		}
		if clock == nil && s.DisplayClock != "" {
			c := s.DisplayClock
			clock = &c
		}
	}
	return period, clock
}

func mapTeams(payload teamsResponse, sport domain.Sport) []domain.Team {
	var teams []domain.Team
	for _, s := range payload.Sports {
		for _, league := range s.Leagues {
			for _, entry := range league.Teams {
				name := displayName(entry.Team)
				if name == "" {
					continue
				}
				teams = append(teams, domain.Team{
					ID:    entry.Team.ID,
					Name:  name,
					Logo:  teamLogo(entry.Team),
					Sport: sport.Key,
				})
			}
		}
	}
	return teams
}
