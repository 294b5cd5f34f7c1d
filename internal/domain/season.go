package domain

import "time"

// SeasonGame is one row of a season dataset as delivered by a college data
// provider. Points are pointers because the upstream omits them for games
// that have not been played (or not been scored) yet.
type SeasonGame struct {
	ID         string
	Date       time.Time
	HomeTeam   string
	AwayTeam   string
	HomePoints *int
	AwayPoints *int
	Completed  bool
}

// Scored reports whether both sides have a recorded score.
func (g SeasonGame) Scored() bool {
	return g.HomePoints != nil && g.AwayPoints != nil
}

// OddsTotal is an over/under line for one matchup from the odds provider.
type OddsTotal struct {
	HomeTeam  string
	AwayTeam  string
	Total     float64
	Bookmaker string
}
