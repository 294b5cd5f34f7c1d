package domain

import "time"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// Game is the canonical game shape exposed by the service. Period and Clock
// are populated only while a game is live; TotalLine and Bookmaker only when
// an over/under line is known.
type Game struct {
	ID         string     `json:"id"`
	Sport      string     `json:"sport"`
	SportName  string     `json:"sportName"`
	HomeTeam   string     `json:"homeTeam"`
	AwayTeam   string     `json:"awayTeam"`
	HomeTeamID string     `json:"homeTeamId,omitempty"`
	AwayTeamID string     `json:"awayTeamId,omitempty"`
	HomeLogo   string     `json:"homeLogo,omitempty"`
	AwayLogo   string     `json:"awayLogo,omitempty"`
	HomeScore  int        `json:"homeScore"`
	AwayScore  int        `json:"awayScore"`
	TotalLine  *float64   `json:"totalLine"`
	Bookmaker  *string    `json:"bookmaker"`
	Status     GameStatus `json:"status"`
	Period     *int       `json:"period"`
	Clock      *string    `json:"clock"`
	StartTime  time.Time  `json:"startTime"`
}

// Live reports whether the game is currently in progress.
func (g Game) Live() bool {
	return g.Status == StatusLive
}

// Team is a provider-native team identity. Teams are recomputed on every
// teams query; there is no persistent identity beyond the provider's own.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"`
	Sport string `json:"sport"`
}

// HistorySide is one side of a past game in a team history response.
type HistorySide struct {
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"`
	Score int    `json:"score"`
}

// HistoryEntry is a single completed game in a team's history, most recent
// first. Total is the sum of both scores.
type HistoryEntry struct {
	Date     string      `json:"date"`
	HomeTeam HistorySide `json:"homeTeam"`
	AwayTeam HistorySide `json:"awayTeam"`
	Total    int         `json:"total"`
}

// TeamHistory is the payload returned by /api/team-history/{teamId}.
type TeamHistory struct {
	Team  Team           `json:"team"`
	Games []HistoryEntry `json:"games"`
}

// TeamGame is one game in a season cache index, annotated relative to the
// team whose list it belongs to.
type TeamGame struct {
	Date          time.Time `json:"date"`
	Opponent      string    `json:"opponent"`
	IsHome        bool      `json:"isHome"`
	TeamScore     int       `json:"teamScore"`
	OpponentScore int       `json:"opponentScore"`
}

// SeasonIndex maps a team name to its games for the season, most recent
// first.
type SeasonIndex = map[string][]TeamGame

// HistoryFromTeamGame expands an annotated cache entry back into the
// home/away shape used by history responses.
func HistoryFromTeamGame(owner string, g TeamGame) HistoryEntry {
	entry := HistoryEntry{
		Date:  g.Date.Format("2006-01-02"),
		Total: g.TeamScore + g.OpponentScore,
	}
	if g.IsHome {
		entry.HomeTeam = HistorySide{Name: owner, Score: g.TeamScore}
		entry.AwayTeam = HistorySide{Name: g.Opponent, Score: g.OpponentScore}
	} else {
		entry.HomeTeam = HistorySide{Name: g.Opponent, Score: g.OpponentScore}
		entry.AwayTeam = HistorySide{Name: owner, Score: g.TeamScore}
	}
	return entry
}
