package oddsapi

import "time"

const (
	providerName   = "oddsapi"
	defaultBaseURL = "https://api.the-odds-api.com"

	defaultHTTPTimeout = 15 * time.Second

	marketTotals = "totals"
	regionUS     = "us"
)

// sportKeys maps our sport keys onto The Odds API sport identifiers.
var sportKeys = map[string]string{
	"nba":   "basketball_nba",
	"nfl":   "americanfootball_nfl",
	"ncaaf": "americanfootball_ncaaf",
	"ncaab": "basketball_ncaab",
	"nhl":   "icehockey_nhl",
}
