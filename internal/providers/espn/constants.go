package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second
	// scoreboardLimit lifts ESPN's default page size so a full college slate
	// fits in one response.
	scoreboardLimit = 500
	// collegeGroups selects all Division I games; without it the scoreboard
	// only returns ranked matchups.
	collegeGroups = "50"
)
