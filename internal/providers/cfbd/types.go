package cfbd

import (
	"strings"
	"time"
)

// gameRow is one season game as returned by the CollegeFootballData and
// CollegeBasketballData /games endpoints. The two APIs share most of the
// shape; football reports a completed flag, basketball a status string.
type gameRow struct {
	ID         int64  `json:"id"`
	StartDate  string `json:"startDate"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	HomePoints *int   `json:"homePoints"`
	AwayPoints *int   `json:"awayPoints"`
	Completed  *bool  `json:"completed"`
	Status     string `json:"status"`
}

func (r gameRow) completed() bool {
	if r.Completed != nil {
		return *r.Completed
	}
	return strings.EqualFold(r.Status, "final")
}

func (r gameRow) startTime() time.Time {
	parsed, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
