package cfbd

import "time"

const (
	footballProvider   = "cfbd"
	basketballProvider = "cbbd"

	defaultFootballBaseURL   = "https://api.collegefootballdata.com"
	defaultBasketballBaseURL = "https://api.collegebasketballdata.com"
	defaultHTTPTimeout       = 30 * time.Second
)
