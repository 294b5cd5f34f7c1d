package domain

// Sport describes one configured sport and how its data is sourced.
// WindowDays > 0 means scoreboard queries cover [today, today+WindowDays];
// zero means today only. CacheBacked sports serve history from the season
// cache instead of live scoreboard queries.
type Sport struct {
	Key         string
	Name        string
	ESPNPath    string
	WindowDays  int
	CacheBacked bool
}

// Sports returns the declared sport list. Aggregated responses follow this
// order regardless of fetch completion order.
func Sports() []Sport {
	return []Sport{
		{Key: "nba", Name: "NBA", ESPNPath: "basketball/nba"},
		{Key: "nfl", Name: "NFL", ESPNPath: "football/nfl", WindowDays: 7},
		{Key: "ncaaf", Name: "College Football", ESPNPath: "football/college-football", WindowDays: 7, CacheBacked: true},
		{Key: "ncaab", Name: "College Basketball", ESPNPath: "basketball/mens-college-basketball", CacheBacked: true},
		{Key: "nhl", Name: "NHL", ESPNPath: "hockey/nhl"},
	}
}

// SportByKey looks up a declared sport.
func SportByKey(key string) (Sport, bool) {
	for _, s := range Sports() {
		if s.Key == key {
			return s, true
		}
	}
	return Sport{}, false
}
