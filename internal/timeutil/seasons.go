package timeutil

import (
	"fmt"
	"time"
)

// FootballSeasons returns the season years a football cache refresh should
// cover. The current calendar year is always included; during January the
// prior year is fetched as well so bowl and postseason games that spill over
// the year boundary stay visible.
func FootballSeasons(now time.Time) []int {
	now = now.In(Eastern())
	years := []int{now.Year()}
	if now.Month() == time.January {
		years = append(years, now.Year()-1)
	}
	return years
}

// BasketballSeason returns the season label for a college basketball season
// at the given instant. Seasons span two calendar years and are labeled by
// the later one; from November onward the season in progress belongs to the
// following year's label.
func BasketballSeason(now time.Time) string {
	now = now.In(Eastern())
	year := now.Year()
	if now.Month() >= time.November {
		year++
	}
	return fmt.Sprintf("%d", year)
}
