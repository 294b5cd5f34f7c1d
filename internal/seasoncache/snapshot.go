// Package seasoncache maintains on-disk season datasets for cache-backed
// sports. College season data changes at most daily, so each sport keeps a
// timestamped snapshot that is reloaded at startup and refreshed on a daily
// schedule. A failed refresh never discards the previous snapshot.
package seasoncache

import (
	"sort"
	"time"

	"college-scores-service/internal/domain"
)

// staleAfter is how old a snapshot may be before it needs a refresh.
const staleAfter = 24 * time.Hour

// Snapshot is the persisted form of one sport's season cache.
type Snapshot struct {
	Timestamp time.Time          `json:"timestamp"`
	Data      domain.SeasonIndex `json:"data"`
}

// Stale reports whether the snapshot is older than the staleness window.
func (s Snapshot) Stale(now time.Time) bool {
	if s.Timestamp.IsZero() {
		return true
	}
	return now.Sub(s.Timestamp) > staleAfter
}

// buildIndex turns a season dataset into a per-team index. Only completed
// games with scores on both sides are indexed; basketball datasets in
// particular include the full future schedule. Every game lands in both
// participants' lists, annotated relative to that team, most recent first.
func buildIndex(games []domain.SeasonGame) domain.SeasonIndex {
	index := make(domain.SeasonIndex)
	for _, game := range games {
		if !game.Completed || !game.Scored() {
			continue
		}
		index[game.HomeTeam] = append(index[game.HomeTeam], domain.TeamGame{
			Date:          game.Date,
			Opponent:      game.AwayTeam,
			IsHome:        true,
			TeamScore:     *game.HomePoints,
			OpponentScore: *game.AwayPoints,
		})
		index[game.AwayTeam] = append(index[game.AwayTeam], domain.TeamGame{
			Date:          game.Date,
			Opponent:      game.HomeTeam,
			IsHome:        false,
			TeamScore:     *game.AwayPoints,
			OpponentScore: *game.HomePoints,
		})
	}
	for team := range index {
		list := index[team]
		sort.Slice(list, func(i, j int) bool {
			return list[i].Date.After(list[j].Date)
		})
	}
	return index
}
