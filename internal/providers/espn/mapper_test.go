package espn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-scores-service/internal/domain"
)

func sportNCAAB() domain.Sport {
	s, _ := domain.SportByKey("ncaab")
	return s
}

func eventWithTeams(home, away string) eventResponse {
	return eventResponse{
		ID: "401",
		Competitions: []competitionResponse{{
			Competitors: []competitorResponse{
				{HomeAway: "home", Team: teamResponse{ID: "1", DisplayName: home}, Score: "70"},
				{HomeAway: "away", Team: teamResponse{ID: "2", DisplayName: away}, Score: "68"},
			},
		}},
	}
}

func TestMapEventsExcludesPlaceholderTeams(t *testing.T) {
	tests := []struct {
		name     string
		home     string
		away     string
		excluded bool
	}{
		{name: "regular matchup", home: "Duke Blue Devils", away: "Ohio Bobcats", excluded: false},
		{name: "TBD home side", home: "TBD", away: "Kansas Jayhawks", excluded: true},
		{name: "bracket winner slot", home: "Winner of Game 12", away: "Kansas Jayhawks", excluded: true},
		{name: "bracket loser slot", home: "Gonzaga Bulldogs", away: "Loser of Game 3", excluded: true},
		{name: "empty name", home: "", away: "Kansas Jayhawks", excluded: true},
		{name: "lower-case tbd is not filtered", home: "tbd", away: "Kansas Jayhawks", excluded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := scoreboardResponse{Events: []eventResponse{eventWithTeams(tt.home, tt.away)}}
			games := mapEvents(payload, sportNCAAB(), nil)
			if tt.excluded {
				assert.Empty(t, games)
			} else {
				assert.Len(t, games, 1)
			}
		})
	}
}

func TestMapEventsSkipsMalformedAndKeepsRest(t *testing.T) {
	broken := eventResponse{ID: "bad"} // no competitions
	missingSide := eventResponse{
		ID: "half",
		Competitions: []competitionResponse{{
			Competitors: []competitorResponse{
				{HomeAway: "home", Team: teamResponse{DisplayName: "Duke Blue Devils"}},
			},
		}},
	}
	good := eventWithTeams("Purdue Boilermakers", "Indiana Hoosiers")

	payload := scoreboardResponse{Events: []eventResponse{broken, missingSide, good}}
	games := mapEvents(payload, sportNCAAB(), nil)

	require.Len(t, games, 1)
	assert.Equal(t, "Purdue Boilermakers", games[0].HomeTeam)
}

func TestDeriveStatus(t *testing.T) {
	event := eventWithTeams("Purdue Boilermakers", "Indiana Hoosiers")

	event.Competitions[0].Status.Type = statusTypeResponse{State: "pre"}
	assert.Equal(t, domain.StatusScheduled, deriveStatus(event))

	event.Competitions[0].Status.Type = statusTypeResponse{State: "in"}
	assert.Equal(t, domain.StatusLive, deriveStatus(event))

	event.Competitions[0].Status.Type = statusTypeResponse{State: "post", Completed: true}
	assert.Equal(t, domain.StatusFinal, deriveStatus(event))
}

func TestLiveDetailsFallbackChain(t *testing.T) {
	event := eventWithTeams("Purdue Boilermakers", "Indiana Hoosiers")
	event.Competitions[0].Status.Type = statusTypeResponse{State: "in"}

	// Competition-level status wins when populated.
	event.Competitions[0].Status.Period = 2
	event.Competitions[0].Status.DisplayClock = "12:34"
	event.Status.Period = 1
	event.Status.DisplayClock = "0:01"

	period, clock := liveDetails(event)
	require.NotNil(t, period)
	require.NotNil(t, clock)
	assert.Equal(t, 2, *period)
	assert.Equal(t, "12:34", *clock)

	// Each field independently falls back to the event-level status.
	event.Competitions[0].Status.Period = 0
	event.Competitions[0].Status.DisplayClock = ""
	period, clock = liveDetails(event)
	require.NotNil(t, period)
	require.NotNil(t, clock)
	assert.Equal(t, 1, *period)
	assert.Equal(t, "0:01", *clock)

	// Both nil only when no path yields a value.
	event.Status.Period = 0
	event.Status.DisplayClock = ""
	period, clock = liveDetails(event)
	assert.Nil(t, period)
	assert.Nil(t, clock)
}

func TestMapEventPeriodClockOnlyWhenLive(t *testing.T) {
	event := eventWithTeams("Purdue Boilermakers", "Indiana Hoosiers")
	event.Competitions[0].Status = statusResponse{
		Period:       2,
		DisplayClock: "5:00",
		Type:         statusTypeResponse{State: "post", Completed: true},
	}

	game, err := mapEvent(event, sportNCAAB())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinal, game.Status)
	assert.Nil(t, game.Period)
	assert.Nil(t, game.Clock)
}

func TestExtractTotalUsesFirstAvailableLine(t *testing.T) {
	line := 145.5
	odds := []oddsResponse{
		{Provider: oddsProviderResponse{Name: "no line book"}},
		{OverUnder: &line, Provider: oddsProviderResponse{Name: "ESPN BET"}},
	}

	total, bookmaker, ok := extractTotal(odds)
	require.True(t, ok)
	assert.Equal(t, 145.5, total)
	assert.Equal(t, "ESPN BET", bookmaker)

	_, _, ok = extractTotal(nil)
	assert.False(t, ok)
}

func TestParseScoreDefaultsToZero(t *testing.T) {
	assert.Equal(t, 0, parseScore(""))
	assert.Equal(t, 0, parseScore("not-a-number"))
	assert.Equal(t, 0, parseScore("-3"))
	assert.Equal(t, 71, parseScore(" 71 "))
}

func TestMapTeams(t *testing.T) {
	raw := `{
		"sports": [{
			"leagues": [{
				"teams": [
					{"team": {"id": "194", "displayName": "Ohio State Buckeyes", "logos": [{"href": "https://cdn/logo.png"}]}},
					{"team": {"id": "195"}}
				]
			}]
		}]
	}`
	var payload teamsResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	teams := mapTeams(payload, sportNCAAB())
	require.Len(t, teams, 1)
	assert.Equal(t, "Ohio State Buckeyes", teams[0].Name)
	assert.Equal(t, "https://cdn/logo.png", teams[0].Logo)
	assert.Equal(t, "ncaab", teams[0].Sport)
}
