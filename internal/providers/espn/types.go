package espn

import (
	"strings"
	"time"
)

// espnTime unmarshals both full RFC3339 timestamps and the shorter
// "YYYY-MM-DDThh:mmZ" strings some ESPN endpoints return.
type espnTime struct {
	time.Time
}

func (t *espnTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
	}

	var parseErr error
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		} else {
			parseErr = err
		}
	}
	return parseErr
}

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         espnTime              `json:"date"`
	Name         string                `json:"name"`
	ShortName    string                `json:"shortName"`
	Competitions []competitionResponse `json:"competitions"`
	Status       statusResponse        `json:"status"`
}

type competitionResponse struct {
	ID          string               `json:"id"`
	Date        espnTime             `json:"date"`
	Competitors []competitorResponse `json:"competitors"`
	Odds        []oddsResponse       `json:"odds"`
	Status      statusResponse       `json:"status"`
}

type competitorResponse struct {
	ID       string       `json:"id"`
	HomeAway string       `json:"homeAway"`
	Winner   bool         `json:"winner"`
	Team     teamResponse `json:"team"`
	Score    string       `json:"score"`
}

type teamResponse struct {
	ID               string         `json:"id"`
	Location         string         `json:"location"`
	Name             string         `json:"name"`
	Abbreviation     string         `json:"abbreviation"`
	DisplayName      string         `json:"displayName"`
	ShortDisplayName string         `json:"shortDisplayName"`
	Logo             string         `json:"logo"`
	Logos            []logoResponse `json:"logos"`
}

type logoResponse struct {
	Href string `json:"href"`
}

type statusResponse struct {
	Clock        float64            `json:"clock"`
	DisplayClock string             `json:"displayClock"`
	Period       int                `json:"period"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
}

type oddsResponse struct {
	Details   string               `json:"details"`
	OverUnder *float64             `json:"overUnder"`
	Provider  oddsProviderResponse `json:"provider"`
}

type oddsProviderResponse struct {
	Name string `json:"name"`
}

// teamsResponse covers the nested shape of the /teams endpoint.
type teamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team teamResponse `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}
