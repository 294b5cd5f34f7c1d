// Package oddsapi fetches totals (over/under) lines from The Odds API. The
// lines supplement scoreboard odds for games where the scoreboard feed
// carries none. The client degrades to an empty result on any failure so a
// missing line never blocks a scores response.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/metrics"
	"college-scores-service/internal/providers"
)

// Config controls how the client reaches The Odds API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client is a totals provider backed by The Odds API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewClient constructs a totals client. A client without an API key is
// valid; it reports no lines.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// Enabled reports whether the client has a credential to call with.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// FetchTotals returns the totals lines currently offered for a sport. It
// never fails: a disabled client, an unmapped sport, or an upstream error
// all yield an empty slice.
func (c *Client) FetchTotals(ctx context.Context, sport domain.Sport) []domain.OddsTotal {
	if !c.Enabled() {
		return []domain.OddsTotal{}
	}
	key, ok := sportKeys[sport.Key]
	if !ok {
		return []domain.OddsTotal{}
	}

	start := time.Now()
	events, err := c.fetchEvents(ctx, key)
	if c.metrics != nil {
		c.metrics.RecordProviderAttempt(providerName, time.Since(start), err)
	}
	if err != nil {
		logging.Warn(c.logger, "odds fetch failed, continuing without lines",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldSport, sport.Key),
			"error", err,
		)
		return []domain.OddsTotal{}
	}

	totals := make([]domain.OddsTotal, 0, len(events))
	for _, event := range events {
		if total, ok := extractTotal(event); ok {
			totals = append(totals, total)
		}
	}
	return totals
}

func (c *Client) fetchEvents(ctx context.Context, sportKey string) ([]eventResponse, error) {
	query := url.Values{
		"apiKey":  {c.apiKey},
		"regions": {regionUS},
		"markets": {marketTotals},
	}
	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds?%s", c.baseURL, sportKey, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &providers.StatusError{Provider: providerName, StatusCode: resp.StatusCode}
	}

	var events []eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

// extractTotal pulls the first totals point offered for an event, noting
// which bookmaker offered it.
func extractTotal(event eventResponse) (domain.OddsTotal, bool) {
	for _, bookmaker := range event.Bookmakers {
		for _, market := range bookmaker.Markets {
			if market.Key != marketTotals {
				continue
			}
			for _, outcome := range market.Outcomes {
				if outcome.Point == nil {
					continue
				}
				return domain.OddsTotal{
					HomeTeam:  event.HomeTeam,
					AwayTeam:  event.AwayTeam,
					Total:     *outcome.Point,
					Bookmaker: bookmaker.Title,
				}, true
			}
		}
	}
	return domain.OddsTotal{}, false
}
