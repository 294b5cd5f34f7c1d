package cfbd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/metrics"
	"college-scores-service/internal/providers"
	"college-scores-service/internal/timeutil"
)

// Config controls how the client reaches a college data API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// seasonQueriesFunc builds the query parameter sets a refresh must fetch;
// football needs two seasons around the January bowl boundary.
type seasonQueriesFunc func(now time.Time) []url.Values

// Client downloads season datasets from a CollegeFootballData-style API.
// Unlike the scoreboard client it returns errors: the season cache manager
// keeps its prior snapshot on failure, so it needs the signal.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	queries    seasonQueriesFunc
}

// NewFootballClient constructs a client for the CollegeFootballData API.
func NewFootballClient(cfg Config) *Client {
	return newClient(footballProvider, defaultFootballBaseURL, cfg, footballQueries)
}

// NewBasketballClient constructs a client for the CollegeBasketballData API.
func NewBasketballClient(cfg Config) *Client {
	return newClient(basketballProvider, defaultBasketballBaseURL, cfg, basketballQueries)
}

func newClient(name, defaultBase string, cfg Config, queries seasonQueriesFunc) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBase
	}
	return &Client{
		name:       name,
		baseURL:    strings.TrimSuffix(base, "/"),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		queries:    queries,
	}
}

func footballQueries(now time.Time) []url.Values {
	var queries []url.Values
	for _, year := range timeutil.FootballSeasons(now) {
		queries = append(queries, url.Values{
			"year":       {fmt.Sprintf("%d", year)},
			"seasonType": {"both"},
		})
	}
	return queries
}

func basketballQueries(now time.Time) []url.Values {
	return []url.Values{{
		"season":     {timeutil.BasketballSeason(now)},
		"seasonType": {"both"},
	}}
}

// FetchSeason downloads the season dataset(s) current at now. A missing API
// key returns ErrMissingCredential so the caller can treat the provider as
// disabled rather than failing.
func (c *Client) FetchSeason(ctx context.Context, now time.Time) ([]domain.SeasonGame, error) {
	if c.apiKey == "" {
		return nil, providers.ErrMissingCredential
	}

	var games []domain.SeasonGame
	for _, query := range c.queries(now) {
		rows, err := c.fetchGames(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			games = append(games, mapRow(row))
		}
	}

	logging.Info(c.logger, "season dataset downloaded",
		slog.String(logging.FieldProvider, c.name),
		slog.Int(logging.FieldCount, len(games)),
	)
	return games, nil
}

func (c *Client) fetchGames(ctx context.Context, query url.Values) ([]gameRow, error) {
	start := time.Now()
	rows, err := c.doFetch(ctx, query)
	if c.metrics != nil {
		c.metrics.RecordProviderAttempt(c.name, time.Since(start), err)
	}
	return rows, err
}

func (c *Client) doFetch(ctx context.Context, query url.Values) ([]gameRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   c.name,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var rows []gameRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func mapRow(row gameRow) domain.SeasonGame {
	return domain.SeasonGame{
		ID:         fmt.Sprintf("%d", row.ID),
		Date:       row.startTime(),
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
		HomePoints: row.HomePoints,
		AwayPoints: row.AwayPoints,
		Completed:  row.completed(),
	}
}
