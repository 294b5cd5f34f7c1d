package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/metrics"
	"college-scores-service/internal/providers"
	"college-scores-service/internal/timeutil"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches games and teams from the ESPN site API and maps them to
// domain models. Upstream failures degrade to empty results at this
// boundary; they are logged and counted but never propagated.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// FetchScoreboard retrieves the current scoreboard for a sport. Today-only
// sports use the calendar date in the reference timezone; window sports
// cover [today, today+N].
func (c *Client) FetchScoreboard(ctx context.Context, sport domain.Sport) []domain.Game {
	now := c.now()
	dates := timeutil.ScoreboardDate(now)
	if sport.WindowDays > 0 {
		dates = timeutil.ScoreboardRange(now, now.AddDate(0, 0, sport.WindowDays))
	}
	return c.scoreboard(ctx, sport, dates)
}

// FetchScoreboardRange retrieves the scoreboard for an explicit inclusive
// date range, used for trailing history windows.
func (c *Client) FetchScoreboardRange(ctx context.Context, sport domain.Sport, from, to time.Time) []domain.Game {
	return c.scoreboard(ctx, sport, timeutil.ScoreboardRange(from, to))
}

// FetchTeams retrieves the team list for a sport.
func (c *Client) FetchTeams(ctx context.Context, sport domain.Sport) []domain.Team {
	start := time.Now()
	var payload teamsResponse
	err := c.getJSON(ctx, c.teamsURL(sport), &payload)
	if c.metrics != nil {
		c.metrics.RecordProviderAttempt(providerName, time.Since(start), err)
	}
	if err != nil {
		logging.Warn(c.logger, "teams fetch failed",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldSport, sport.Key),
			"error", err,
		)
		return []domain.Team{}
	}
	return mapTeams(payload, sport)
}

func (c *Client) scoreboard(ctx context.Context, sport domain.Sport, dates string) []domain.Game {
	start := time.Now()
	var payload scoreboardResponse
	err := c.getJSON(ctx, c.scoreboardURL(sport, dates), &payload)
	if c.metrics != nil {
		c.metrics.RecordProviderAttempt(providerName, time.Since(start), err)
	}
	if err != nil {
		logging.Warn(c.logger, "scoreboard fetch failed",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldSport, sport.Key),
			"error", err,
		)
		return []domain.Game{}
	}
	return mapEvents(payload, sport, c.logger)
}

func (c *Client) scoreboardURL(sport domain.Sport, dates string) string {
	url := fmt.Sprintf("%s/%s/scoreboard?dates=%s&limit=%d", c.baseURL, sport.ESPNPath, dates, scoreboardLimit)
	if sport.CacheBacked {
		url += "&groups=" + collegeGroups
	}
	return url
}

func (c *Client) teamsURL(sport domain.Sport) string {
	return fmt.Sprintf("%s/%s/teams?limit=%d", c.baseURL, sport.ESPNPath, scoreboardLimit)
}

func (c *Client) getJSON(ctx context.Context, url string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}

func parseScore(raw string) int {
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || val < 0 {
		return 0
	}
	return val
}
