package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envCacheDir     = "CACHE_DIR"
	envRefreshHour  = "CACHE_REFRESH_HOUR"
	envESPNBaseURL  = "ESPN_BASE_URL"
	envCFBDBaseURL  = "CFBD_BASE_URL"
	envCFBDAPIKey   = "CFBD_API_KEY"
	envCBBDBaseURL  = "CBBD_BASE_URL"
	envCBBDAPIKey   = "CBBD_API_KEY"
	envOddsBaseURL  = "ODDS_API_BASE_URL"
	envOddsAPIKey   = "ODDS_API_KEY"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Conservative default poll interval; the ESPN site API is undocumented
	// and aggressive polling gets throttled.
	defaultPollInterval = 60 * Duration(time.Second)
	defaultCacheDir     = "data/cache"
	// Local hour (Eastern) for the daily season cache refresh.
	defaultRefreshHour = 2
	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultCFBDBaseURL = "https://api.collegefootballdata.com"
	defaultCBBDBaseURL = "https://api.collegebasketballdata.com"
	defaultOddsBaseURL = "https://api.the-odds-api.com"
	defaultMetricsPort = "9090"
)
