package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Cache        CacheConfig
	ESPN         ESPNConfig
	CFBD         CollegeDataConfig
	CBBD         CollegeDataConfig
	Odds         OddsConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Cache:        loadCache(),
		ESPN:         loadESPN(),
		CFBD:         loadCFBD(),
		CBBD:         loadCBBD(),
		Odds:         loadOdds(),
		Metrics:      loadMetrics(),
	}
}
