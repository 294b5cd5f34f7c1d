package config

// ESPNConfig controls how we talk to the ESPN site API.
type ESPNConfig struct {
	BaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
	}
}

// CollegeDataConfig covers the CollegeFootballData-style season APIs.
// An empty APIKey disables season refreshes for that sport; the rest of the
// service keeps running.
type CollegeDataConfig struct {
	BaseURL string
	APIKey  string
}

func loadCFBD() CollegeDataConfig {
	return CollegeDataConfig{
		BaseURL: envOrDefault(envCFBDBaseURL, defaultCFBDBaseURL),
		APIKey:  envOrDefault(envCFBDAPIKey, ""),
	}
}

func loadCBBD() CollegeDataConfig {
	return CollegeDataConfig{
		BaseURL: envOrDefault(envCBBDBaseURL, defaultCBBDBaseURL),
		APIKey:  envOrDefault(envCBBDAPIKey, ""),
	}
}

// OddsConfig controls the commercial odds API. An empty APIKey disables the
// provider; totals then come only from the scoreboard payloads.
type OddsConfig struct {
	BaseURL string
	APIKey  string
}

func loadOdds() OddsConfig {
	return OddsConfig{
		BaseURL: envOrDefault(envOddsBaseURL, defaultOddsBaseURL),
		APIKey:  envOrDefault(envOddsAPIKey, ""),
	}
}

// Configured reports whether the odds provider has a credential.
func (c OddsConfig) Configured() bool {
	return c.APIKey != ""
}
