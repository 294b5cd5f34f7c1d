package config

// CacheConfig controls the season cache directory and refresh schedule.
type CacheConfig struct {
	Dir         string
	RefreshHour int // local hour (Eastern) for the daily refresh
}

func loadCache() CacheConfig {
	return CacheConfig{
		Dir:         envOrDefault(envCacheDir, defaultCacheDir),
		RefreshHour: hourEnvOrDefault(envRefreshHour, defaultRefreshHour),
	}
}
