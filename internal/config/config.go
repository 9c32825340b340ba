package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Timezone     string
	Provider     string
	PollInterval Duration
	LogLevel     string
	LogFormat    string
	NBA          NBAConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Timezone:     envOrDefault(envTimezone, defaultTimezone),
		Provider:     envOrDefault(envProvider, defaultProvider),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		LogLevel:     envOrDefault(envLogLevel, ""),
		LogFormat:    envOrDefault(envLogFormat, ""),
		NBA:          loadNBA(),
		Metrics:      loadMetrics(),
	}
}
