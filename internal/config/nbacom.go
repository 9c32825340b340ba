package config

// NBAConfig controls how the scraper reaches the nba.com schedule page.
type NBAConfig struct {
	ScheduleURL    string
	UserAgent      string
	HTTPTimeout    Duration
	ReadyTimeout   Duration
	ReadyPoll      Duration
	DumpHTML       bool
	ScrapeInterval Duration
}

func loadNBA() NBAConfig {
	return NBAConfig{
		ScheduleURL:    envOrDefault(envNBAScheduleURL, defaultNBAScheduleURL),
		UserAgent:      envOrDefault(envNBAUserAgent, defaultNBAUserAgent),
		HTTPTimeout:    durationEnvOrDefault(envNBAHTTPTimeout, defaultNBAHTTPTimeout),
		ReadyTimeout:   durationEnvOrDefault(envNBAReadyTimeout, defaultNBAReadyTimeout),
		ReadyPoll:      durationEnvOrDefault(envNBAReadyPoll, defaultNBAReadyPoll),
		DumpHTML:       boolEnvOrDefault(envNBADumpHTML, false),
		ScrapeInterval: durationEnvOrDefault(envScrapeInterval, defaultScrapeInterval),
	}
}
