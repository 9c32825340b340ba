package config

import "time"

const (
	envPort         = "PORT"
	envTimezone     = "TIMEZONE"
	envProvider     = "PROVIDER"
	envPollInterval = "POLL_INTERVAL"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envNBAScheduleURL  = "NBA_SCHEDULE_URL"
	envNBAUserAgent    = "NBA_USER_AGENT"
	envNBAHTTPTimeout  = "NBA_HTTP_TIMEOUT"
	envNBAReadyTimeout = "NBA_READY_TIMEOUT"
	envNBAReadyPoll    = "NBA_READY_POLL"
	envNBADumpHTML     = "NBA_DUMP_HTML"
	envScrapeInterval  = "SCRAPE_MIN_INTERVAL"

	defaultPort = "4000"
	// All "current time" evaluations inside date resolution use this zone;
	// the schedule page itself renders Eastern tip-off times.
	defaultTimezone = "America/New_York"
	defaultProvider = "nbacom"
	// Conservative refresh cadence: each poll is a full page scrape.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultMetricsPort  = "9090"

	// MONTH is substituted with the target month's name at fetch time; the
	// page only renders one month of schedule at once.
	defaultNBAScheduleURL  = "https://www.nba.com/schedule?cal=MONTH"
	defaultNBAUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultNBAHTTPTimeout  = 30 * Duration(time.Second)
	defaultNBAReadyTimeout = 15 * Duration(time.Second)
	defaultNBAReadyPoll    = 2 * Duration(time.Second)
	// Minimum spacing between upstream scrapes, shared by all callers.
	defaultScrapeInterval = 30 * Duration(time.Second)
)
