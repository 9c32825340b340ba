package logging

import "log/slog"

// The extractor and the DOM session treat their logger as optional. These
// wrappers absorb the nil check so scrape code reads as straight-line logging.

// Info logs at info level, dropping the entry when no logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level, dropping the entry when no logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
