package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nba-schedule-service/internal/http/middleware"
	"nba-schedule-service/internal/logging"
)

// errorResponse is the envelope every non-2xx reply carries. The request ID
// lets a caller quote the exact log line their failure produced.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response",
			slog.Int(logging.FieldStatusCode, status),
			slog.String(logging.FieldReason, err.Error()),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	resp := errorResponse{Error: message, RequestID: requestID(r)}
	if logger != nil && status >= http.StatusInternalServerError {
		logger.Error("request failed",
			slog.Int(logging.FieldStatusCode, status),
			slog.String(logging.FieldReason, message),
			slog.String(logging.FieldRequestID, resp.RequestID),
		)
	}
	writeJSON(w, status, resp, logger)
}

// requestID prefers the ID minted by the logging middleware and falls back to
// the caller-supplied header for handlers mounted without the middleware.
func requestID(r *http.Request) string {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get("X-Request-ID")
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
