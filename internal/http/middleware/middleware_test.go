package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nba-schedule-service/internal/metrics"
	"nba-schedule-service/internal/testutil"
)

func TestLoggingMiddlewareKeepsValidRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "client-id-1" {
			t.Fatalf("expected incoming request id, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, metrics.NewRecorder(), next)
	req := httptest.NewRequest(http.MethodGet, "/schedule/today", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got != "client-id-1" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, metrics.NewRecorder(), next)
	rr := testutil.Serve(handler, http.MethodGet, "/schedule/today?foo=bar", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestLoggingMiddlewareReplacesMalformedRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, nil, next)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!!")
	rr := testutil.ServeRequest(handler, req)

	if got := rr.Header().Get("X-Request-ID"); got == "" || strings.Contains(got, " ") {
		t.Fatalf("expected sanitized request id, got %q", got)
	}
}

func TestLoggingMiddlewareLogsCompletion(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, nil, next)
	rr := testutil.Serve(handler, http.MethodGet, "/schedule?date=2025-03-15", nil)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	out := buf.String()
	if !strings.Contains(out, "request complete") {
		t.Fatalf("expected completion log, got %q", out)
	}
	if !strings.Contains(out, "status_code=418") {
		t.Fatalf("expected status in log, got %q", out)
	}
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/health", "/health"},
		{"/ready", "/ready"},
		{"/schedule", "/schedule"},
		{"/schedule/today", "/schedule/today"},
		{"/games/abc123def4", "/games/:id"},
		{"/unknown", "/unknown"},
	}
	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("ok_id-123"); got != "ok_id-123" {
		t.Fatalf("expected valid id kept, got %q", got)
	}
	if got := sanitizeRequestID(strings.Repeat("x", 65)); got == strings.Repeat("x", 65) {
		t.Fatalf("expected overlong id replaced")
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatalf("expected generated id for empty input")
	}
}
