package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"nba-schedule-service/internal/domain"
)

// ErrorBody mirrors the JSON envelope failed requests carry.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// Serve runs one request through the handler and returns the recording.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	return ServeRequest(h, httptest.NewRequest(method, path, body))
}

// ServeRequest runs a prebuilt request through the handler. Use this when the
// test needs headers or a custom context on the request.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus fails the test unless the recorded status matches.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rr.Code, rr.Body.String())
	}
}

// DecodeJSON decodes the recorded body into dest.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// DecodeSchedule decodes the payload shape /schedule and /schedule/today return.
func DecodeSchedule(t *testing.T, rr *httptest.ResponseRecorder) domain.ScheduleResponse {
	t.Helper()
	var resp domain.ScheduleResponse
	DecodeJSON(t, rr, &resp)
	return resp
}

// DecodeError decodes the error envelope of a failed request.
func DecodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	DecodeJSON(t, rr, &body)
	return body
}
