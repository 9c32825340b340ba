package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	appschedule "nba-schedule-service/internal/app/schedule"
	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/poller"
	"nba-schedule-service/internal/providers"
	"nba-schedule-service/internal/schedule"
	"nba-schedule-service/internal/store"
	"nba-schedule-service/internal/testutil"
)

func newTestHandler(provider providers.ScheduleProvider) (*Handler, *store.MemoryStore) {
	st := store.NewMemoryStore()
	svc := appschedule.NewService(st)
	h := NewHandler(svc, provider, nil, time.UTC, nil)
	h.now = testutil.NowAt(testutil.MidSeason2025)
	return h, st
}

func TestHealthOK(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthRejectsNonGet(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	status := poller.Status{}
	h, _ := newTestHandler(&testutil.StubProvider{})
	h.statusFn = func() poller.Status { return status }

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	status = poller.Status{LastSuccess: time.Now()}
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestScheduleRequiresDate(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})
	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestScheduleRejectsMalformedDate(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})

	for _, date := range []string{"03-15-2025", "2025/03/15", "yesterday", "2025-3-15"} {
		rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule?date="+date, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("date %q: expected 400, got %d", date, rr.Code)
		}
	}
}

func TestScheduleServesProviderResult(t *testing.T) {
	provider := &testutil.StubProvider{Games: testutil.SampleSchedule("2025-03-15", "a1", "b2")}
	h, _ := newTestHandler(provider)

	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule?date=2025-03-15", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.DecodeSchedule(t, rr)
	if resp.Date != "2025-03-15" {
		t.Fatalf("unexpected date %q", resp.Date)
	}
	if len(resp.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(resp.Games))
	}
	if provider.Calls() != 1 {
		t.Fatalf("expected 1 provider call, got %d", provider.Calls())
	}
}

func TestScheduleEmptyResultIsOK(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})

	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule?date=2025-07-04", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.DecodeSchedule(t, rr)
	if resp.Games == nil || len(resp.Games) != 0 {
		t.Fatalf("expected empty games list, got %+v", resp.Games)
	}
}

func TestScheduleSessionFailureIsBadGateway(t *testing.T) {
	provider := &testutil.StubProvider{
		Err: &schedule.SessionError{Op: "open", Err: errors.New("connection refused")},
	}
	h, _ := newTestHandler(provider)

	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule?date=2025-03-15", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestScheduleProviderUnavailable(t *testing.T) {
	provider := &testutil.StubProvider{Err: providers.ErrProviderUnavailable}
	h, _ := newTestHandler(provider)

	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule?date=2025-03-15", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestScheduleTodayServesStore(t *testing.T) {
	h, st := newTestHandler(&testutil.StubProvider{})
	// MidSeason2025 is 2025-03-20.
	st.SetSchedule("2025-03-20", testutil.SampleSchedule("2025-03-20", "today-1"))

	rr := testutil.Serve(http.HandlerFunc(h.ScheduleToday), http.MethodGet, "/schedule/today", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.DecodeSchedule(t, rr)
	if resp.Date != "2025-03-20" {
		t.Fatalf("unexpected date %q", resp.Date)
	}
	if len(resp.Games) != 1 || resp.Games[0].GameID != "today-1" {
		t.Fatalf("unexpected games %+v", resp.Games)
	}
}

func TestScheduleTodayColdStoreIsEmptyOK(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})

	rr := testutil.Serve(http.HandlerFunc(h.ScheduleToday), http.MethodGet, "/schedule/today", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.DecodeSchedule(t, rr)
	if resp.Games == nil || len(resp.Games) != 0 {
		t.Fatalf("expected empty games list, got %+v", resp.Games)
	}
}

func TestGameByIDFound(t *testing.T) {
	h, st := newTestHandler(&testutil.StubProvider{})
	st.SetSchedule("2025-03-15", testutil.SampleSchedule("2025-03-15", "abc123def4"))

	rr := testutil.Serve(http.HandlerFunc(h.GameByID), http.MethodGet, "/games/abc123def4", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var game domain.Game
	testutil.DecodeJSON(t, rr, &game)
	if game.GameID != "abc123def4" {
		t.Fatalf("unexpected game %+v", game)
	}
}

func TestGameByIDNotFound(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})
	rr := testutil.Serve(http.HandlerFunc(h.GameByID), http.MethodGet, "/games/missing", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestGameByIDInvalid(t *testing.T) {
	h, _ := newTestHandler(&testutil.StubProvider{})

	for _, path := range []string{"/games/", "/games/bad%20id"} {
		rr := testutil.Serve(http.HandlerFunc(h.GameByID), http.MethodGet, path, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("path %q: expected 400, got %d", path, rr.Code)
		}
	}
}
