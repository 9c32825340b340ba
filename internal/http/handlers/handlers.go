package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	appschedule "nba-schedule-service/internal/app/schedule"
	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/logging"
	"nba-schedule-service/internal/poller"
	"nba-schedule-service/internal/providers"
	"nba-schedule-service/internal/schedule"
	"nba-schedule-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the schedule service and provider.
type Handler struct {
	svc      *appschedule.Service
	provider providers.ScheduleProvider
	logger   *slog.Logger
	loc      *time.Location
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. A nil location means UTC.
func NewHandler(svc *appschedule.Service, provider providers.ScheduleProvider, logger *slog.Logger, loc *time.Location, statusFn func() poller.Status) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		svc:      svc,
		provider: provider,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Schedule scrapes and returns the games for an explicitly requested date.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, r, http.StatusBadRequest, "missing date parameter (expected YYYY-MM-DD)", h.logger)
		return
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	games, err := h.provider.FetchSchedule(r.Context(), date)
	if err != nil {
		status, msg := classifyFetchError(err)
		if logger != nil {
			logger.Error("schedule fetch failed", logging.FieldDate, date, "err", err)
		}
		writeError(w, r, status, msg, h.logger)
		return
	}

	if logger != nil {
		logger.Info("served scraped schedule", logging.FieldDate, date, logging.FieldCount, len(games))
	}
	writeJSON(w, http.StatusOK, domain.NewScheduleResponse(date, games), h.logger)
}

// ScheduleToday serves today's schedule from the poller-refreshed store.
func (h *Handler) ScheduleToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date := timeutil.FormatDate(h.now().In(h.loc))
	games, ok := h.svc.ScheduleFor(date)

	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served cached schedule",
			logging.FieldDate, date,
			logging.FieldCount, len(games),
			"warm", ok,
		)
	}
	writeJSON(w, http.StatusOK, domain.NewScheduleResponse(date, games), h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	// Expect path: /games/{id}
	path := strings.TrimPrefix(r.URL.Path, "/games")
	if path == "" || path == "/" {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	idRaw := strings.TrimPrefix(path, "/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.svc.GameByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, game, h.logger)
}

// classifyFetchError maps provider failures to response codes. Bad input is
// the client's fault; everything upstream is a gateway problem.
func classifyFetchError(err error) (int, string) {
	if _, ok := schedule.AsParseError(err); ok {
		return http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)"
	}
	if _, ok := schedule.AsSessionError(err); ok {
		return http.StatusBadGateway, "schedule source unavailable"
	}
	if err == providers.ErrProviderUnavailable {
		return http.StatusServiceUnavailable, "provider unavailable"
	}
	return http.StatusBadGateway, "schedule fetch failed"
}
