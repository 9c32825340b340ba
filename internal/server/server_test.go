package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	appschedule "nba-schedule-service/internal/app/schedule"
	"nba-schedule-service/internal/config"
	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/poller"
	"nba-schedule-service/internal/providers/fixture"
	"nba-schedule-service/internal/providers/nbacom"
	"nba-schedule-service/internal/store"
	"nba-schedule-service/internal/testutil"
)

type notifyingProvider struct {
	games  []domain.Game
	err    error
	notify chan struct{}
}

func (s *notifyingProvider) FetchSchedule(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx
	_ = date
	if s.notify != nil {
		select {
		case <-s.notify:
		default:
			close(s.notify)
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.games, nil
}

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(ctx context.Context) { _ = ctx; p.startCalls++ }

func (p *stubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status { return p.status }

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func TestServerServesHealthAndSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &notifyingProvider{
		games:  []domain.Game{testutil.SampleGame("stub-1")},
		notify: make(chan struct{}),
	}

	cfg := config.Config{
		PollInterval: 5 * time.Millisecond,
		Metrics:      config.MetricsConfig{Enabled: false},
	}
	srv := newServerWithProvider(cfg, nil, provider)
	srv.poller.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	router := srv.Handler()

	healthRec := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, healthRec, http.StatusOK)

	// The poller needs a beat to hand the snapshot to the store.
	deadline := time.Now().Add(500 * time.Millisecond)
	for {
		rec := testutil.Serve(router, http.MethodGet, "/schedule/today", nil)
		testutil.AssertStatus(t, rec, http.StatusOK)

		today := testutil.DecodeSchedule(t, rec)
		if len(today.Games) == 1 && today.Games[0].GameID == "stub-1" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("schedule never populated, last response %+v", today)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &notifyingProvider{
		err:    context.DeadlineExceeded,
		notify: make(chan struct{}),
	}

	cfg := config.Config{
		PollInterval: 5 * time.Millisecond,
		Metrics:      config.MetricsConfig{Enabled: false},
	}
	srv := newServerWithProvider(cfg, nil, provider)
	srv.poller.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	rec := testutil.Serve(srv.Handler(), http.MethodGet, "/schedule/today", nil)
	testutil.AssertStatus(t, rec, http.StatusOK)

	today := testutil.DecodeSchedule(t, rec)
	if len(today.Games) != 0 {
		t.Fatalf("expected no games when provider errors, got %d", len(today.Games))
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: "fixture",
		Metrics:  config.MetricsConfig{Enabled: false},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestSelectProviderDefaultsToNBA(t *testing.T) {
	provider := selectProvider(config.Config{}, nil, nil, time.UTC)
	if _, ok := provider.(*nbacom.Provider); !ok {
		t.Fatalf("expected nbacom provider by default, got %T", provider)
	}
}

func TestSelectProviderChoosesFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "fixture"}, nil, nil, time.UTC)
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider, got %T", provider)
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil, nil, time.UTC)
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback, got %T", provider)
	}
}

func TestResolveTimezone(t *testing.T) {
	if got := resolveTimezone("", nil); got != time.UTC {
		t.Fatalf("expected UTC for empty timezone")
	}
	if got := resolveTimezone("not-a-zone", nil); got != time.UTC {
		t.Fatalf("expected UTC fallback for invalid timezone")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	svc := appschedule.NewService(store.NewMemoryStore())
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller stopped once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected http server shutdown once, got %d", httpSrv.shutdownCalls)
	}
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	svc := appschedule.NewService(store.NewMemoryStore())
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv, p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}

	if p.startCalls != 1 || p.stopCalls != 1 {
		t.Fatalf("unexpected poller lifecycle: starts=%d stops=%d", p.startCalls, p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected http server shutdown once, got %d", httpSrv.shutdownCalls)
	}
}
