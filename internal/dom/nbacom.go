package dom

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"nba-schedule-service/internal/logging"
)

// Selectors target the stable fragments of nba.com's hashed CSS module class
// names (ScheduleDay_sd__abc12 etc.).
const (
	selDayBlock      = "div[class*='ScheduleDay_sd_']"
	selDayDate       = "h4[class*='ScheduleDay_sdDay']"
	selDayGames      = "div[class*='ScheduleDay_sdGames']"
	selGameBlock     = "div[class*='ScheduleGame']"
	selStatusText    = "span[class*='ScheduleStatusText']"
	selBroadcasters  = "div[class*='Broadcasters']"
	selBroadcaster   = "p[class*='Broadcaster']"
	selTeam          = "div[class*='ScheduleGame_sgTeam']"
	selScore         = "div[class*='ScheduleGame_sgScore']"
	selLocationInner = "div[class*='ScheduleGame_sgLocationInner']"
)

const (
	defaultUserAgent    = "nba-schedule-service/1.0"
	defaultHTTPTimeout  = 30 * time.Second
	defaultReadyTimeout = 15 * time.Second
	defaultReadyPoll    = 2 * time.Second
)

// NBAConfig controls how a session reaches the nba.com schedule page.
type NBAConfig struct {
	URL          string
	HTTPClient   *http.Client
	UserAgent    string
	ReadyTimeout time.Duration
	ReadyPoll    time.Duration
	// DumpHTML spools the last fetched page to a temp file for diagnosis.
	// The file is session-local and removed on Close.
	DumpHTML bool
	Logger   *slog.Logger
}

// nbaSession is a goquery-backed Session over one fetched schedule page.
type nbaSession struct {
	client       *http.Client
	url          string
	userAgent    string
	readyTimeout time.Duration
	readyPoll    time.Duration
	dump         bool
	dumpPath     string
	logger       *slog.Logger
	doc          *goquery.Document
}

// OpenNBASession fetches the schedule page and returns a scoped session over
// it. A fetch or parse failure here is fatal for the invocation; the caller
// must Close the session on every exit path.
func OpenNBASession(ctx context.Context, cfg NBAConfig) (Session, error) {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	s := &nbaSession{
		client:       client,
		url:          cfg.URL,
		userAgent:    cfg.UserAgent,
		readyTimeout: cfg.ReadyTimeout,
		readyPoll:    cfg.ReadyPoll,
		dump:         cfg.DumpHTML,
		logger:       cfg.Logger,
	}
	if s.userAgent == "" {
		s.userAgent = defaultUserAgent
	}
	if s.readyTimeout <= 0 {
		s.readyTimeout = defaultReadyTimeout
	}
	if s.readyPoll <= 0 {
		s.readyPoll = defaultReadyPoll
	}

	if err := s.fetch(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *nbaSession) fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading page: %w", err)
	}

	if s.dump {
		s.spool(body)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}
	s.doc = doc
	return nil
}

// spool writes the fetched page to a session-local temp file, reused across
// readiness re-fetches and removed on Close.
func (s *nbaSession) spool(body []byte) {
	if s.dumpPath == "" {
		f, err := os.CreateTemp("", "nba-schedule-*.html")
		if err != nil {
			logging.Warn(s.logger, "failed to create page dump", "error", err)
			return
		}
		s.dumpPath = f.Name()
		f.Close()
	}
	if err := os.WriteFile(s.dumpPath, body, 0o600); err != nil {
		logging.Warn(s.logger, "failed to write page dump", "error", err)
	}
}

// WaitReady polls for client-rendered day blocks, re-fetching the page until
// content appears or the readiness window closes. A page that stays empty is
// not an error: the caller sees it as the zero-days terminal case.
func (s *nbaSession) WaitReady(ctx context.Context) error {
	deadline := time.Now().Add(s.readyTimeout)
	for {
		if s.hasDays() {
			return nil
		}
		if time.Now().After(deadline) {
			logging.Warn(s.logger, "schedule content did not materialize before deadline")
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.readyPoll):
		}
		if err := s.fetch(ctx); err != nil {
			// Keep the last good document; a transient re-fetch failure
			// must not invalidate content we already hold.
			logging.Warn(s.logger, "readiness re-fetch failed", "error", err)
		}
	}
}

func (s *nbaSession) hasDays() bool {
	return s.doc != nil && s.doc.Find(selDayBlock).Length() > 0
}

func (s *nbaSession) Days() ([]Day, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("session has no document")
	}
	days := make([]Day, 0)
	s.doc.Find(selDayBlock).Each(func(_ int, sel *goquery.Selection) {
		days = append(days, &nbaDay{sel: sel})
	})
	return days, nil
}

// Close releases the session, removing any session-local temp spool. Safe to
// call more than once.
func (s *nbaSession) Close() error {
	s.doc = nil
	if s.dumpPath != "" {
		if err := os.Remove(s.dumpPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing page dump: %w", err)
		}
		s.dumpPath = ""
	}
	return nil
}

type nbaDay struct {
	sel *goquery.Selection
}

func (d *nbaDay) DateText() (string, error) {
	heading := d.sel.Find(selDayDate).First()
	if heading.Length() == 0 {
		return "", ErrFieldNotFound
	}
	return strings.TrimSpace(heading.Text()), nil
}

func (d *nbaDay) Games() ([]Game, error) {
	container := d.sel.Find(selDayGames).First()
	if container.Length() == 0 {
		return nil, ErrFieldNotFound
	}
	games := make([]Game, 0)
	container.ChildrenFiltered(selGameBlock).Each(func(_ int, sel *goquery.Selection) {
		games = append(games, &nbaGame{sel: sel})
	})
	return games, nil
}

type nbaGame struct {
	sel *goquery.Selection
}

func (g *nbaGame) StatusText() (string, error) {
	status := g.sel.Find(selStatusText).First()
	if status.Length() == 0 {
		return "", ErrFieldNotFound
	}
	return strings.TrimSpace(status.Text()), nil
}

func (g *nbaGame) Broadcast() (Broadcast, error) {
	container := g.sel.Find(selBroadcasters).First()
	if container.Length() == 0 {
		return Broadcast{}, nil
	}
	name := container.Find(selBroadcaster).First()
	if name.Length() == 0 {
		return Broadcast{Present: true}, nil
	}
	return Broadcast{Present: true, Named: true, Name: strings.TrimSpace(name.Text())}, nil
}

func (g *nbaGame) Teams() ([]string, error) {
	teams := make([]string, 0, 2)
	var missing bool
	g.sel.Find(selTeam).Each(func(_ int, team *goquery.Selection) {
		anchor := team.Find("a").First()
		if anchor.Length() == 0 {
			missing = true
			return
		}
		teams = append(teams, strings.TrimSpace(anchor.Text()))
	})
	if missing {
		return nil, ErrFieldNotFound
	}
	return teams, nil
}

func (g *nbaGame) Scores() ([]string, error) {
	scores := make([]string, 0, 2)
	var missing bool
	g.sel.Find(selScore).Each(func(_ int, score *goquery.Selection) {
		span := score.Find("span").First()
		if span.Length() == 0 {
			missing = true
			return
		}
		scores = append(scores, strings.TrimSpace(span.Text()))
	})
	if missing {
		return nil, ErrFieldNotFound
	}
	return scores, nil
}

func (g *nbaGame) Location() (string, string, error) {
	inner := g.sel.Find(selLocationInner).First()
	if inner.Length() == 0 {
		return "", "", ErrFieldNotFound
	}
	details := inner.Find("div")
	if details.Length() < 2 {
		return "", "", ErrFieldNotFound
	}
	arena := strings.TrimSpace(details.Eq(0).Text())
	cityState := strings.TrimSpace(details.Eq(1).Text())
	return arena, cityState, nil
}
