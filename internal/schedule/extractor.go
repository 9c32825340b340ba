package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"nba-schedule-service/internal/dom"
	"nba-schedule-service/internal/domain"
	"nba-schedule-service/internal/logging"
)

// BroadcasterFallback is used when a game shows a broadcast container with no
// named broadcaster.
const BroadcasterFallback = "NBA League Pass"

// Skip records one unit (day or game) dropped during an extraction run, with
// the reason it was dropped. Skips are data, not errors: a run with skips is
// still a successful run.
type Skip struct {
	Day    int
	Game   int // -1 for day-level skips
	Reason string
}

// Result is the outcome of one extraction run: valid records in document
// order plus the units skipped along the way.
type Result struct {
	Games   []domain.Game
	Skipped []Skip
}

// SkippedDays counts day-level skips in the result.
func (r *Result) SkippedDays() int {
	n := 0
	for _, s := range r.Skipped {
		if s.Game < 0 {
			n++
		}
	}
	return n
}

// SkippedGames counts game-level skips in the result.
func (r *Result) SkippedGames() int {
	n := 0
	for _, s := range r.Skipped {
		if s.Game >= 0 {
			n++
		}
	}
	return n
}

// Extractor walks a rendered schedule page and produces validated game
// records for one target date. Failures are absorbed at their smallest
// enclosing scope: a bad day skips that day, a bad game skips that game.
// Only session-level failures escape.
type Extractor struct {
	resolver *Resolver
	logger   *slog.Logger
}

// NewExtractor builds an Extractor resolving dates in the given location.
func NewExtractor(loc *time.Location, logger *slog.Logger) *Extractor {
	return &Extractor{
		resolver: NewResolver(loc),
		logger:   logger,
	}
}

// Resolver exposes the extractor's date resolver, primarily for tests that
// need to pin the reference clock.
func (e *Extractor) Resolver() *Resolver {
	return e.resolver
}

// Run extracts all valid games scheduled on targetDate (YYYY-MM-DD, already
// validated by the caller) from the session's page. Every day block is
// scanned; matching is a filter, not a search, so anomalous duplicate-date
// entries on the page still contribute their games. Terminal empty cases (no
// days, no matching day, no valid games) return an empty Result, never an
// error.
func (e *Extractor) Run(ctx context.Context, session dom.Session, targetDate string) (*Result, error) {
	if err := session.WaitReady(ctx); err != nil {
		return nil, &SessionError{Op: "ready", Err: err}
	}

	days, err := session.Days()
	if err != nil {
		return nil, &SessionError{Op: "list days", Err: err}
	}

	result := &Result{Games: make([]domain.Game, 0)}
	for dayIdx, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dateText, err := day.DateText()
		if err != nil {
			e.skipDay(result, dayIdx, fmt.Sprintf("reading date text: %v", err))
			continue
		}

		fullDate, err := e.resolver.Resolve(dateText)
		if err != nil {
			e.skipDay(result, dayIdx, err.Error())
			continue
		}

		if fullDate != targetDate {
			continue
		}

		games, err := day.Games()
		if err != nil {
			e.skipDay(result, dayIdx, fmt.Sprintf("listing games: %v", err))
			continue
		}

		for gameIdx, game := range games {
			record, err := e.extractGame(game, fullDate)
			if err != nil {
				e.skipGame(result, dayIdx, gameIdx, err.Error())
				continue
			}
			if err := ValidateGame(record); err != nil {
				e.skipGame(result, dayIdx, gameIdx, err.Error())
				continue
			}
			result.Games = append(result.Games, record)
			logging.Info(e.logger, "extracted game",
				logging.FieldGameID, record.GameID,
				logging.FieldDate, record.FullDate,
			)
		}
	}

	return result, nil
}

// extractGame pulls every field for one game block. Any single failure
// aborts this game only.
func (e *Extractor) extractGame(game dom.Game, fullDate string) (domain.Game, error) {
	gameTime, err := e.extractTime(game)
	if err != nil {
		return domain.Game{}, err
	}

	broadcaster, err := e.extractBroadcaster(game)
	if err != nil {
		return domain.Game{}, err
	}

	awayTeam, homeTeam, err := e.extractTeams(game)
	if err != nil {
		return domain.Game{}, err
	}

	awayScore, homeScore, err := e.extractScores(game)
	if err != nil {
		return domain.Game{}, err
	}

	arena, city, state, err := e.extractLocation(game)
	if err != nil {
		return domain.Game{}, err
	}

	return domain.Game{
		GameID:        GameID(fullDate, homeTeam, awayTeam),
		FullDate:      fullDate,
		GameTime:      gameTime,
		Broadcaster:   broadcaster,
		HomeTeam:      homeTeam,
		AwayTeam:      awayTeam,
		HomeTeamScore: homeScore,
		AwayTeamScore: awayScore,
		Arena:         arena,
		City:          city,
		State:         state,
	}, nil
}

func (e *Extractor) extractTime(game dom.Game) (string, error) {
	status, err := game.StatusText()
	if err != nil {
		return "", &FieldError{Field: "game_time", Err: err}
	}
	formatted, err := FormatGameTime(status)
	if err != nil {
		// Live/final statuses are not clock times; keep the raw text.
		return strings.TrimSpace(status), nil
	}
	return formatted, nil
}

func (e *Extractor) extractBroadcaster(game dom.Game) (*string, error) {
	broadcast, err := game.Broadcast()
	if err != nil {
		return nil, &FieldError{Field: "broadcaster", Err: err}
	}
	if !broadcast.Present {
		return nil, nil
	}
	if !broadcast.Named {
		fallback := BroadcasterFallback
		return &fallback, nil
	}
	name := strings.TrimSpace(broadcast.Name)
	return &name, nil
}

func (e *Extractor) extractTeams(game dom.Game) (away, home string, err error) {
	teams, err := game.Teams()
	if err != nil {
		return "", "", &FieldError{Field: "teams", Err: err}
	}
	if len(teams) != 2 {
		return "", "", &FieldError{Field: "teams", Err: fmt.Errorf("expected 2 teams, found %d", len(teams))}
	}
	// The page lists the visiting team first.
	return strings.TrimSpace(teams[0]), strings.TrimSpace(teams[1]), nil
}

func (e *Extractor) extractScores(game dom.Game) (away, home *int, err error) {
	scores, err := game.Scores()
	if err != nil {
		return nil, nil, &FieldError{Field: "scores", Err: err}
	}
	if len(scores) == 0 {
		// Not played yet.
		return nil, nil, nil
	}
	if len(scores) != 2 {
		return nil, nil, &FieldError{Field: "scores", Err: fmt.Errorf("expected 2 scores, found %d", len(scores))}
	}

	awayVal, err := strconv.Atoi(strings.TrimSpace(scores[0]))
	if err != nil {
		return nil, nil, &FieldError{Field: "scores", Err: fmt.Errorf("away score %q: %w", scores[0], err)}
	}
	homeVal, err := strconv.Atoi(strings.TrimSpace(scores[1]))
	if err != nil {
		return nil, nil, &FieldError{Field: "scores", Err: fmt.Errorf("home score %q: %w", scores[1], err)}
	}
	return &awayVal, &homeVal, nil
}

func (e *Extractor) extractLocation(game dom.Game) (arena, city, state string, err error) {
	arena, cityState, err := game.Location()
	if err != nil {
		return "", "", "", &FieldError{Field: "location", Err: err}
	}
	city, state, found := strings.Cut(cityState, ",")
	if !found {
		return "", "", "", &FieldError{Field: "location", Err: fmt.Errorf("no comma in %q", cityState)}
	}
	return strings.TrimSpace(arena), strings.TrimSpace(city), strings.TrimSpace(state), nil
}

func (e *Extractor) skipDay(result *Result, day int, reason string) {
	result.Skipped = append(result.Skipped, Skip{Day: day, Game: -1, Reason: reason})
	logging.Warn(e.logger, "skipping schedule day", "day", day, logging.FieldReason, reason)
}

func (e *Extractor) skipGame(result *Result, day, game int, reason string) {
	result.Skipped = append(result.Skipped, Skip{Day: day, Game: game, Reason: reason})
	logging.Warn(e.logger, "skipping game", "day", day, "game", game, logging.FieldReason, reason)
}
