// Package dom abstracts a rendered schedule page's structured content. The
// extraction pipeline depends on these capability interfaces rather than any
// particular rendering or automation technology, so adapters can be backed by
// HTTP+parse, a headless browser, or test stubs interchangeably.
package dom

import (
	"context"
	"errors"
)

// ErrFieldNotFound reports that a queried element is absent from a game
// block. Each field query fails independently.
var ErrFieldNotFound = errors.New("dom: field not found")

// Broadcast carries the raw broadcaster facts for a game. Present is false
// when no broadcast container exists at all; Named is false when the
// container exists but carries no name element.
type Broadcast struct {
	Present bool
	Named   bool
	Name    string
}

// Session is a scoped handle on one rendered schedule page. It is a single
// mutable resource: enumerate days and games serially, and always Close it.
// Independent extractions must each open their own Session.
type Session interface {
	// WaitReady blocks until client-rendered schedule content has had a
	// chance to materialize, or the context/readiness deadline expires.
	WaitReady(ctx context.Context) error
	// Days returns the page's day blocks in document order.
	Days() ([]Day, error)
	// Close releases the session and any session-local temporary storage.
	// It is safe to call on every exit path.
	Close() error
}

// Day is an opaque handle on one schedule-day block.
type Day interface {
	// DateText returns the raw partial date text, e.g. "Friday, March 15".
	DateText() (string, error)
	// Games returns the day's game blocks in document order.
	Games() ([]Game, error)
}

// Game is an opaque handle on one game block. Every query can fail with
// ErrFieldNotFound independently of its siblings.
type Game interface {
	// StatusText returns the raw time/status text ("7:00 pm ET", "Final").
	StatusText() (string, error)
	// Broadcast returns the raw broadcaster facts.
	Broadcast() (Broadcast, error)
	// Teams returns team names in page order: away first, then home.
	Teams() ([]string, error)
	// Scores returns raw score texts in page order, or an empty slice when
	// the game has not been played.
	Scores() ([]string, error)
	// Location returns the arena name and the combined "City, ST" text.
	Location() (arena string, cityState string, err error)
}
