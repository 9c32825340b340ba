package schedule

import (
	"errors"
	"fmt"
)

// ParseError reports a schedule day whose date text could not be resolved.
// It is contained at day level: the day is skipped and the run continues.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing date %q: %s", e.Text, e.Reason)
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// FieldError reports one missing or unparseable field on one game. It is
// contained at game level: the game is skipped, its siblings continue.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extracting %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("extracting %s", e.Field)
}

func (e *FieldError) Unwrap() error { return e.Err }

// AsFieldError attempts to unwrap an error into a FieldError.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ValidationError reports a candidate record that failed the schema check.
// Rejected records are dropped from the output, never surfaced as pipeline
// errors.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid game record: " + e.Reason
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// SessionError reports a failure to acquire or ready the rendering session.
// It is fatal for the invocation and propagates to the caller, who owns any
// retry policy.
type SessionError struct {
	Op  string
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session %s: %v", e.Op, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

// AsSessionError attempts to unwrap an error into a SessionError.
func AsSessionError(err error) (*SessionError, bool) {
	var se *SessionError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
