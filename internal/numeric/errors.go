// errors.go defines sentinel errors for rejected input.
//
// Every rejection wraps ErrRejected together with one specific cause, so
// callers can test for "bad user text" with a single errors.Is while the CLI
// and MCP tools still report why.

package numeric

import "errors"

var (
	// ErrRejected wraps every user-input rejection.
	ErrRejected = errors.New("duration rejected")

	ErrCompactHours   = errors.New("more than one colon")
	ErrFractionCount  = errors.New("more than one fraction delimiter")
	ErrFractionUnit   = errors.New("fraction has no smaller unit to expand into")
	ErrFractionNumber = errors.New("fraction is not a number")
	ErrNoMatch        = errors.New("text does not match the duration grammar")
	ErrUnknownUnit    = errors.New("unknown unit")
	ErrAmbiguousUnit  = errors.New("ambiguous unit")
	ErrOverflow       = errors.New("duration too large")
)

// Configuration errors. These are returned by constructors, never by Parse.
var (
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrInvalidDayLength = errors.New("invalid day length")
)
