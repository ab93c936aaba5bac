package numeric

import (
	"fmt"
	"strings"

	"github.com/jpl-au/workdur/internal/vocab"
)

// Pattern selects how unlabeled numbers are read and which buckets the
// formatter emits. The zero value is not a valid pattern.
type Pattern int

const (
	// Day is the workday pattern: days of configurable length, hours and minutes.
	Day Pattern = iota + 1
	// Hour is the time pattern: hours and minutes only.
	Hour
)

// Patterns lists the valid patterns.
var Patterns = []Pattern{Day, Hour}

// ParsePattern maps "day" or "hour" (case-insensitive) to a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "d", "workday":
		return Day, nil
	case "hour", "h", "time":
		return Hour, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: day, hour)", ErrInvalidPattern, s)
	}
}

// String returns "day", "hour" or "invalid".
func (p Pattern) String() string {
	switch p {
	case Day:
		return "day"
	case Hour:
		return "hour"
	default:
		return "invalid"
	}
}

// Valid reports whether p is Day or Hour.
func (p Pattern) Valid() bool { return p == Day || p == Hour }

// leading returns the unit an unlabeled leading number is read as.
func (p Pattern) leading() vocab.Unit {
	if p == Day {
		return vocab.Day
	}
	return vocab.Hour
}

// mustValid panics on the zero or an unknown pattern. A missing pattern is a
// broken call contract, not bad user input.
func (p Pattern) mustValid() {
	if !p.Valid() {
		panic(fmt.Sprintf("numeric: invalid pattern %d", int(p)))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPattern, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(b []byte) error {
	v, err := ParsePattern(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
