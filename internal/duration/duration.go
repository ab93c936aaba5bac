// Package duration provides an immutable elapsed-time value with microsecond
// resolution.
//
// Unlike time.Duration it is not tied to nanoseconds or wall clocks: it is the
// quantity the numeric parser and formatter operate on, and it keeps the
// conversion rules those packages rely on (whole-unit accessors floor the raw
// microsecond count, so negative values floor towards negative infinity).
package duration

import (
	"errors"
	"fmt"
	"math"
)

// Unit chain. Each unit is a fixed multiple of the next smaller one.
const (
	MicrosecondsPerMillisecond = 1000
	MillisecondsPerSecond      = 1000
	SecondsPerMinute           = 60
	MinutesPerHour             = 60
	HoursPerDay                = 24

	MicrosecondsPerSecond = MicrosecondsPerMillisecond * MillisecondsPerSecond
	MicrosecondsPerMinute = MicrosecondsPerSecond * SecondsPerMinute
	MicrosecondsPerHour   = MicrosecondsPerMinute * MinutesPerHour
	MicrosecondsPerDay    = MicrosecondsPerHour * HoursPerDay

	MillisecondsPerMinute = MillisecondsPerSecond * SecondsPerMinute
	MillisecondsPerHour   = MillisecondsPerMinute * MinutesPerHour
	MillisecondsPerDay    = MillisecondsPerHour * HoursPerDay

	SecondsPerHour = SecondsPerMinute * MinutesPerHour
	SecondsPerDay  = SecondsPerHour * HoursPerDay

	MinutesPerDay = MinutesPerHour * HoursPerDay
)

// ErrOverflow is returned by NewChecked when the parts do not fit in an int64
// microsecond count.
var ErrOverflow = errors.New("duration overflows microsecond range")

// Zero is the empty duration.
var Zero = Duration{}

// Duration is a signed count of microseconds. The zero value is Zero.
type Duration struct {
	us int64
}

// Parts are the components summed by New. Any part may be negative or larger
// than the next unit (Hours may exceed 23).
type Parts struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
}

// New returns the sum of all parts. Overflow wraps like ordinary int64
// arithmetic; use NewChecked for untrusted magnitudes.
func New(p Parts) Duration {
	return Duration{
		us: MicrosecondsPerDay*p.Days +
			MicrosecondsPerHour*p.Hours +
			MicrosecondsPerMinute*p.Minutes +
			MicrosecondsPerSecond*p.Seconds +
			MicrosecondsPerMillisecond*p.Milliseconds +
			p.Microseconds,
	}
}

// NewChecked is New with an explicit bound check against the int64 range.
func NewChecked(p Parts) (Duration, error) {
	terms := []struct {
		n, per int64
	}{
		{p.Days, MicrosecondsPerDay},
		{p.Hours, MicrosecondsPerHour},
		{p.Minutes, MicrosecondsPerMinute},
		{p.Seconds, MicrosecondsPerSecond},
		{p.Milliseconds, MicrosecondsPerMillisecond},
		{p.Microseconds, 1},
	}

	var total int64
	for _, t := range terms {
		v, ok := MulInt64(t.n, t.per)
		if !ok {
			return Zero, ErrOverflow
		}
		total, ok = AddInt64(total, v)
		if !ok {
			return Zero, ErrOverflow
		}
	}
	return Duration{us: total}, nil
}

// FromMicroseconds wraps a raw microsecond count.
func FromMicroseconds(us int64) Duration {
	return Duration{us: us}
}

// Microseconds returns the number of whole microseconds spanned by d.
func (d Duration) Microseconds() int64 { return d.us }

// Add returns d+other.
func (d Duration) Add(other Duration) Duration {
	return Duration{us: d.us + other.us}
}

// Sub returns d-other.
func (d Duration) Sub(other Duration) Duration {
	return Duration{us: d.us - other.us}
}

// Mul scales d by factor, rounding to the nearest microsecond (halves round
// up). Precision is lost for magnitudes beyond 53 bits.
func (d Duration) Mul(factor float64) Duration {
	return Duration{us: int64(math.Floor(float64(d.us)*factor + 0.5))}
}

// Div divides d by quotient, flooring the result. Panics if quotient is zero.
func (d Duration) Div(quotient int64) Duration {
	if quotient == 0 {
		panic("duration: integer division by zero")
	}
	return Duration{us: floorDiv(d.us, quotient)}
}

// Abs returns the magnitude of d.
func (d Duration) Abs() Duration {
	if d.us < 0 {
		return Duration{us: -d.us}
	}
	return d
}

// IsNegative reports whether d is below zero.
func (d Duration) IsNegative() bool { return d.us < 0 }

// Equal reports whether d and other span the same number of microseconds.
func (d Duration) Equal(other Duration) bool { return d.us == other.us }

// InDays returns the number of whole days spanned by d.
func (d Duration) InDays() int64 { return floorDiv(d.us, MicrosecondsPerDay) }

// InHours returns the number of whole hours spanned by d. The value can be
// greater than 23.
func (d Duration) InHours() int64 { return floorDiv(d.us, MicrosecondsPerHour) }

// InMinutes returns the number of whole minutes spanned by d.
func (d Duration) InMinutes() int64 { return floorDiv(d.us, MicrosecondsPerMinute) }

// InSeconds returns the number of whole seconds spanned by d.
func (d Duration) InSeconds() int64 { return floorDiv(d.us, MicrosecondsPerSecond) }

// InMilliseconds returns the number of whole milliseconds spanned by d.
func (d Duration) InMilliseconds() int64 {
	return floorDiv(d.us, MicrosecondsPerMillisecond)
}

// String renders d as H:MM:SS.ffffff for diagnostics. Negative values are
// rendered as their magnitude prefixed with "-".
//
//	New(Parts{Days: 1, Hours: 1, Minutes: 33, Microseconds: 500}).String() // "25:33:00.000500"
func (d Duration) String() string {
	sign := ""
	mag := uint64(d.us)
	if d.us < 0 {
		sign = "-"
		mag = uint64(-(d.us + 1)) + 1
	}
	return fmt.Sprintf("%s%d:%02d:%02d.%06d", sign,
		mag/MicrosecondsPerHour,
		mag/MicrosecondsPerMinute%MinutesPerHour,
		mag/MicrosecondsPerSecond%SecondsPerMinute,
		mag%MicrosecondsPerSecond)
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// AddInt64 returns a+b and whether the sum stayed in range.
func AddInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// MulInt64 returns a*b and whether the product stayed in range.
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return p, true
}
