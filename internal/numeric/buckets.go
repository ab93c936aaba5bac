package numeric

import (
	"fmt"

	"github.com/jpl-au/workdur/internal/duration"
)

// Buckets is a minute count decomposed into display units.
type Buckets struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
}

// Split decomposes minutes by successive floored division. The day bucket is
// only filled for the Day pattern, sized by dayLength. Panics if p is invalid
// or dayLength is shorter than a minute.
func Split(minutes int64, p Pattern, dayLength duration.Duration) Buckets {
	p.mustValid()
	dayMinutes := dayLength.InMinutes()
	if dayMinutes <= 0 {
		panic(fmt.Sprintf("numeric: day length %s is shorter than a minute", dayLength))
	}

	var b Buckets
	rest := minutes
	if p == Day {
		b.Days = floorDiv(rest, dayMinutes)
		rest -= b.Days * dayMinutes
	}
	b.Hours = floorDiv(rest, duration.MinutesPerHour)
	b.Minutes = rest - b.Hours*duration.MinutesPerHour
	return b
}

// CompareToDays compares b with a whole number of days. It returns -1 when b
// has fewer days, 1 when it has more days or the same days plus any hours or
// minutes, and 0 when it is exactly days.
func CompareToDays(b Buckets, days int64) int {
	switch {
	case b.Days < days:
		return -1
	case b.Days > days:
		return 1
	case b.Hours > 0 || b.Minutes > 0:
		return 1
	default:
		return 0
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
