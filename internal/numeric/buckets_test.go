package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpl-au/workdur/internal/duration"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		minutes   int64
		pattern   Pattern
		dayLength duration.Duration
		want      Buckets
	}{
		{"day pattern", 620, Day, DefaultDayLength, Buckets{Days: 1, Hours: 2, Minutes: 20}},
		{"hour pattern", 620, Hour, DefaultDayLength, Buckets{Hours: 10, Minutes: 20}},
		{"short day", 620, Day, sixHours, Buckets{Days: 1, Hours: 4, Minutes: 20}},
		{"zero", 0, Day, DefaultDayLength, Buckets{}},
		{"negative floors", -90, Hour, DefaultDayLength, Buckets{Hours: -2, Minutes: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.minutes, tc.pattern, tc.dayLength))
		})
	}
}

func TestSplitPanics(t *testing.T) {
	assert.Panics(t, func() { Split(60, 0, DefaultDayLength) })
	assert.Panics(t, func() { Split(60, Day, duration.New(duration.Parts{Seconds: 59})) })
}

func TestCompareToDays(t *testing.T) {
	tests := []struct {
		name string
		b    Buckets
		days int64
		want int
	}{
		{"exact", Buckets{Days: 1}, 1, 0},
		{"extra minute", Buckets{Days: 1, Minutes: 1}, 1, 1},
		{"extra hour", Buckets{Days: 1, Hours: 1}, 1, 1},
		{"fewer days", Buckets{Hours: 7}, 1, -1},
		{"more days", Buckets{Days: 2}, 1, 1},
		{"zero", Buckets{}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CompareToDays(tc.b, tc.days))
		})
	}
}
