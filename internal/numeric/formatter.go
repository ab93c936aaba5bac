package numeric

import (
	"strconv"
	"strings"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/vocab"
)

// Formatter renders minute counts as short display strings such as "1d 2h 20m".
// Safe for concurrent use.
type Formatter struct {
	vocab     *vocab.Vocabulary
	dayLength duration.Duration
}

// NewFormatter returns a formatter for opts. Zero fields take defaults.
func NewFormatter(opts Options) (*Formatter, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Formatter{vocab: o.Vocabulary, dayLength: o.DayLength}, nil
}

// DayLength returns the configured length of one workday.
func (f *Formatter) DayLength() duration.Duration { return f.dayLength }

// Format renders minutes under p using the configured day length.
// Panics if p is not a valid pattern.
func (f *Formatter) Format(minutes int64, p Pattern) string {
	return f.FormatDayLength(minutes, p, f.dayLength)
}

// FormatDayLength renders minutes under p with an explicit day length.
// Non-zero buckets are emitted as <n><letter>, space-joined, largest first.
// Zero renders as "".
func (f *Formatter) FormatDayLength(minutes int64, p Pattern, dayLength duration.Duration) string {
	b := Split(minutes, p, dayLength)

	var parts []string
	for _, c := range []struct {
		n    int64
		unit vocab.Unit
	}{
		{b.Days, vocab.Day},
		{b.Hours, vocab.Hour},
		{b.Minutes, vocab.Minute},
	} {
		if c.n != 0 {
			parts = append(parts, strconv.FormatInt(c.n, 10)+f.vocab.Letter(c.unit))
		}
	}
	return strings.Join(parts, " ")
}

// Coerce maps d to its whole-minute count. nil passes through.
func (f *Formatter) Coerce(d *duration.Duration) *int64 {
	if d == nil {
		return nil
	}
	m := d.InMinutes()
	return &m
}

// Export renders minutes as a count of calendar days (1440 minutes), not
// floored: 720 exports as "0.5". nil passes through.
func (f *Formatter) Export(minutes *int64) *string {
	if minutes == nil {
		return nil
	}
	s := strconv.FormatFloat(float64(*minutes)/duration.MinutesPerDay, 'f', -1, 64)
	return &s
}
