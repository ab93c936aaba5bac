package numeric

import (
	"fmt"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/vocab"
)

// DefaultDayLength is the workday used when none is configured.
var DefaultDayLength = duration.New(duration.Parts{Hours: 8})

// Options configure parsers and formatters. Zero fields take defaults:
// English vocabulary and an eight hour day.
type Options struct {
	Vocabulary *vocab.Vocabulary
	DayLength  duration.Duration
}

func (o Options) withDefaults() (Options, error) {
	if o.Vocabulary == nil {
		o.Vocabulary = vocab.Default
	}
	if o.DayLength == duration.Zero {
		o.DayLength = DefaultDayLength
	}
	if o.DayLength.InMinutes() < 1 {
		return o, fmt.Errorf("%w: %s is shorter than a minute", ErrInvalidDayLength, o.DayLength)
	}
	return o, nil
}
