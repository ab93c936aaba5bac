package service

import (
	"github.com/jpl-au/workdur/internal/config"
	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/numeric"
)

// Durations implements Service on a numeric.Parser.
type Durations struct {
	parser  *numeric.Parser
	pattern numeric.Pattern
}

var _ Service = (*Durations)(nil)

// New returns a Service for opts with p as its default pattern.
func New(opts numeric.Options, p numeric.Pattern) (*Durations, error) {
	if !p.Valid() {
		return nil, numeric.ErrInvalidPattern
	}
	parser, err := numeric.NewParser(opts)
	if err != nil {
		return nil, err
	}
	return &Durations{parser: parser, pattern: p}, nil
}

// FromConfig returns a Service for the effective values of cfg.
func FromConfig(cfg *config.Config) (*Durations, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	p, err := cfg.PatternValue()
	if err != nil {
		return nil, err
	}
	return New(opts, p)
}

// Parse implements Service.
func (s *Durations) Parse(text string, p numeric.Pattern) Result {
	res := Result{RawValue: &text}

	d, err := s.parser.Parse(text, p)
	if err != nil {
		res.Err = err
		res.Reason = err.Error()
		return res
	}

	res.ParsedValue = &d
	res.IsValid = true
	res.FormattedValue = s.Format(&d, p)
	res.Minutes = s.parser.Formatter().Coerce(&d)
	res.Days = s.parser.Formatter().Export(res.Minutes)
	return res
}

// ParseOptional implements Service.
func (s *Durations) ParseOptional(text *string, p numeric.Pattern) Result {
	if text == nil {
		return Result{}
	}
	return s.Parse(*text, p)
}

// Format implements Service.
func (s *Durations) Format(d *duration.Duration, p numeric.Pattern) string {
	f := s.parser.Formatter()
	m := f.Coerce(d)
	if m == nil {
		return ""
	}
	return f.Format(*m, p)
}

// FormatMinutes implements Service.
func (s *Durations) FormatMinutes(minutes int64, p numeric.Pattern, dayLength duration.Duration) string {
	f := s.parser.Formatter()
	if dayLength == duration.Zero {
		return f.Format(minutes, p)
	}
	return f.FormatDayLength(minutes, p, dayLength)
}

// Export implements Service.
func (s *Durations) Export(d *duration.Duration) *string {
	f := s.parser.Formatter()
	return f.Export(f.Coerce(d))
}

// Explain implements Service.
func (s *Durations) Explain(text string, p numeric.Pattern) numeric.Trace {
	return s.parser.Explain(text, p)
}

// Compare implements Service. The parsed value is always split into workday
// buckets, whichever pattern it was read with.
func (s *Durations) Compare(text string, days int64, p numeric.Pattern) (int, error) {
	d, err := s.parser.Parse(text, p)
	if err != nil {
		return 0, err
	}
	b := numeric.Split(d.InMinutes(), numeric.Day, s.DayLength())
	return numeric.CompareToDays(b, days), nil
}

// Pattern implements Service.
func (s *Durations) Pattern() numeric.Pattern { return s.pattern }

// DayLength implements Service.
func (s *Durations) DayLength() duration.Duration { return s.parser.Formatter().DayLength() }
