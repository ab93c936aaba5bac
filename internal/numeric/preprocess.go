// preprocess.go rewrites shorthand into plain segments before parsing.
//
// Two rewrites exist. CompactHours turns a single "H:M" into "Hh Mm" form.
// Fraction turns a single decimal segment such as "1.5" into whole sub-unit
// segments ("1d 4h" under the workday pattern). Each accepts at most one
// occurrence; more is a rejection.

package numeric

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/vocab"
)

var (
	// compactSide is an optional number with its optional label.
	compactSide = `(?:(\d+(?:[.,]\d*)?|[.,]\d+)\s*([^\s\d.,:]*))?`
	compactRe   = regexp.MustCompile(compactSide + `\s*:\s*` + compactSide)

	fractionRe = regexp.MustCompile(`\s*(\d*[.,]\d*)\s*([^\s\d.,]*)`)
)

// Preprocessor applies the compact-hour and fraction rewrites.
// Safe for concurrent use.
type Preprocessor struct {
	matcher    *vocab.Matcher
	formatter  *Formatter
	dayMinutes int64
}

// NewPreprocessor returns a preprocessor for opts. Zero fields take defaults.
func NewPreprocessor(opts Options) (*Preprocessor, error) {
	f, err := NewFormatter(opts)
	if err != nil {
		return nil, err
	}
	return newPreprocessor(vocab.NewMatcher(f.vocab), f), nil
}

func newPreprocessor(m *vocab.Matcher, f *Formatter) *Preprocessor {
	return &Preprocessor{
		matcher:    m,
		formatter:  f,
		dayMinutes: f.dayLength.InMinutes(),
	}
}

// CompactHours rewrites the first "<n>[label]:<n>[label]" span. A number
// without a label becomes hours before the colon and minutes after it; a label
// already present is kept. Text outside the span is unchanged.
//
//	CompactHours("1 4:35") // "1 4h35m"
//	CompactHours(":2")     // "2m"
func (p *Preprocessor) CompactHours(text string) (string, error) {
	if n := strings.Count(text, ":"); n > 1 {
		return "", reject(ErrCompactHours, "found %d", n)
	}

	m := compactRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, nil
	}

	side := func(valueIdx int, unit vocab.Unit) string {
		if m[valueIdx] < 0 {
			return ""
		}
		value := text[m[valueIdx]:m[valueIdx+1]]
		label := text[m[valueIdx+2]:m[valueIdx+3]]
		if label == "" {
			label = p.formatter.vocab.Letter(unit)
		}
		return value + label
	}

	return text[:m[0]] + side(2, vocab.Hour) + side(6, vocab.Minute) + text[m[1]:], nil
}

// Fraction expands the first decimal segment into whole sub-unit segments
// rendered by the formatter under pattern. The segment's label anchors the
// expansion: a day label expands in day-length minutes, an hour label in 60
// minutes, and no label uses the pattern's leading unit. Minute labels and
// unknown labels are rejected.
//
// The decimal is rounded half-up to two digits, scaled to minutes, then the
// ceiling is taken: under the time pattern "0.256" becomes 0.26h = 15.6m = "16m".
func (p *Preprocessor) Fraction(text string, pattern Pattern) (string, error) {
	pattern.mustValid()

	if n := strings.Count(text, ".") + strings.Count(text, ","); n > 1 {
		return "", reject(ErrFractionCount, "found %d", n)
	}

	m := fractionRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, nil
	}
	number := text[m[2]:m[3]]
	label := text[m[4]:m[5]]

	step, err := p.fractionStep(label, pattern)
	if err != nil {
		return "", err
	}

	hundredths, err := parseHundredths(number)
	if err != nil {
		return "", err
	}

	scaled, ok := duration.MulInt64(hundredths, step)
	if !ok {
		return "", reject(ErrOverflow, "%q", number+label)
	}
	minutes := ceilDiv(scaled, 100)

	return text[:m[0]] + p.formatter.Format(minutes, pattern) + text[m[1]:], nil
}

// fractionStep returns the anchor unit's size in minutes.
func (p *Preprocessor) fractionStep(label string, pattern Pattern) (int64, error) {
	if label == "" {
		if pattern == Day {
			return p.dayMinutes, nil
		}
		return duration.MinutesPerHour, nil
	}

	switch p.matcher.First(label) {
	case vocab.Day:
		return p.dayMinutes, nil
	case vocab.Hour:
		return duration.MinutesPerHour, nil
	case vocab.Minute:
		return 0, reject(ErrFractionUnit, "%q", label)
	default:
		return 0, reject(ErrUnknownUnit, "%q", label)
	}
}

// parseHundredths reads a decimal like "4.55", ".5" or "1." as an integer
// count of hundredths, rounding half-up on the third fractional digit.
func parseHundredths(s string) (int64, error) {
	i := strings.IndexAny(s, ".,")
	whole, frac := s, ""
	if i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, reject(ErrFractionNumber, "%q", s)
	}

	var n int64
	if whole != "" {
		v, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, reject(ErrOverflow, "%q", s)
		}
		n = v
	}

	digit := func(i int) int64 {
		if i < len(frac) {
			return int64(frac[i] - '0')
		}
		return 0
	}
	cents := digit(0)*10 + digit(1)
	if digit(2) >= 5 {
		cents++
	}

	n, ok := duration.MulInt64(n, 100)
	if !ok {
		return 0, reject(ErrOverflow, "%q", s)
	}
	n, ok = duration.AddInt64(n, cents)
	if !ok {
		return 0, reject(ErrOverflow, "%q", s)
	}
	return n, nil
}

// ceilDiv divides a non-negative a by b rounding up.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// reject wraps cause as a user-input rejection.
func reject(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrRejected, cause, fmt.Sprintf(format, args...))
}
