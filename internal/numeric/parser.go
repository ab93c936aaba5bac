// Package numeric parses free-form duration text such as "1d 4h 30m", "4.5"
// or "2:30" into a duration.Duration, and formats minute counts back into
// short localized strings such as "1d 4h".
//
// # Patterns
//
// Two patterns control how unlabeled numbers are read. Under Day (workday)
// the first bare number is days of the configured length (default 8h); under
// Hour it is hours. A later bare number takes the next smaller unit after its
// predecessor, so "1 4 30" is 1d 4h 30m under Day.
//
// # Pipeline
//
//	text -> CompactHours -> lex (3 segments) -> infer labels
//	     -> Fraction -> lex (4 segments) -> classify and sum -> Duration
//
// Any failure along the way is a rejection: Parse returns an error wrapping
// ErrRejected and never a partial duration. Duplicate units add up, so
// "1h 3h" is four hours.
package numeric

import (
	"strconv"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/vocab"
)

// Parser turns duration text into durations. Safe for concurrent use; to
// change configuration build a new Parser.
type Parser struct {
	matcher    *vocab.Matcher
	formatter  *Formatter
	pre        *Preprocessor
	dayMinutes int64
}

// NewParser returns a parser for opts. Zero fields take defaults.
func NewParser(opts Options) (*Parser, error) {
	f, err := NewFormatter(opts)
	if err != nil {
		return nil, err
	}
	m := vocab.NewMatcher(f.vocab)
	return &Parser{
		matcher:    m,
		formatter:  f,
		pre:        newPreprocessor(m, f),
		dayMinutes: f.dayLength.InMinutes(),
	}, nil
}

// Formatter returns the formatter sharing this parser's configuration.
func (p *Parser) Formatter() *Formatter { return p.formatter }

// Preprocessor returns the preprocessor sharing this parser's configuration.
func (p *Parser) Preprocessor() *Preprocessor { return p.pre }

// Segment is a classified token of the final pass.
type Segment struct {
	Token
	Unit   vocab.Unit `json:"unit"`
	Amount int64      `json:"amount"`
}

// Trace records every stage of one parse. Fields after the failing stage are
// left empty.
type Trace struct {
	Input    string            `json:"input"`
	Pattern  Pattern           `json:"pattern"`
	Compact  string            `json:"compact"`
	Raw      []Token           `json:"raw,omitempty"`
	Inferred []Token           `json:"inferred,omitempty"`
	Expanded string            `json:"expanded"`
	Segments []Segment         `json:"segments,omitempty"`
	Duration duration.Duration `json:"-"`
	Err      error             `json:"-"`
}

// Parse reads text under pattern. User-input problems return an error
// wrapping ErrRejected. Panics if pattern is not valid.
func (p *Parser) Parse(text string, pattern Pattern) (duration.Duration, error) {
	t := p.Explain(text, pattern)
	return t.Duration, t.Err
}

// Explain parses text and returns the trace of every stage.
// Panics if pattern is not valid.
func (p *Parser) Explain(text string, pattern Pattern) Trace {
	pattern.mustValid()
	t := Trace{Input: text, Pattern: pattern}
	t.Err = p.run(&t)
	if t.Err != nil {
		t.Duration = duration.Zero
	}
	return t
}

func (p *Parser) run(t *Trace) error {
	var err error
	if t.Compact, err = p.pre.CompactHours(t.Input); err != nil {
		return err
	}

	raw, ok := rawGrammar.Lex(t.Compact)
	if !ok {
		return reject(ErrNoMatch, "%q", t.Compact)
	}
	t.Raw = raw
	t.Inferred = p.infer(raw, t.Pattern)

	if t.Expanded, err = p.pre.Fraction(joinTokens(t.Inferred), t.Pattern); err != nil {
		return err
	}

	final, ok := expandedGrammar.Lex(t.Expanded)
	if !ok {
		return reject(ErrNoMatch, "%q", t.Expanded)
	}

	if t.Segments, err = p.classify(final); err != nil {
		return err
	}
	t.Duration, err = p.compose(t.Segments)
	return err
}

// infer fills empty labels. The first token takes the pattern's leading
// unit; a later token takes the unit below its predecessor's. A token after a
// minute or an unknown label stays empty and fails classification.
func (p *Parser) infer(tokens []Token, pattern Pattern) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)

	v := p.matcher.Vocabulary()
	for i := range out {
		if out[i].Label != "" {
			continue
		}
		if i == 0 {
			out[i].Label = v.Letter(pattern.leading())
			continue
		}
		if next := p.matcher.First(out[i-1].Label).Smaller(); next != vocab.None {
			out[i].Label = v.Letter(next)
		}
	}
	return out
}

// classify assigns every token exactly one unit.
func (p *Parser) classify(tokens []Token) ([]Segment, error) {
	segs := make([]Segment, 0, len(tokens))
	for _, tok := range tokens {
		unit, ambiguous := p.matcher.Classify(tok.Label)
		if ambiguous {
			return nil, reject(ErrAmbiguousUnit, "%q", tok.String())
		}
		if unit == vocab.None {
			return nil, reject(ErrUnknownUnit, "%q", tok.String())
		}

		amount, err := parseAmount(tok.Value)
		if err != nil {
			return nil, err
		}
		segs = append(segs, Segment{Token: tok, Unit: unit, Amount: amount})
	}
	return segs, nil
}

// compose sums segments per unit and converts days to minutes of the
// configured day length.
func (p *Parser) compose(segs []Segment) (duration.Duration, error) {
	var sums [3]int64
	for _, s := range segs {
		i := s.Unit - vocab.Day
		v, ok := duration.AddInt64(sums[i], s.Amount)
		if !ok {
			return duration.Zero, reject(ErrOverflow, "%s total", s.Unit)
		}
		sums[i] = v
	}
	days, hours, minutes := sums[0], sums[1], sums[2]

	dayMinutes, ok := duration.MulInt64(days, p.dayMinutes)
	if !ok {
		return duration.Zero, reject(ErrOverflow, "%d days", days)
	}
	if minutes, ok = duration.AddInt64(minutes, dayMinutes); !ok {
		return duration.Zero, reject(ErrOverflow, "%d minutes", minutes)
	}

	d, err := duration.NewChecked(duration.Parts{Hours: hours, Minutes: minutes})
	if err != nil {
		return duration.Zero, reject(ErrOverflow, "%v", err)
	}
	return d, nil
}

// parseAmount reads a whole-number segment value.
func parseAmount(s string) (int64, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, reject(ErrFractionNumber, "%q left after expansion", s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, reject(ErrOverflow, "%q", s)
	}
	return n, nil
}
