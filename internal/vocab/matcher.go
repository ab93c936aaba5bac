// matcher.go classifies trailing labels as day, hour or minute indicators.
//
// A label matches a unit when, after case folding, it starts with the unit's
// shortcut, singular or plural form. "hours", "hour", "h" and "hmm" all match
// hour. The empty label matches nothing.

package vocab

import (
	"strings"

	"golang.org/x/text/cases"
)

// Unit identifies a duration unit.
type Unit int

const (
	// None is the unit of an unclassified label.
	None Unit = iota
	Day
	Hour
	Minute

	unitCount
)

// Units lists the classifiable units from largest to smallest.
var Units = []Unit{Day, Hour, Minute}

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// Smaller returns the next smaller unit, or None for Minute.
func (u Unit) Smaller() Unit {
	switch u {
	case Day:
		return Hour
	case Hour:
		return Minute
	default:
		return None
	}
}

// Matcher tests labels against a vocabulary. Safe for concurrent use.
type Matcher struct {
	vocab *Vocabulary
	forms [unitCount][]string
}

// NewMatcher precomputes the folded forms of v.
func NewMatcher(v *Vocabulary) *Matcher {
	m := &Matcher{vocab: v}
	for _, u := range Units {
		for _, f := range []string{v.Letter(u), v.Singular(u), v.Plural(u)} {
			if f = m.fold(f); f != "" {
				m.forms[u] = append(m.forms[u], f)
			}
		}
	}
	return m
}

// Vocabulary returns the vocabulary the matcher was built from.
func (m *Matcher) Vocabulary() *Vocabulary { return m.vocab }

// fold lower-cases s for the vocabulary's language. A Caser holds state, so
// one is built per call to keep the Matcher shareable.
func (m *Matcher) fold(s string) string {
	return cases.Lower(m.vocab.Language()).String(s)
}

// Is reports whether label matches unit u.
func (m *Matcher) Is(label string, u Unit) bool {
	if label == "" || u <= None || u >= unitCount {
		return false
	}
	return m.matchFolded(m.fold(label), u)
}

func (m *Matcher) matchFolded(folded string, u Unit) bool {
	for _, f := range m.forms[u] {
		if strings.HasPrefix(folded, f) {
			return true
		}
	}
	return false
}

// IsDay reports whether label is a day indicator.
func (m *Matcher) IsDay(label string) bool { return m.Is(label, Day) }

// IsHour reports whether label is an hour indicator.
func (m *Matcher) IsHour(label string) bool { return m.Is(label, Hour) }

// IsMinute reports whether label is a minute indicator.
func (m *Matcher) IsMinute(label string) bool { return m.Is(label, Minute) }

// First returns the first unit, largest to smallest, that label matches, or
// None.
func (m *Matcher) First(label string) Unit {
	if label == "" {
		return None
	}
	folded := m.fold(label)
	for _, u := range Units {
		if m.matchFolded(folded, u) {
			return u
		}
	}
	return None
}

// Classify returns the single unit label matches. ambiguous is true when the
// label matches more than one unit, in which case unit is None.
func (m *Matcher) Classify(label string) (unit Unit, ambiguous bool) {
	if label == "" {
		return None, false
	}
	folded := m.fold(label)
	for _, u := range Units {
		if !m.matchFolded(folded, u) {
			continue
		}
		if unit != None {
			return None, true
		}
		unit = u
	}
	return unit, false
}
