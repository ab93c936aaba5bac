// Package vocab holds the locale vocabulary used to read and write duration
// units: the singular and plural words for day, hour and minute, and the
// one-letter shortcuts shown in formatted output.
//
// Vocabularies come from caller-supplied data (config files, MCP arguments).
// Shortcuts default to the first character of each singular word but can be
// overridden where that character is not meaningful in the locale.
package vocab

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

var (
	// ErrMissingWord is returned when a required unit word is empty.
	ErrMissingWord = errors.New("missing unit word")
	// ErrInvalidShortcut is returned when a shortcut override is not a single character.
	ErrInvalidShortcut = errors.New("invalid shortcut")
	// ErrInvalidLanguage is returned when the language tag cannot be parsed.
	ErrInvalidLanguage = errors.New("invalid language tag")
)

// Words is the caller-supplied shape of a vocabulary. The six unit words are
// required; the letters and language are optional.
type Words struct {
	Day     string `yaml:"day,omitempty" json:"day,omitempty"`
	Days    string `yaml:"days,omitempty" json:"days,omitempty"`
	Hour    string `yaml:"hour,omitempty" json:"hour,omitempty"`
	Hours   string `yaml:"hours,omitempty" json:"hours,omitempty"`
	Minute  string `yaml:"minute,omitempty" json:"minute,omitempty"`
	Minutes string `yaml:"minutes,omitempty" json:"minutes,omitempty"`

	DayLetter    string `yaml:"day_letter,omitempty" json:"day_letter,omitempty"`
	HourLetter   string `yaml:"hour_letter,omitempty" json:"hour_letter,omitempty"`
	MinuteLetter string `yaml:"minute_letter,omitempty" json:"minute_letter,omitempty"`

	// Language is a BCP 47 tag controlling case folding (e.g. "tr" folds
	// "I" to "ı"). Empty means language-neutral folding.
	Language string `yaml:"language,omitempty" json:"language,omitempty"`
}

// English is the built-in vocabulary.
var English = Words{
	Day:     "day",
	Days:    "days",
	Hour:    "hour",
	Hours:   "hours",
	Minute:  "minute",
	Minutes: "minutes",
}

// Default is the processed English vocabulary.
var Default = MustNew(English)

// Vocabulary is a processed, immutable set of unit words and shortcuts.
type Vocabulary struct {
	words   Words
	letters [unitCount]string
	tag     language.Tag
}

// New validates w and derives any missing shortcuts.
func New(w Words) (*Vocabulary, error) {
	required := []struct {
		key, val string
	}{
		{"day", w.Day}, {"days", w.Days},
		{"hour", w.Hour}, {"hours", w.Hours},
		{"minute", w.Minute}, {"minutes", w.Minutes},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingWord, r.key)
		}
	}

	tag := language.Und
	if w.Language != "" {
		t, err := language.Parse(w.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, w.Language, err)
		}
		tag = t
	}

	v := &Vocabulary{words: w, tag: tag}
	for _, u := range []struct {
		unit     Unit
		override string
		singular string
	}{
		{Day, w.DayLetter, w.Day},
		{Hour, w.HourLetter, w.Hour},
		{Minute, w.MinuteLetter, w.Minute},
	} {
		letter, err := shortcut(u.override, u.singular)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", u.unit, err)
		}
		v.letters[u.unit] = letter
	}
	return v, nil
}

// MustNew is New that panics on error. Use for built-in vocabularies only.
func MustNew(w Words) *Vocabulary {
	v, err := New(w)
	if err != nil {
		panic(err)
	}
	return v
}

// shortcut returns the override if set, otherwise the first character of the
// singular word.
func shortcut(override, singular string) (string, error) {
	if override != "" {
		if utf8.RuneCountInString(override) != 1 {
			return "", fmt.Errorf("%w: %q must be one character", ErrInvalidShortcut, override)
		}
		return override, nil
	}
	r, _ := utf8.DecodeRuneInString(singular)
	return string(r), nil
}

// Words returns the unit words as supplied, with derived letters filled in.
func (v *Vocabulary) Words() Words {
	w := v.words
	w.DayLetter = v.letters[Day]
	w.HourLetter = v.letters[Hour]
	w.MinuteLetter = v.letters[Minute]
	return w
}

// Letter returns the one-character shortcut for u.
func (v *Vocabulary) Letter(u Unit) string {
	if u <= None || u >= unitCount {
		return ""
	}
	return v.letters[u]
}

// Singular returns the singular word for u.
func (v *Vocabulary) Singular(u Unit) string {
	switch u {
	case Day:
		return v.words.Day
	case Hour:
		return v.words.Hour
	case Minute:
		return v.words.Minute
	default:
		return ""
	}
}

// Plural returns the plural word for u.
func (v *Vocabulary) Plural(u Unit) string {
	switch u {
	case Day:
		return v.words.Days
	case Hour:
		return v.words.Hours
	case Minute:
		return v.words.Minutes
	default:
		return ""
	}
}

// Language returns the tag used for case folding.
func (v *Vocabulary) Language() language.Tag { return v.tag }
