package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/workdur/internal/duration"
)

func newTestPreprocessor(t *testing.T, opts Options) *Preprocessor {
	t.Helper()
	p, err := NewPreprocessor(opts)
	require.NoError(t, err)
	return p
}

func TestCompactHours(t *testing.T) {
	p := newTestPreprocessor(t, Options{})

	tests := []struct {
		text string
		want string
	}{
		{"1 4:35", "1 4h35m"},
		{"2:30", "2h30m"},
		{":2", "2m"},
		{" 2: ", " 2h"},
		{"5d 2:30", "5d 2h30m"},
		{"0.5:30", "0.5h30m"},
		{"1:0.5", "1h0.5m"},
		{"2 : 30", "2h30m"},
		{"2h:30", "2h30m"},
		{"2:30min", "2h30min"},
		{":", ""},
		{"1d 4h", "1d 4h"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got, err := p.CompactHours(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompactHoursRejectsSecondColon(t *testing.T) {
	p := newTestPreprocessor(t, Options{})

	_, err := p.CompactHours("1:2:3")
	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, ErrCompactHours)
}

func TestCompactHoursUsesVocabularyLetters(t *testing.T) {
	p := newTestPreprocessor(t, Options{Vocabulary: russian(t)})

	got, err := p.CompactHours("2:30")
	require.NoError(t, err)
	assert.Equal(t, "2ч30м", got)
}

func TestFraction(t *testing.T) {
	p := newTestPreprocessor(t, Options{})

	tests := []struct {
		name    string
		text    string
		pattern Pattern
		want    string
	}{
		{"day default", "1.5", Day, "1d 4h"},
		{"trailing separator", "1.", Day, "1d"},
		{"leading separator", ".5", Day, "4h"},
		{"comma", "1,5h", Day, "1h 30m"},
		{"hour default", "1.5", Hour, "1h 30m"},
		{"day label under hour", "1.5day", Hour, "12h"},
		{"tenth", "0.1", Hour, "6m"},
		{"two tenths", "0.2", Hour, "12m"},
		{"three tenths", "0.3", Hour, "18m"},
		{"four tenths", "0.4", Hour, "24m"},
		{"rounds third digit up", "0.256", Hour, "16m"},
		{"rounds third digit down", "0.251", Hour, "15m"},
		{"day rounding", "0.256", Day, "2h 5m"},
		{"consumes leading space", "20d 1.5", Day, "20d1d 4h"},
		{"consumes trailing space", "1.5 10min", Day, "1d 4h10min"},
		{"separator then segment", "1. 10m", Day, "1d10m"},
		{"labelled among others", "0.5d 4h 30m", Day, "4h 4h 30m"},
		{"no fraction", "1d 4h", Day, "1d 4h"},
		{"zero fraction", "0.0h 5m", Day, " 5m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Fraction(tc.text, tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFractionRejects(t *testing.T) {
	p := newTestPreprocessor(t, Options{})

	tests := []struct {
		name string
		text string
		want error
	}{
		{"two dots", "0..5", ErrFractionCount},
		{"two decimals", "4.5.6", ErrFractionCount},
		{"mixed separators", "1,5.5", ErrFractionCount},
		{"minute label", "1.5m", ErrFractionUnit},
		{"unknown label", "4.ghhghg1", ErrUnknownUnit},
		{"bare separator", ".", ErrFractionNumber},
		{"huge", "99999999999999999999.5", ErrOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Fraction(tc.text, Day)
			assert.ErrorIs(t, err, ErrRejected)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFractionCustomDayLength(t *testing.T) {
	p := newTestPreprocessor(t, Options{DayLength: duration.New(duration.Parts{Hours: 6})})

	got, err := p.Fraction("1.5", Day)
	require.NoError(t, err)
	assert.Equal(t, "1d 3h", got)

	got, err = p.Fraction("0.5d", Hour)
	require.NoError(t, err)
	assert.Equal(t, "3h", got)
}

func TestFractionPanicsOnInvalidPattern(t *testing.T) {
	p := newTestPreprocessor(t, Options{})
	assert.Panics(t, func() { _, _ = p.Fraction("1.5", 0) })
}

func TestParseHundredths(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"4.55", 455},
		{"4,55", 455},
		{".5", 50},
		{"1.", 100},
		{"0.256", 26},
		{"0.255", 26},
		{"0.254", 25},
		{"0.995", 100},
		{"12", 1200},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseHundredths(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, int64(0), ceilDiv(0, 100))
	assert.Equal(t, int64(1), ceilDiv(1, 100))
	assert.Equal(t, int64(1), ceilDiv(100, 100))
	assert.Equal(t, int64(16), ceilDiv(1560, 100))
}
