package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/vocab"
)

func russian(t *testing.T) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.New(vocab.Words{
		Day: "день", Days: "дней",
		Hour: "час", Hours: "часов",
		Minute: "минута", Minutes: "минут",
		Language: "ru",
	})
	require.NoError(t, err)
	return v
}

var sixHours = duration.New(duration.Parts{Hours: 6})

func TestFormat(t *testing.T) {
	f, err := NewFormatter(Options{})
	require.NoError(t, err)

	tests := []struct {
		minutes int64
		pattern Pattern
		want    string
	}{
		{620, Hour, "10h 20m"},
		{620, Day, "1d 2h 20m"},
		{6005, Day, "12d 4h 5m"},
		{6005, Hour, "100h 5m"},
		{480, Day, "1d"},
		{60, Hour, "1h"},
		{45, Day, "45m"},
		{0, Day, ""},
		{0, Hour, ""},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(tc.minutes, tc.pattern))
		})
	}
}

func TestFormatDayLength(t *testing.T) {
	f, err := NewFormatter(Options{DayLength: sixHours})
	require.NoError(t, err)

	assert.Equal(t, "1d 4h 20m", f.Format(620, Day))
	assert.Equal(t, "16d 4h 5m", f.Format(6005, Day))
	assert.Equal(t, "10h 20m", f.Format(620, Hour))

	// An explicit day length overrides the configured one.
	assert.Equal(t, "1d 2h 20m", f.FormatDayLength(620, Day, DefaultDayLength))
}

func TestFormatVocabulary(t *testing.T) {
	f, err := NewFormatter(Options{Vocabulary: russian(t)})
	require.NoError(t, err)

	assert.Equal(t, "1д 2ч 20м", f.Format(620, Day))
}

func TestFormatPanicsOnInvalidPattern(t *testing.T) {
	f, err := NewFormatter(Options{})
	require.NoError(t, err)

	assert.Panics(t, func() { f.Format(60, 0) })
	assert.Panics(t, func() { f.Format(60, Pattern(7)) })
}

func TestNewFormatterRejectsShortDay(t *testing.T) {
	_, err := NewFormatter(Options{DayLength: duration.New(duration.Parts{Seconds: 30})})
	assert.ErrorIs(t, err, ErrInvalidDayLength)
}

func TestCoerce(t *testing.T) {
	f, err := NewFormatter(Options{})
	require.NoError(t, err)

	assert.Nil(t, f.Coerce(nil))

	d := duration.New(duration.Parts{Hours: 1, Minutes: 30, Seconds: 30})
	got := f.Coerce(&d)
	require.NotNil(t, got)
	assert.Equal(t, int64(90), *got)

	neg := duration.New(duration.Parts{Seconds: -30})
	got = f.Coerce(&neg)
	require.NotNil(t, got)
	assert.Equal(t, int64(-1), *got)
}

func TestExport(t *testing.T) {
	f, err := NewFormatter(Options{DayLength: sixHours})
	require.NoError(t, err)

	assert.Nil(t, f.Export(nil))

	tests := []struct {
		minutes int64
		want    string
	}{
		{1440, "1"},
		{720, "0.5"},
		{360, "0.25"},
		{0, "0"},
		{2880, "2"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			m := tc.minutes
			got := f.Export(&m)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}
