package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"compact hours", []string{"parse", "1", "4:35"}, "1d 4h 35m"},
		{"quoted text", []string{"parse", "2 days 3h"}, "2d 3h"},
		{"day fraction", []string{"parse", "1.5"}, "1d 4h"},
		{"hour pattern", []string{"parse", "-p", "hour", "4.5"}, "4h 30m"},
		{"zero", []string{"parse", "0"}, "0"},
		{"day length flag", []string{"parse", "--day-length", "6h", "8h"}, "1d 2h"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.equals(env.run(tc.args...), tc.want)
		})
	}
}

func TestParse_Rejected(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("parse", "1k")
	require.Error(t, err)
	env.contains(out, "invalid: duration rejected: unknown unit")
	assert.NotContains(t, out, "Usage:")

	out, err = env.runErr("parse", "-o", "json", "1:2:3")
	require.Error(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, false, res["is_valid"])
	assert.Contains(t, res["reason"], "more than one colon")
}

func TestParse_JSON(t *testing.T) {
	env := newTestEnv(t)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.run("parse", "-o", "json", "1d", "4h")), &res))
	assert.Equal(t, true, res["is_valid"])
	assert.Equal(t, "1d 4h", res["formatted_value"])
	assert.Equal(t, float64(720), res["minutes"])
	assert.Equal(t, "0.5", res["days"])
}

func TestParse_Errors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("parse")
	assert.Error(t, err, "missing text")

	out, err := env.runErr("parse", "-p", "week", "1")
	assert.Error(t, err)
	env.contains(out, "invalid pattern")

	out, err = env.runErr("parse", "--day-length", "0", "1")
	assert.Error(t, err)
	env.contains(out, "day_length")

	_, err = env.runErr("parse", "-o", "yaml", "1")
	assert.Error(t, err, "unknown output format")
}

func TestFormat(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("format", "755"), "1d 4h 35m")
	env.equals(env.run("format", "-p", "hour", "755"), "12h 35m")
	env.equals(env.run("format", "--day-length", "7h30m", "900"), "2d")
	env.equals(env.run("format", "0"), "0")

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.run("format", "-o", "json", "90")), &res))
	assert.Equal(t, "1h 30m", res["formatted"])
	assert.Equal(t, "day", res["pattern"])
	assert.Equal(t, float64(480), res["day_length"])

	_, err := env.runErr("format", "1.5")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("export", "720"), "0.5")
	env.equals(env.run("export", "2160"), "1.5")
	env.equals(env.run("export", "--text", "1d", "4h"), "0.5")

	_, err := env.runErr("export", "1d")
	assert.Error(t, err)

	_, err = env.runErr("export", "--text", "1k")
	assert.Error(t, err)
}

func TestExplain(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("explain", "1", "4:35")
	env.contains(out, `compact:   "1 4h35m"`)
	env.contains(out, "inferred:  1d | 4h | 35m")
	env.contains(out, "result:    12:35:00.000000 (755 minutes)")
	env.contains(out, "--- input")

	out = env.run("explain", "1.5x")
	env.contains(out, "result:    rejected")

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.run("explain", "-o", "json", "-p", "hour", "2.25")), &res))
	assert.Equal(t, "2h 15m", res["result"])
	assert.Equal(t, "hour", res["pattern"])
}

func TestCompare(t *testing.T) {
	tests := []struct {
		text string
		days string
		want string
	}{
		{"1d 4h", "1", "1 more"},
		{"7h", "1", "-1 less"},
		{"2", "2", "0 equal"},
	}

	env := newTestEnv(t)
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			env.equals(env.run("compare", tc.text, tc.days), tc.want)
		})
	}

	_, err := env.runErr("compare", "1k", "1")
	assert.Error(t, err)

	_, err = env.runErr("compare", "1d", "one")
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	env := newTestEnv(t)
	env.setenv("WORKDUR_PATTERN", "hour")

	env.equals(env.run("parse", "4.5"), "4h 30m")
	// The flag wins over the environment.
	env.equals(env.run("parse", "-p", "day", "4.5"), "4d 4h")
}
