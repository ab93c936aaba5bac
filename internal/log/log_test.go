package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a fresh database for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "cli:parse",
			Action:  "parse",
			Input:   "1 4:35",
			Pattern: "day",
			Output:  "1d 4h 35m",
			Success: true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, input, pattern, output, project string
		var success int
		err = db.QueryRow("SELECT source, action, input, pattern, output, project, success FROM log WHERE id = 1").
			Scan(&source, &action, &input, &pattern, &output, &project, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:parse", source)
		assert.Equal(t, "parse", action)
		assert.Equal(t, "1 4:35", input)
		assert.Equal(t, "day", pattern)
		assert.Equal(t, "1d 4h 35m", output)
		assert.Equal(t, ProjectID("/test/project"), project)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		Log(Entry{
			Source:  "cli:parse",
			Action:  "parse",
			Input:   "1k",
			Success: false,
			Error:   "duration rejected: unknown unit",
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		var output sql.NullString
		err = db.QueryRow("SELECT success, error, output FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &output)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "duration rejected: unknown unit", errMsg)
		assert.False(t, output.Valid)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{
			Source:  "test:cmd",
			Action:  "test",
			Success: true,
		})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)

		err = Open() // second call should succeed
		require.NoError(t, err)

		Close()
	})
}

func TestProjectID(t *testing.T) {
	h1 := ProjectID("/home/user/project")
	h2 := ProjectID("/home/user/project")
	h3 := ProjectID("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".workdur", "log", "workdur-log.db")

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("fluent API success", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("cli:format", "format").
			Input("620").
			Pattern("hour").
			Output("10h 20m").
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, input, pattern, output string
		var success int
		var start, end int64
		err = db.QueryRow("SELECT source, action, input, pattern, output, success, start, end FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &input, &pattern, &output, &success, &start, &end)
		require.NoError(t, err)
		assert.Equal(t, "cli:format", source)
		assert.Equal(t, "format", action)
		assert.Equal(t, "620", input)
		assert.Equal(t, "hour", pattern)
		assert.Equal(t, "10h 20m", output)
		assert.Equal(t, 1, success)
		assert.LessOrEqual(t, start, end)
	})

	t.Run("fluent API with error", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		testErr := errors.New("duration rejected: more than one colon")
		Event("cli:parse", "parse").
			Input("1:2:3").
			Write(testErr)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, testErr.Error(), errMsg)
	})

	t.Run("fluent API with Detail", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("mcp:workdur_export", "export").
			Detail("minutes", 720).
			Detail("day_length", "8:00:00.000000").
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "720")
		assert.Contains(t, detail, "day_length")
	})
}

func TestRecent(t *testing.T) {
	useTempDB(t)

	_, err := Recent(10, "")
	assert.ErrorIs(t, err, ErrClosed)

	require.NoError(t, Open())

	SetProject("/work/a")
	Event("cli:parse", "parse").Input("1").Output("1d").Write(nil)
	Event("cli:parse", "parse").Input("2").Output("2d").Detail("minutes", 960).Write(nil)

	SetProject("/work/b")
	Event("cli:parse", "parse").Input("x").Write(errors.New("rejected"))

	t.Run("all projects newest first", func(t *testing.T) {
		recs, err := Recent(0, "")
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "x", recs[0].Input)
		assert.False(t, recs[0].Success)
		assert.Equal(t, "rejected", recs[0].Error)
		assert.Equal(t, "1", recs[2].Input)
	})

	t.Run("limit", func(t *testing.T) {
		recs, err := Recent(1, "")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "x", recs[0].Input)
	})

	t.Run("single project", func(t *testing.T) {
		recs, err := Recent(10, ProjectID("/work/a"))
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "2d", recs[0].Output)
		assert.True(t, recs[0].Success)
		assert.EqualValues(t, 960, recs[0].Detail["minutes"])
	})
}
