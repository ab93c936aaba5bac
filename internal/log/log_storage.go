// log_storage.go implements SQLite-based persistent operation history.
//
// Separated from log.go to isolate database concerns. The main log.go provides
// the fluent API for building log entries, while this file handles persistence
// and the read side used by `workdur history`. The project field uses a hash
// of the working directory so history can be filtered per directory without
// storing the path itself.
//
// Errors during writes are reported on stderr and otherwise ignored: a parse
// must succeed even if it cannot be recorded.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// ErrClosed is returned by reads when the logger has not been opened.
var ErrClosed = errors.New("log is not open")

// Logger writes history entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

// Record is a stored entry as read back from the database.
type Record struct {
	ID      int64          `json:"id"`
	Time    time.Time      `json:"time"`
	Project string         `json:"project"`
	Source  string         `json:"source"`
	Action  string         `json:"action"`
	Input   string         `json:"input,omitempty"`
	Pattern string         `json:"pattern,omitempty"`
	Output  string         `json:"output,omitempty"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, action, input, pattern,
		                 output, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, e.Action,
		nilIfEmpty(e.Input), nilIfEmpty(e.Pattern), nilIfEmpty(e.Output),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		// Best-effort logging: don't break main operation, but report failure
		_, _ = fmt.Fprintf(os.Stderr, "workdur: history write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int, project string) ([]Record, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := l.db.Query(`
		SELECT id, start, project, source, action, input, pattern, output,
		       success, error, detail
		FROM log
		WHERE ? = '' OR project = ?
		ORDER BY id DESC
		LIMIT ?`,
		project, project, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var start int64
		var success int
		var input, pattern, output, errMsg, detail sql.NullString
		if err := rows.Scan(&r.ID, &start, &r.Project, &r.Source, &r.Action,
			&input, &pattern, &output, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("reading history: %w", err)
		}
		r.Time = time.Unix(start, 0)
		r.Input = input.String
		r.Pattern = pattern.String
		r.Output = output.String
		r.Success = success == 1
		r.Error = errMsg.String
		if detail.Valid {
			// Detail is written by us; a decode failure leaves it empty.
			_ = json.Unmarshal([]byte(detail.String), &r.Detail)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		return filepath.Join(".workdur", "log", "workdur-log.db")
	}
	return filepath.Join(home, ".workdur", "log", "workdur-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// ProjectID returns the identifier stored for entries written from dir: a
// BLAKE2b-64 hash as 16 hex characters.
func ProjectID(dir string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(dir))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			source  TEXT NOT NULL,
			action  TEXT NOT NULL,
			input   TEXT,
			pattern TEXT,
			output  TEXT,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
