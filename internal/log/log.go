// Package log provides the operation history for workdur.
// Entries are stored in ~/.workdur/log/workdur-log.db and record every parse,
// format, export and explain run from the CLI or the MCP server, across
// working directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:parse", "parse").
//		Input(text).
//		Pattern(p.String()).
//		Output(res.FormattedValue).
//		Write(res.Err)
//
//	log.Event("mcp:workdur_export", "export").
//		Input(minutes).
//		Detail("day_length", svc.DayLength().String()).
//		Write(nil)
//
// The source parameter is "cli:{command}" for CLI commands or "mcp:{tool}"
// for MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g., "cli:parse", "mcp:workdur_parse"
	Action  string // verb: parse, format, export, explain, compare
	Input   string // text or minute count supplied
	Pattern string // "day" or "hour", empty when not applicable

	// Output is the rendered result when the operation succeeded.
	Output string

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "cli:{command}" (e.g., "cli:parse", "cli:export")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:workdur_parse")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Input sets the text or value the operation was given.
func (b *Builder) Input(input string) *Builder {
	b.entry.Input = input
	return b
}

// Pattern sets the pattern name the operation ran under.
func (b *Builder) Pattern(pattern string) *Builder {
	b.entry.Pattern = pattern
	return b
}

// Output sets the rendered result. Set it only after the operation succeeded.
func (b *Builder) Output(output string) *Builder {
	b.entry.Output = output
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// day lengths, minute counts, comparison targets.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = ProjectID(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first. A non-empty project
// restricts the result to entries written under that identifier (see
// [ProjectID]). Returns ErrClosed when the logger is not open.
func Recent(limit int, project string) ([]Record, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, ErrClosed
	}
	return l.recent(limit, project)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
