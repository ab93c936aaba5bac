// The cmd/ package holds CLI integration tests that exercise the full stack:
// flag parsing -> extensions -> service -> parser, plus the config file and
// the history database. They run the real binary in a temp directory with
// HOME pointed at a sibling temp directory, so global config and history
// never touch the developer's own.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the workdur binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "workdur-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "workdur"
		if os.PathSeparator == '\\' {
			binaryName = "workdur.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	env    []string
}

// newTestEnv creates a temporary working and home directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	home := t.TempDir()
	return &testEnv{
		t:      t,
		dir:    dir,
		home:   home,
		binary: buildBinary(t),
		env: append(os.Environ(),
			"HOME="+home,
			"USERPROFILE="+home,
			"WORKDUR_PATTERN=",
			"WORKDUR_DAY_LENGTH=",
		),
	}
}

// setenv adds an environment variable for subsequent runs.
func (e *testEnv) setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}

// run executes workdur with the given args and returns its output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("workdur %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes workdur and returns its output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
