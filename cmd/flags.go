/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. The pattern and day length flags are applied to the loaded
// configuration before the service is built, so extensions read the
// effective values from the service rather than from the flags.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/internal/numeric"
)

var validOutputFormats = []string{"json"}

var (
	output    string
	pattern   string
	dayLength string
	noLog     bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Exported accessors for extensions.

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Pattern returns the --pattern flag value, empty when not given.
func Pattern() string { return pattern }

// DayLength returns the --day-length flag value, empty when not given.
func DayLength() string { return dayLength }

// NoLog returns true if history logging is disabled for this run.
func NoLog() bool { return noLog }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Colour returns true if output goes to a terminal and is not JSON.
func Colour() bool {
	f, ok := out.(*os.File)
	return ok && !JSON() && isTerminal(f)
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// We ignore the error from PrintJSON here because if we can't print the error,
	// checking it is futile. We just return nil to suppress Cobra's duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// Silent returns err with Cobra's error and usage printing suppressed, for
// commands that have already reported the failure on the output writer but
// must still exit non-zero.
func Silent(c *cobra.Command, err error) error {
	c.SilenceErrors = true
	c.SilenceUsage = true
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&pattern, "pattern", "p", "", "Pattern for bare numbers: day or hour (default from config)")
	rootCmd.PersistentFlags().StringVar(&dayLength, "day-length", "", "Length of one workday, e.g. \"7h 30m\" (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "Do not record this operation in the history log")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("pattern", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(numeric.Patterns))
		for i, p := range numeric.Patterns {
			names[i] = p.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}
