/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE builds the duration service lazily - only
// commands that parse or format trigger extension init, so a bad
// --day-length does not stop guide or history. The noServiceCommands map
// controls which commands skip initialisation.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/workdur/internal/log"
	"github.com/jpl-au/workdur/internal/numeric"
)

var rootCmd = &cobra.Command{
	Use:   "workdur",
	Short: "Parse and format work durations",
	Long: `Reads work durations the way people type them into time sheets
("1 4:35", "4.5", "2 days 3h") and writes them back in a short, consistent form.

A day is one workday (8 hours unless configured). Run 'workdur guide' for the
accepted syntax.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if pattern != "" {
			if _, err := numeric.ParsePattern(pattern); err != nil {
				return err
			}
		}

		// History is best-effort: warn if it fails, but continue
		if !noLog {
			if err := log.Open(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: history log unavailable: %v\n", err)
			} else if wd, err := os.Getwd(); err == nil {
				log.SetProject(wd)
			}
		}

		// Build the duration service for commands that need it
		if !noServiceCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "workdur config pattern", returns "config".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command and handles process lifecycle.
// Registers extensions, executes the command, and closes the history log
// before exit. Exit code 1 indicates error.
func Execute() {
	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
