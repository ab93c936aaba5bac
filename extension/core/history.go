// history.go implements the "workdur history" command, listing recent
// operations from the history log.

package core

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/cmd"
	"github.com/jpl-au/workdur/extension"
	"github.com/jpl-au/workdur/internal/format"
	"github.com/jpl-au/workdur/internal/log"
)

func newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "List recent operations",
		Long: `List recent parse, format, export, explain and compare operations,
newest first, from ~/.workdur/log/workdur-log.db.

  workdur history              # last 20 operations
  workdur history --limit 0    # everything
  workdur history --here       # only operations run in this directory`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum entries to show (0 for all)")
	c.Flags().Bool(extension.FlagHere, false, "Only show operations run in the current directory")
	return c
}

func runHistory(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	here, _ := c.Flags().GetBool(extension.FlagHere)

	if limit < 0 {
		return cmd.PrintJSONError(fmt.Errorf("limit must be >= 0, got %d", limit))
	}

	project := ""
	if here {
		wd, err := os.Getwd()
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("history: %w", err))
		}
		project = log.ProjectID(wd)
	}

	recs, err := log.Recent(limit, project)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("history: %w", err))
	}

	if cmd.JSON() {
		if recs == nil {
			recs = []log.Record{}
		}
		return cmd.PrintJSON(recs)
	}
	return format.History(cmd.Out(), recs)
}
