// compare.go implements the "workdur compare" command.

package durations

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/cmd"
	"github.com/jpl-au/workdur/internal/format"
	"github.com/jpl-au/workdur/internal/log"
)

func (e *Extension) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <text> <days>",
		Short: "Compare a duration with a number of workdays",
		Long: `Compare duration text with a whole number of workdays. Prints -1 and
"less", 0 and "equal", or 1 and "more".

  workdur compare "1d 4h" 1    # 1 more
  workdur compare 7h 1         # -1 less
  workdur compare 2 2          # 0 equal

Any hours or minutes beyond whole days count as more.`,
		Args: cobra.ExactArgs(2),
		RunE: e.runCompare,
	}
}

func (e *Extension) runCompare(_ *cobra.Command, args []string) error {
	text := args[0]
	days, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("days must be a whole number: %q", args[1]))
	}
	p := e.svc.Pattern()

	c, err := e.svc.Compare(text, days, p)

	log.Event("cli:compare", "compare").
		Input(text).
		Pattern(p.String()).
		Detail("days", days).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"text": text, "days": days, "comparison": c, "result": format.Comparison(c)})
	}
	fmt.Fprintf(cmd.Out(), "%d %s\n", c, format.Comparison(c))
	return nil
}
