// format.go implements the "workdur format" command.

package durations

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/cmd"
	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/log"
)

func (e *Extension) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <minutes>",
		Short: "Format a minute count as duration text",
		Long: `Format a whole number of minutes as short duration text.

  workdur format 755                      # 1d 4h 35m
  workdur format -p hour 755              # 12h 35m
  workdur format --day-length 7h30m 900   # 2d`,
		Args: cobra.ExactArgs(1),
		RunE: e.runFormat,
	}
}

func (e *Extension) runFormat(_ *cobra.Command, args []string) error {
	minutes, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("minutes must be a whole number: %q", args[0]))
	}

	p := e.svc.Pattern()
	out := e.svc.FormatMinutes(minutes, p, duration.Zero)

	log.Event("cli:format", "format").
		Input(args[0]).
		Pattern(p.String()).
		Output(out).
		Detail("day_length", e.svc.DayLength().InMinutes()).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"minutes":    minutes,
			"pattern":    p,
			"day_length": e.svc.DayLength().InMinutes(),
			"formatted":  out,
		})
	}

	if out == "" {
		out = "0"
	}
	fmt.Fprintln(cmd.Out(), out)
	return nil
}
