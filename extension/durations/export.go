// export.go implements the "workdur export" command.

package durations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/cmd"
	"github.com/jpl-au/workdur/extension"
	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/log"
)

func (e *Extension) newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export <minutes>",
		Short: "Convert minutes to calendar days",
		Long: `Convert a minute count to calendar days of 1440 minutes, for
spreadsheets and reports. The workday length does not apply.

  workdur export 720              # 0.5
  workdur export --text 1d 4h     # parse first, then export: 0.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runExport,
	}
	c.Flags().Bool(extension.FlagText, false, "Treat the arguments as duration text")
	return c
}

func (e *Extension) runExport(c *cobra.Command, args []string) error {
	asText, _ := c.Flags().GetBool(extension.FlagText)
	input := strings.Join(args, " ")
	p := e.svc.Pattern()

	var d duration.Duration
	if asText {
		res := e.svc.Parse(input, p)
		if !res.IsValid {
			log.Event("cli:export", "export").Input(input).Pattern(p.String()).Write(res.Err)
			return cmd.PrintJSONError(res.Err)
		}
		d = *res.ParsedValue
	} else {
		if len(args) != 1 {
			return cmd.PrintJSONError(fmt.Errorf("export takes one minute count, got %d arguments (use --text for duration text)", len(args)))
		}
		minutes, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("minutes must be a whole number: %q", args[0]))
		}
		d, err = duration.NewChecked(duration.Parts{Minutes: minutes})
		if err != nil {
			return cmd.PrintJSONError(err)
		}
	}

	days := e.svc.Export(&d)

	log.Event("cli:export", "export").Input(input).Pattern(p.String()).Output(*days).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"input": input, "minutes": d.InMinutes(), "days": days})
	}
	fmt.Fprintln(cmd.Out(), *days)
	return nil
}
