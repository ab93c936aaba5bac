// parse.go implements the "workdur parse" command.

package durations

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/cmd"
	"github.com/jpl-au/workdur/internal/format"
	"github.com/jpl-au/workdur/internal/log"
)

func (e *Extension) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse duration text",
		Long: `Parse duration text and print its normalized form.

  workdur parse 1 4:35          # 1d 4h 35m
  workdur parse -p hour 4.5     # 4h 30m
  workdur parse "2 days 3h"     # 2d 3h
  workdur parse -o json 1.5     # full result with minutes and days

Arguments are joined with spaces. Invalid text prints the reason and exits 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runParse,
	}
}

func (e *Extension) runParse(c *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	p := e.svc.Pattern()

	res := e.svc.Parse(text, p)

	ev := log.Event("cli:parse", "parse").Input(text).Pattern(p.String())
	if res.IsValid {
		ev.Output(res.FormattedValue)
	}
	ev.Write(res.Err)

	if cmd.JSON() {
		if err := cmd.PrintJSON(res); err != nil {
			return err
		}
	} else if err := format.Result(cmd.Out(), res); err != nil {
		return err
	}

	if !res.IsValid {
		return cmd.Silent(c, res.Err)
	}
	return nil
}
