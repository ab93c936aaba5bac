// explain.go implements the "workdur explain" command, printing every stage
// of the parsing pipeline for one input.

package durations

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/cmd"
	"github.com/jpl-au/workdur/internal/format"
	"github.com/jpl-au/workdur/internal/log"
	"github.com/jpl-au/workdur/internal/service"
)

func (e *Extension) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <text...>",
		Short: "Show how duration text is parsed",
		Long: `Show every parsing stage for duration text: the compact-hour rewrite,
the raw and inferred tokens, the fraction expansion, and the classified
segments, followed by a diff of the input against the rewritten text.

  workdur explain 1 4:35
  workdur explain -p hour 2.25
  workdur explain 1.5x           # shows the stage that rejects it`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runExplain,
	}
}

func (e *Extension) runExplain(_ *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	p := e.svc.Pattern()

	ex := service.Explain(e.svc, text, p)

	log.Event("cli:explain", "explain").Input(text).Pattern(p.String()).Output(ex.Result).Write(ex.Err)

	if cmd.JSON() {
		return cmd.PrintJSON(ex)
	}
	return format.Trace(cmd.Out(), ex.Trace, cmd.Colour())
}
