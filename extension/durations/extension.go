// Package durations provides the duration commands of workdur.
// Registers commands: parse, format, export, explain, compare.
package durations

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/extension"
	"github.com/jpl-au/workdur/internal/service"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the duration extension.
type Extension struct {
	svc service.Service
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "durations".
func (e *Extension) Name() string { return "durations" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns parse, format, export, explain and compare.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newParseCmd(),
		e.newFormatCmd(),
		e.newExportCmd(),
		e.newExplainCmd(),
		e.newCompareCmd(),
	}
}
