// Package core provides the core extension for workdur.
// It registers commands: config, guide, history, serve, version.
package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension   = (*Extension)(nil)
	_ extension.Serviceless = (*Extension)(nil)
)

// Name returns "core" - this extension provides the supporting commands.
func (e *Extension) Name() string { return "core" }

// Commands returns the configuration, help, history and server commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newHistoryCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// NoServiceCommands returns every core command.
// serve: Builds and reloads its own service.
// config, guide, history, version: Never parse durations, and ignore
// --pattern and --day-length.
func (e *Extension) NoServiceCommands() []string {
	return []string{"config", "guide", "history", "serve", "version"}
}
