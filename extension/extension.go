// Package extension provides the plugin architecture for workdur. Extensions
// group related commands and register at init time, so a new command family
// needs no changes to the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for workdur extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive the shared duration service before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Serviceless is an optional interface for extensions with commands that
// must run without the duration service. Commands returned by
// NoServiceCommands() will not trigger service construction in
// PersistentPreRunE.
//
// Use cases:
// 1. serve, which builds and reloads its own service
// 2. config, guide, history and version, which never parse durations
type Serviceless interface {
	NoServiceCommands() []string
}
