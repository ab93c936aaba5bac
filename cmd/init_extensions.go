/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, applies command-line overrides, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution, after flags are parsed. The service is created
// once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/workdur/extension"
	"github.com/jpl-au/workdur/internal/config"
	"github.com/jpl-au/workdur/internal/service"
)

// noServiceCommands lists commands that bypass service construction.
// Built from extension-declared serviceless commands.
var noServiceCommands map[string]bool

// buildNoServiceCommands creates the set of commands that skip service
// construction. help and completion come from cobra itself.
//
// When adding a new command that never parses durations, implement
// extension.Serviceless in its extension.
func buildNoServiceCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Serviceless); ok {
			for _, name := range s.NoServiceCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions builds the duration service and injects it into extensions.
//
// Configuration errors are returned as is: the message names the file and
// the offending key.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		cfg.Override(pattern, dayLength)

		svc, err := service.FromConfig(cfg)
		if err != nil {
			initErr = err
			return
		}

		extContext = extension.NewContext(svc, cfg)
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		noServiceCommands = buildNoServiceCommands()
	})
}
