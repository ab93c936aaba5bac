// Package all imports all built-in workdur extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/workdur/extension/core"
	_ "github.com/jpl-au/workdur/extension/durations"
)
