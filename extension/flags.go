// flags.go defines constants for command-local CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "day-length" -> FlagDayLength).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagHere  = "here"  // Restrict to the current directory
	FlagLocal = "local" // Use local scope (.workdur/config.yaml)
	FlagText  = "text"  // Treat arguments as duration text

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
