// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Separated to centralise the boilerplate of extracting typed parameters from
// MCP's generic argument map. These helpers return defaults when optional
// parameters are missing: an LLM omitting an optional parameter should get
// the configured behaviour, not a type error.

package mcp

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/workdur/internal/numeric"
)

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// optionalString returns a pointer to a string parameter, or nil when the
// parameter is absent or null.
func optionalString(req mcp.CallToolRequest, name string) *string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := args[name].(string); ok {
		return &v
	}
	return nil
}

// getBool extracts a boolean parameter from the MCP request arguments.
// Returns the default if the parameter is missing or not a boolean.
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt64 extracts a whole-number parameter. JSON numbers decode as float64,
// so fractional or out-of-range values are reported rather than truncated.
// ok is false when the parameter is absent.
func getInt64(req mcp.CallToolRequest, name string) (n int64, ok bool, err error) {
	args, isMap := req.Params.Arguments.(map[string]any)
	if !isMap {
		return 0, false, nil
	}
	raw, present := args[name]
	if !present || raw == nil {
		return 0, false, nil
	}
	v, isNum := raw.(float64)
	if !isNum {
		return 0, true, fmt.Errorf("%s must be a number", name)
	}
	if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
		return 0, true, fmt.Errorf("%s must be a whole number, got %v", name, v)
	}
	return int64(v), true, nil
}

// getPattern reads the optional pattern parameter, falling back to def.
func getPattern(req mcp.CallToolRequest, def numeric.Pattern) (numeric.Pattern, error) {
	s := getString(req, "pattern", "")
	if s == "" {
		return def, nil
	}
	return numeric.ParsePattern(s)
}

// jsonResult serialises any value as pretty-printed JSON and wraps it in an
// MCP text result for return to the LLM client. Marshalling failures become
// MCP error results so every failure reaches the client the same way.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
