// tools_config.go implements MCP tools for configuration management.
//
// Config changes rebuild the service immediately, so a vocabulary or day
// length set through the tool applies to the very next parse without a
// server restart.

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/workdur/internal/config"
	"github.com/jpl-au/workdur/internal/log"
)

// configGet handles workdur_config_get tool calls.
func (h *handlers) configGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:workdur_config_get", "get").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:workdur_config_get", "list").Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:workdur_config_get", "get").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{key: v})
}

// configSet handles workdur_config_set tool calls.
func (h *handlers) configSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}

	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	scope := config.ScopeGlobal
	if getBool(req, "local", false) {
		scope = config.ScopeLocal
	}

	cfg, err := config.LoadScope(scope)
	if err != nil {
		log.Event("mcp:workdur_config_set", "set").Detail("key", key).Detail("value", value).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := cfg.Set(key, value); err != nil {
		log.Event("mcp:workdur_config_set", "set").Detail("key", key).Detail("value", value).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = cfg.Save()

	log.Event("mcp:workdur_config_set", "set").Detail("key", key).Detail("value", value).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	effective, _ := cfg.Get(key)

	// Rebuild the running service so new values take effect immediately
	if err := h.reload(); err != nil {
		log.Event("mcp:workdur_config_set", "reload").Write(err)
		// Config was saved successfully, but reload failed - warn in response
		return mcp.NewToolResultText(fmt.Sprintf("%s = %s (warning: reload failed, restart server to apply: %v)", key, effective, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s = %s", key, effective)), nil
}
