// Package mcp implements the Model Context Protocol server, exposing workdur
// operations to LLMs. Assistants can parse, format, export and explain
// durations with the same configuration the CLI uses.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/workdur/internal/config"
	"github.com/jpl-au/workdur/internal/service"
	"github.com/jpl-au/workdur/internal/version"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
//
// The server refuses to start on an invalid configuration; fixing the file
// through workdur_config_set would need a working server to begin with.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{}
	if err := h.reload(); err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	s := NewServer(h)

	slog.Info("workdur MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every tool and resource registered.
func NewServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"workdur",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers with access to the duration service.
// The service is swapped when configuration changes.
type handlers struct {
	mu  sync.RWMutex
	svc service.Service
}

// service returns the current service.
func (h *handlers) service() service.Service {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.svc
}

// reload rebuilds the service from the effective configuration.
func (h *handlers) reload() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svc, err := service.FromConfig(cfg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.svc = svc
	h.mu.Unlock()
	return nil
}

// registerResources adds URI-based access to the guides and configuration.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"workdur://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read a workdur guide page"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)

	s.AddResource(
		mcp.NewResource(
			"workdur://config",
			"Configuration",
			mcp.WithResourceDescription("Effective workdur configuration"),
			mcp.WithMIMEType("application/json"),
		),
		h.readConfig,
	)
}

// registerTools exposes workdur operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	patternDesc := mcp.Description("Pattern: 'day' (bare numbers are workdays) or 'hour' (bare numbers are hours). Default from config")

	s.AddTool(
		mcp.NewTool("workdur_parse",
			mcp.WithDescription("Parse duration text such as '1d 4h 30m', '4.5' or '2:30' and return its normalized form, minutes and days"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Duration text")),
			mcp.WithString("pattern", patternDesc),
		),
		h.parse,
	)

	s.AddTool(
		mcp.NewTool("workdur_format",
			mcp.WithDescription("Format a minute count as short duration text such as '1d 2h 20m'"),
			mcp.WithNumber("minutes", mcp.Required(), mcp.Description("Whole minutes")),
			mcp.WithString("pattern", patternDesc),
			mcp.WithString("day_length", mcp.Description("Length of one workday as duration text, e.g. '7h 30m'. Default from config")),
		),
		h.format,
	)

	s.AddTool(
		mcp.NewTool("workdur_export",
			mcp.WithDescription("Convert duration text or a minute count to calendar days (1440 minutes per day)"),
			mcp.WithString("text", mcp.Description("Duration text (takes precedence over minutes)")),
			mcp.WithNumber("minutes", mcp.Description("Whole minutes")),
			mcp.WithString("pattern", patternDesc),
		),
		h.export,
	)

	s.AddTool(
		mcp.NewTool("workdur_explain",
			mcp.WithDescription("Show every parsing stage for duration text: compact-hour rewrite, tokens, inferred labels, fraction expansion and classified segments"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Duration text")),
			mcp.WithString("pattern", patternDesc),
		),
		h.explain,
	)

	s.AddTool(
		mcp.NewTool("workdur_compare",
			mcp.WithDescription("Compare duration text with a whole number of workdays: -1 less, 0 equal, 1 more"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Duration text")),
			mcp.WithNumber("days", mcp.Required(), mcp.Description("Whole workdays to compare with")),
			mcp.WithString("pattern", patternDesc),
		),
		h.compare,
	)

	s.AddTool(
		mcp.NewTool("workdur_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (vocabulary.hours, day_length, pattern, ...) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("workdur_config_set",
			mcp.WithDescription("Set a configuration value; an empty value restores the default"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (vocabulary.hours, day_length, pattern, ...)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
			mcp.WithBoolean("local", mcp.Description("Write to .workdur/config.yaml in the working directory instead of the global config")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("workdur_guide",
			mcp.WithDescription("Get help/guide content for workdur"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'syntax', 'config') or empty for index")),
		),
		h.getGuide,
	)
}
