// serve.go implements the "workdur serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio. It is a NoServiceCommand: the server builds its own
// service and rebuilds it when configuration changes through a tool call.

package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/workdur/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools: workdur_parse, workdur_format, workdur_export, workdur_explain,
workdur_compare, workdur_config_get, workdur_config_set, workdur_guide.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}
