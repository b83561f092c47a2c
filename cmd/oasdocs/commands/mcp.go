package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasdocs/internal/mcpserver"
)

func newMCPCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server over stdio",
		Long: `mcp starts a Model Context Protocol server on stdin/stdout exposing the
generate_docs, validate_spec and search_endpoints tools. Defaults are read
from OASDOCS_MCP_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
