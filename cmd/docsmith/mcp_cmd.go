package main

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/sgx-labs/docsmith/internal/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long:  "Expose the content query surface (list, get, search, navigation, related) as MCP tools for agent clients.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, navb, _, err := buildIndex()
			if err != nil {
				return err
			}
			mcpserver.Version = Version
			return mcpserver.Serve(lib, navb)
		},
	}
}
