package cli

import (
	mcpadapter "github.com/a11yscan/a11yscan/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the a11yscan MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the a11yscan MCP server (stdio)",
		Long: "Start the a11yscan MCP server using stdio transport. This lets AI " +
			"assistants audit sites and generate accessibility statements.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewServer()
			return server.ServeStdio(s)
		},
	}
}
