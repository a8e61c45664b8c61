// Package mcp exposes the auditor over the Model Context Protocol so AI
// assistants can scan sites and draft accessibility statements.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with all a11yscan tools and resources
// registered.
func NewServer() *server.MCPServer {
	s := server.NewMCPServer(
		"a11yscan",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}
