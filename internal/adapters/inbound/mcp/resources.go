package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yscan/a11yscan/internal/adapters/outbound/static"
	"github.com/a11yscan/a11yscan/internal/domain"
)

// registerResources registers all a11yscan MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			"a11yscan://rules",
			"Built-in Rules",
			mcplib.WithResourceDescription("Accessibility checks run by the static rule engine"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)

	s.AddResource(
		mcplib.NewResource(
			"a11yscan://severities",
			"Severity Levels",
			mcplib.WithResourceDescription("Severity levels used in audit reports, worst first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSeveritiesResource(),
	)
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(static.NewEngine().Rules(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "a11yscan://rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSeveritiesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		type level struct {
			Severity domain.Severity `json:"severity"`
			Label    string          `json:"label"`
			Rank     int             `json:"rank"`
		}
		levels := make([]level, 0, 4)
		for _, s := range domain.Severities() {
			levels = append(levels, level{Severity: s, Label: s.Label(), Rank: s.Rank()})
		}
		data, err := json.MarshalIndent(levels, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling severities: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "a11yscan://severities",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
