package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yscan/a11yscan/internal/adapters/outbound/chromium"
	appconfig "github.com/a11yscan/a11yscan/internal/adapters/outbound/config"
	"github.com/a11yscan/a11yscan/internal/adapters/outbound/markdown"
	"github.com/a11yscan/a11yscan/internal/adapters/outbound/static"
	"github.com/a11yscan/a11yscan/internal/application"
	"github.com/a11yscan/a11yscan/internal/domain"
	"github.com/a11yscan/a11yscan/internal/domain/report"
)

// registerTools registers all a11yscan MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcplib.NewTool("a11yscan_audit",
			mcplib.WithDescription("Crawl a website within its domain, audit every page for accessibility violations, and return the full report as JSON"),
			mcplib.WithString("url", mcplib.Required(), mcplib.Description("Seed URL to start the crawl from")),
			mcplib.WithNumber("max_pages", mcplib.Description("Maximum pages to visit (default 40)")),
			mcplib.WithNumber("max_depth", mcplib.Description("Maximum link depth from the seed (default 3)")),
			mcplib.WithString("renderer", mcplib.Description("Page renderer: chromium or static (default chromium)")),
		),
		handleAudit(),
	)

	s.AddTool(
		mcplib.NewTool("a11yscan_statement",
			mcplib.WithDescription("Audit a website and generate a draft accessibility statement in Markdown"),
			mcplib.WithString("url", mcplib.Required(), mcplib.Description("Seed URL to start the crawl from")),
			mcplib.WithString("org", mcplib.Description("Organization name for the statement")),
			mcplib.WithString("contact_email", mcplib.Description("Accessibility contact email")),
			mcplib.WithNumber("max_pages", mcplib.Description("Maximum pages to visit (default 40)")),
			mcplib.WithString("renderer", mcplib.Description("Page renderer: chromium or static (default chromium)")),
		),
		handleStatement(),
	)
}

// configFromRequest merges tool arguments over file/env configuration.
func configFromRequest(request mcplib.CallToolRequest) (domain.Config, error) {
	cfg, err := appconfig.New().Load(".")
	if err != nil {
		return domain.Config{}, err
	}

	url, err := request.RequireString("url")
	if err != nil {
		return domain.Config{}, err
	}
	cfg.SeedURL = url

	args := request.GetArguments()
	if v, ok := args["max_pages"].(float64); ok && v > 0 {
		cfg.MaxPages = int(v)
	}
	if v, ok := args["max_depth"].(float64); ok && v > 0 {
		cfg.MaxDepth = int(v)
	}
	if v, ok := args["renderer"].(string); ok && v != "" {
		cfg.Renderer = v
	}
	if v, ok := args["org"].(string); ok && v != "" {
		cfg.Statement.OrgName = v
	}
	if v, ok := args["contact_email"].(string); ok && v != "" {
		cfg.Statement.ContactEmail = v
	}
	return cfg, nil
}

func runAudit(ctx context.Context, cfg domain.Config) (*domain.Audit, error) {
	var (
		pageRenderer domain.PageRenderer
		engine       domain.RuleEngine
		cleanup      = func() {}
	)
	switch cfg.Renderer {
	case domain.RendererStatic:
		pageRenderer, engine = static.NewRenderer(), static.NewEngine()
	case domain.RendererChromium:
		browser := chromium.NewBrowser(ctx)
		pageRenderer, engine = browser.NewRenderer(), browser.NewEngine(cfg.AxeScriptURL)
		cleanup = browser.Close
	default:
		return nil, fmt.Errorf("%w: unknown renderer %q", domain.ErrConfiguration, cfg.Renderer)
	}
	defer cleanup()

	return application.NewAuditService(pageRenderer, engine, nil).Run(ctx, cfg)
}

func handleAudit() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		audit, err := runAudit(ctx, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report.Build(audit))
	}
}

func handleStatement() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configFromRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		audit, err := runAudit(ctx, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}

		stmt := application.NewStatementService().Build(audit, cfg.Statement)
		out, err := markdown.RenderStatement(stmt)
		if err != nil {
			return errorResult(fmt.Sprintf("rendering statement: %v", err)), nil
		}
		return textResult(out), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
