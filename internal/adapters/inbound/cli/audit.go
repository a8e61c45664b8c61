package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/a11yscan/a11yscan/internal/adapters/outbound/chromium"
	appconfig "github.com/a11yscan/a11yscan/internal/adapters/outbound/config"
	"github.com/a11yscan/a11yscan/internal/adapters/outbound/export"
	"github.com/a11yscan/a11yscan/internal/adapters/outbound/static"
	"github.com/a11yscan/a11yscan/internal/adapters/outbound/tui"
	"github.com/a11yscan/a11yscan/internal/application"
	"github.com/a11yscan/a11yscan/internal/domain"
	"github.com/a11yscan/a11yscan/internal/domain/report"
)

func newAuditCmd() *cobra.Command {
	var (
		maxPages    int
		maxDepth    int
		workers     int
		pageTimeout time.Duration
		deadline    time.Duration
		topN        int
		renderer    string
		exclude     []string
		jsonOutput  bool
		csvPath     string
		ndjsonPath  string
		failOn      string
	)

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Crawl a site and report accessibility violations",
		Long: "Crawl the site starting at <url>, staying on its domain, evaluate " +
			"accessibility rules on every page, and print a prioritized report.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.New().Load(".")
			if err != nil {
				return err
			}
			cfg.SeedURL = args[0]

			// Flags beat file and environment, but only when set.
			flags := cmd.Flags()
			if flags.Changed("max-pages") {
				cfg.MaxPages = maxPages
			}
			if flags.Changed("max-depth") {
				cfg.MaxDepth = maxDepth
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("timeout") {
				cfg.PageTimeout = pageTimeout
			}
			if flags.Changed("deadline") {
				cfg.Deadline = deadline
			}
			if flags.Changed("top") {
				cfg.QuickWinsTopN = topN
			}
			if flags.Changed("renderer") {
				cfg.Renderer = renderer
			}
			if flags.Changed("exclude") {
				cfg.ExcludePatterns = exclude
			}

			if failOn != "" && !validSeverity(failOn) {
				return fmt.Errorf("invalid --fail-on severity %q", failOn)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pageRenderer, engine, cleanup, err := buildBackends(cmd, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			svc := application.NewAuditService(pageRenderer, engine, nil)
			audit, err := svc.Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			rep := report.Build(audit)

			if csvPath != "" {
				if err := writeFileWith(csvPath, rep, export.WriteCSV); err != nil {
					return err
				}
			}
			if ndjsonPath != "" {
				if err := writeFileWith(ndjsonPath, rep, export.WriteNDJSON); err != nil {
					return err
				}
			}

			if jsonOutput {
				if err := export.WriteJSON(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rep))
			}

			if failOn != "" {
				if n := countAtOrAbove(audit, domain.Severity(failOn)); n > 0 {
					return fmt.Errorf("%d violations at or above severity %s", n, failOn)
				}
			}
			return nil
		},
	}

	defaults := domain.DefaultConfig()
	cmd.Flags().IntVar(&maxPages, "max-pages", defaults.MaxPages, "Maximum pages to visit")
	cmd.Flags().IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "Maximum link depth from the seed")
	cmd.Flags().IntVar(&workers, "workers", defaults.Workers, "Concurrent page workers")
	cmd.Flags().DurationVar(&pageTimeout, "timeout", defaults.PageTimeout, "Per-page load timeout")
	cmd.Flags().DurationVar(&deadline, "deadline", defaults.Deadline, "Overall crawl deadline")
	cmd.Flags().IntVar(&topN, "top", defaults.QuickWinsTopN, "Number of quick wins to rank")
	cmd.Flags().StringVar(&renderer, "renderer", defaults.Renderer, "Page renderer: chromium or static")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "URL path patterns to skip (regexp)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write violations to a CSV file")
	cmd.Flags().StringVar(&ndjsonPath, "ndjson", "", "Also write per-page records to an NDJSON file")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Exit non-zero on violations at or above this severity")

	return cmd
}

// buildBackends wires the renderer and rule engine for the configured mode.
// The static backend fetches raw HTML and runs built-in checks; chromium
// drives a headless browser and the axe-core engine.
func buildBackends(cmd *cobra.Command, cfg domain.Config) (domain.PageRenderer, domain.RuleEngine, func(), error) {
	switch cfg.Renderer {
	case domain.RendererStatic:
		return static.NewRenderer(), static.NewEngine(), func() {}, nil
	case domain.RendererChromium:
		browser := chromium.NewBrowser(cmd.Context())
		return browser.NewRenderer(), browser.NewEngine(cfg.AxeScriptURL), browser.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("%w: unknown renderer %q", domain.ErrConfiguration, cfg.Renderer)
	}
}

func writeFileWith(path string, rep *report.Report, write func(w io.Writer, r *report.Report) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func validSeverity(s string) bool {
	for _, sev := range domain.Severities() {
		if string(sev) == s {
			return true
		}
	}
	return false
}

func countAtOrAbove(a *domain.Audit, threshold domain.Severity) int {
	n := 0
	for sev, count := range a.SeverityCounts {
		if sev.Rank() >= threshold.Rank() {
			n += count
		}
	}
	return n
}
