package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	appconfig "github.com/a11yscan/a11yscan/internal/adapters/outbound/config"
	"github.com/a11yscan/a11yscan/internal/adapters/outbound/markdown"
	"github.com/a11yscan/a11yscan/internal/application"
)

func newStatementCmd() *cobra.Command {
	var (
		orgName      string
		contactName  string
		contactEmail string
		slaDays      int
		renderer     string
		maxPages     int
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "statement <url>",
		Short: "Generate a draft accessibility statement",
		Long: "Crawl the site, audit it, and generate a Markdown accessibility " +
			"statement listing the non-compliances found, grouped by WCAG area.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.New().Load(".")
			if err != nil {
				return err
			}
			cfg.SeedURL = args[0]

			flags := cmd.Flags()
			if flags.Changed("org") {
				cfg.Statement.OrgName = orgName
			}
			if flags.Changed("contact-name") {
				cfg.Statement.ContactName = contactName
			}
			if flags.Changed("contact-email") {
				cfg.Statement.ContactEmail = contactEmail
			}
			if flags.Changed("sla-days") {
				cfg.Statement.SLADays = slaDays
			}
			if flags.Changed("renderer") {
				cfg.Renderer = renderer
			}
			if flags.Changed("max-pages") {
				cfg.MaxPages = maxPages
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

			stmt := application.NewStatementService().Build(audit, cfg.Statement)
			out, err := markdown.RenderStatement(stmt)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Statement written to %s\n", outPath)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgName, "org", "", "Organization name for the statement")
	cmd.Flags().StringVar(&contactName, "contact-name", "", "Accessibility contact name")
	cmd.Flags().StringVar(&contactEmail, "contact-email", "", "Accessibility contact email")
	cmd.Flags().IntVar(&slaDays, "sla-days", 0, "Feedback response time in business days")
	cmd.Flags().StringVar(&renderer, "renderer", "", "Page renderer: chromium or static")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum pages to visit")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the statement to a file instead of stdout")

	return cmd
}
