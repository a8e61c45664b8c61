// Package report shapes a completed Audit into renderer-agnostic models.
// Nothing here does I/O; Markdown, CSV, and terminal renderers live in the
// outbound adapters.
package report

import (
	"github.com/a11yscan/a11yscan/internal/domain"
)

// PageOutcome distinguishes what a page contributed to the audit. Collapsing
// any of these into "no violations" would be a correctness bug.
type PageOutcome string

const (
	OutcomeEvaluated    PageOutcome = "evaluated"
	OutcomeLoadFailed   PageOutcome = "load_failed"
	OutcomeNotEvaluated PageOutcome = "not_evaluated"
)

// Report is the renderer-agnostic audit document.
type Report struct {
	Summary   Summary        `json:"summary"`
	QuickWins []QuickWinRow  `json:"quick_wins"`
	Pages     []PageDetail   `json:"pages"`
	OffDomain []string       `json:"off_domain,omitempty"`
}

// Summary carries the headline statistics.
type Summary struct {
	Site             string                  `json:"site"`
	PagesScanned     int                     `json:"pages_scanned"`
	PagesLoaded      int                     `json:"pages_loaded"`
	PagesFailed      int                     `json:"pages_failed"`
	PagesNotChecked  int                     `json:"pages_not_checked"`
	OffDomainSkipped int                     `json:"off_domain_skipped"`
	TotalViolations  int                     `json:"total_violations"`
	DistinctRules    int                     `json:"distinct_rules"`
	SeverityCounts   []SeverityCount         `json:"severity_counts"`
	Completion       domain.CompletionReason `json:"completion"`
}

// SeverityCount is one row of the severity breakdown, in fixed worst-first
// order with zero rows included.
type SeverityCount struct {
	Severity domain.Severity `json:"severity"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
}

// QuickWinRow is one ranked remediation candidate.
type QuickWinRow struct {
	Rank          int             `json:"rank"`
	RuleID        string          `json:"rule_id"`
	Severity      domain.Severity `json:"severity"`
	Count         int             `json:"count"`
	PagesAffected int             `json:"pages_affected"`
	Description   string          `json:"description"`
	HelpURL       string          `json:"help_url,omitempty"`
}

// PageDetail is the per-page section of the audit.
type PageDetail struct {
	URL        string             `json:"url"`
	Outcome    PageOutcome        `json:"outcome"`
	Detail     string             `json:"detail,omitempty"`
	HTTPStatus int                `json:"http_status,omitempty"`
	Title      string             `json:"title,omitempty"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

// Build is a pure transformation of an Audit into a Report.
func Build(a *domain.Audit) *Report {
	notChecked := 0
	pages := make([]PageDetail, 0, len(a.Pages))
	for _, p := range a.Pages {
		d := PageDetail{
			URL:        p.URL,
			HTTPStatus: p.HTTPStatus,
			Title:      p.Title,
			Violations: p.Violations,
		}
		switch {
		case p.Status == domain.StatusLoadFailed:
			d.Outcome = OutcomeLoadFailed
			d.Detail = string(p.LoadError)
		case p.EvaluationFailed:
			d.Outcome = OutcomeNotEvaluated
			d.Detail = p.EvalError
			notChecked++
		default:
			d.Outcome = OutcomeEvaluated
		}
		pages = append(pages, d)
	}

	sevCounts := make([]SeverityCount, 0, 4)
	for _, s := range domain.Severities() {
		sevCounts = append(sevCounts, SeverityCount{Severity: s, Label: s.Label(), Count: a.SeverityCounts[s]})
	}

	wins := make([]QuickWinRow, 0, len(a.QuickWins))
	for i, g := range a.QuickWins {
		wins = append(wins, QuickWinRow{
			Rank:          i + 1,
			RuleID:        g.RuleID,
			Severity:      g.Severity,
			Count:         g.Count,
			PagesAffected: len(g.Pages),
			Description:   g.Description,
			HelpURL:       g.HelpURL,
		})
	}

	return &Report{
		Summary: Summary{
			Site:             a.SiteRoot,
			PagesScanned:     len(a.Pages),
			PagesLoaded:      a.PagesLoaded(),
			PagesFailed:      a.PagesFailed(),
			PagesNotChecked:  notChecked,
			OffDomainSkipped: len(a.OffDomain),
			TotalViolations:  a.TotalViolations(),
			DistinctRules:    len(a.IssueGroups),
			SeverityCounts:   sevCounts,
			Completion:       a.Completion,
		},
		QuickWins: wins,
		Pages:     pages,
		OffDomain: a.OffDomain,
	}
}
