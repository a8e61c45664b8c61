package domain

// CompletionReason tags why a crawl stopped. All four reasons exit through the
// same partial-Audit path; none of them is an error.
type CompletionReason string

const (
	CompletionFrontierExhausted CompletionReason = "frontier_exhausted"
	CompletionBudgetReached     CompletionReason = "budget_reached"
	CompletionDeadlineExceeded  CompletionReason = "deadline_exceeded"
	CompletionCancelled         CompletionReason = "cancelled"
)

// IssueGroup collects every occurrence of one rule across the whole crawl.
type IssueGroup struct {
	RuleID      string   `json:"rule_id"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	HelpURL     string   `json:"help_url,omitempty"`
	Pages       []string `json:"pages"`
	Count       int      `json:"count"`

	// SeverityConflict marks groups whose violations disagreed on severity
	// across pages; the maximum observed level is kept.
	SeverityConflict bool `json:"severity_conflict,omitempty"`
}

// Audit is the aggregated result of one crawl, assembled once after the crawl
// completes and read-only afterward.
type Audit struct {
	SiteRoot string      `json:"site_root"`
	Pages    []PageVisit `json:"pages"`

	// OffDomain lists discovered links excluded by domain scope, sorted.
	// They are kept out of Pages so dedup and budget invariants stay about
	// visited pages only, but remain visible in reports.
	OffDomain []string `json:"off_domain,omitempty"`

	SeverityCounts map[Severity]int `json:"severity_counts"`
	IssueGroups    []IssueGroup     `json:"issue_groups"`
	QuickWins      []IssueGroup     `json:"quick_wins"`

	Completion CompletionReason `json:"completion"`
}

// TotalViolations counts violation instances across all pages.
func (a *Audit) TotalViolations() int {
	n := 0
	for _, p := range a.Pages {
		n += len(p.Violations)
	}
	return n
}

// PagesLoaded counts pages that rendered successfully.
func (a *Audit) PagesLoaded() int {
	n := 0
	for _, p := range a.Pages {
		if p.Status == StatusLoaded {
			n++
		}
	}
	return n
}

// PagesFailed counts pages that could not be rendered.
func (a *Audit) PagesFailed() int {
	n := 0
	for _, p := range a.Pages {
		if p.Status == StatusLoadFailed {
			n++
		}
	}
	return n
}
