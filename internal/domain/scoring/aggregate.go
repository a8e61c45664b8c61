package scoring

import (
	"sort"

	"github.com/a11yscan/a11yscan/internal/domain"
)

// Aggregate folds the per-page visit records of one crawl into a single Audit.
// It is a pure function of its inputs: no clock, no randomness, no side
// effects, so aggregating the same visit sequence twice yields identical
// audits.
//
// Visits are expected in crawl order (sorted by Seq); offDomain carries the
// links excluded by domain scope.
func Aggregate(siteRoot string, visits []domain.PageVisit, offDomain []string, completion domain.CompletionReason, topN int) *domain.Audit {
	counts := make(map[domain.Severity]int, 4)
	for _, s := range domain.Severities() {
		counts[s] = 0
	}

	groups := make(map[string]*domain.IssueGroup)
	var order []string
	for _, page := range visits {
		for _, v := range page.Violations {
			counts[v.Severity]++
			g, ok := groups[v.RuleID]
			if !ok {
				g = &domain.IssueGroup{
					RuleID:      v.RuleID,
					Description: v.Description,
					Severity:    v.Severity,
					HelpURL:     v.HelpURL,
				}
				groups[v.RuleID] = g
				order = append(order, v.RuleID)
			}
			if v.Severity != g.Severity {
				// The evaluator's fixed mapping should make this impossible;
				// if engines disagree across pages, keep the worst level and
				// flag the group rather than silently averaging.
				g.Severity = domain.MaxSeverity(g.Severity, v.Severity)
				g.SeverityConflict = true
			}
			g.Count++
			if len(g.Pages) == 0 || g.Pages[len(g.Pages)-1] != page.URL {
				if !containsPage(g.Pages, page.URL) {
					g.Pages = append(g.Pages, page.URL)
				}
			}
		}
	}

	issueGroups := make([]domain.IssueGroup, 0, len(groups))
	for _, id := range order {
		issueGroups = append(issueGroups, *groups[id])
	}
	sort.Slice(issueGroups, func(i, j int) bool {
		return issueGroups[i].RuleID < issueGroups[j].RuleID
	})

	sortedOffDomain := append([]string(nil), offDomain...)
	sort.Strings(sortedOffDomain)

	return &domain.Audit{
		SiteRoot:       siteRoot,
		Pages:          visits,
		OffDomain:      sortedOffDomain,
		SeverityCounts: counts,
		IssueGroups:    issueGroups,
		QuickWins:      rankQuickWins(issueGroups, topN),
		Completion:     completion,
	}
}

func containsPage(pages []string, url string) bool {
	for _, p := range pages {
		if p == url {
			return true
		}
	}
	return false
}
