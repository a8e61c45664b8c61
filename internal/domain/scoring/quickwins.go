package scoring

import (
	"sort"

	"github.com/a11yscan/a11yscan/internal/domain"
)

// rankQuickWins selects the top-N issue groups worth fixing first: worst
// severity, then broadest occurrence, with RuleID as the final tiebreak so
// the ordering is stable across runs.
func rankQuickWins(groups []domain.IssueGroup, topN int) []domain.IssueGroup {
	ranked := append([]domain.IssueGroup(nil), groups...)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.RuleID < b.RuleID
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
