package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/internal/domain"
)

func group(rule string, sev domain.Severity, count int) domain.IssueGroup {
	return domain.IssueGroup{RuleID: rule, Severity: sev, Count: count}
}

func TestRankQuickWins_SeverityThenCountThenRuleID(t *testing.T) {
	groups := []domain.IssueGroup{
		group("minor-everywhere", domain.SeverityMinor, 50),
		group("b-critical", domain.SeverityCritical, 2),
		group("a-critical", domain.SeverityCritical, 2),
		group("big-critical", domain.SeverityCritical, 9),
		group("serious-one", domain.SeveritySerious, 1),
	}

	wins := rankQuickWins(groups, 10)
	require.Len(t, wins, 5)
	assert.Equal(t, "big-critical", wins[0].RuleID)
	assert.Equal(t, "a-critical", wins[1].RuleID, "count tie breaks on rule id")
	assert.Equal(t, "b-critical", wins[2].RuleID)
	assert.Equal(t, "serious-one", wins[3].RuleID)
	assert.Equal(t, "minor-everywhere", wins[4].RuleID, "severity outranks raw count")
}

func TestRankQuickWins_TruncatesToTopN(t *testing.T) {
	groups := []domain.IssueGroup{
		group("a", domain.SeverityCritical, 3),
		group("b", domain.SeveritySerious, 2),
		group("c", domain.SeverityMinor, 1),
	}

	wins := rankQuickWins(groups, 2)
	require.Len(t, wins, 2)
	assert.Equal(t, "a", wins[0].RuleID)
	assert.Equal(t, "b", wins[1].RuleID)
}

func TestRankQuickWins_DoesNotMutateInput(t *testing.T) {
	groups := []domain.IssueGroup{
		group("z", domain.SeverityMinor, 1),
		group("a", domain.SeverityCritical, 1),
	}

	_ = rankQuickWins(groups, 10)
	assert.Equal(t, "z", groups[0].RuleID)
	assert.Equal(t, "a", groups[1].RuleID)
}

func TestRankQuickWins_Empty(t *testing.T) {
	assert.Empty(t, rankQuickWins(nil, 10))
}
