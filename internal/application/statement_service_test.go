package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/internal/domain"
)

func TestStatementService_Build(t *testing.T) {
	fixed := time.Date(2026, time.January, 2, 9, 30, 0, 0, time.UTC)
	svc := NewStatementServiceAt(func() time.Time { return fixed })

	audit := &domain.Audit{
		SiteRoot: "https://example.com/",
		Pages: []domain.PageVisit{
			{URL: "https://example.com/", Status: domain.StatusLoaded, Violations: []domain.Violation{
				{RuleID: "image-alt", Severity: domain.SeverityCritical, Description: "Images must have alternate text"},
			}},
		},
	}

	st := svc.Build(audit, domain.StatementConfig{OrgName: "Acme", ContactName: "Sam", ContactEmail: "sam@acme.test", SLADays: 10})

	assert.Equal(t, "Acme", st.OrgName)
	assert.Equal(t, "2026-01-02", st.ScannedAt)
	assert.Equal(t, "2026-03-03", st.RoadmapDate)
	require.Len(t, st.Groups, 1)
	assert.Equal(t, "Images and Alt Text", st.Groups[0].Category)
}
