package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/internal/domain"
)

var testNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestCategoryFor(t *testing.T) {
	cases := []struct {
		rule, desc, want string
	}{
		{"image-alt", "Images must have alternate text", "Images and Alt Text"},
		{"color-contrast", "Elements must meet minimum color contrast", "Text and Colour Contrast"},
		{"document-title", "Documents must have a title", "Page Structure and Headings"},
		{"label", "Form elements must have labels", "Forms and Labels"},
		{"link-name", "Links must have discernible text", "Screen Reader Experience"},
		{"meta-viewport", "Zooming and scaling must not be disabled", "Mobile Accessibility"},
		{"some-unknown-rule", "Mystery", "Other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategoryFor(tc.rule, tc.desc), tc.rule)
	}
}

func TestBuildStatement_GroupsByCategoryAndCriterion(t *testing.T) {
	audit := &domain.Audit{
		SiteRoot: "https://example.com/",
		Pages: []domain.PageVisit{
			{URL: "https://example.com/", Status: domain.StatusLoaded, Violations: []domain.Violation{
				{RuleID: "image-alt", Severity: domain.SeverityCritical, Description: "Images must have alternate text", Selector: "img.a", HelpURL: "https://help/image-alt"},
				{RuleID: "image-alt", Severity: domain.SeverityCritical, Description: "Images must have alternate text", Selector: "img.b", HelpURL: "https://help/image-alt"},
			}},
			{URL: "https://example.com/contact", Status: domain.StatusLoaded, Violations: []domain.Violation{
				{RuleID: "label", Severity: domain.SeverityCritical, Description: "Form elements must have labels"},
			}},
		},
	}

	st := BuildStatement(audit, domain.StatementConfig{OrgName: "Acme", ContactName: "Jo", ContactEmail: "jo@acme.test", SLADays: 10}, testNow)

	assert.False(t, st.Compliant())
	require.Len(t, st.Groups, 2)
	// Sorted by category name.
	assert.Equal(t, "Forms and Labels", st.Groups[0].Category)
	assert.Equal(t, "Images and Alt Text", st.Groups[1].Category)
	require.Len(t, st.Groups[1].Items, 2)
	assert.Equal(t, "img.a", st.Groups[1].Items[0].Selector)
	assert.Equal(t, "Critical", st.Groups[1].Items[0].Impact)
	assert.Equal(t, "https://help/image-alt", st.Groups[1].Items[0].Fix)
}

func TestBuildStatement_Dates(t *testing.T) {
	audit := &domain.Audit{SiteRoot: "https://example.com/"}
	st := BuildStatement(audit, domain.StatementConfig{}, testNow)

	assert.Equal(t, "2026-03-14", st.ScannedAt)
	assert.Equal(t, "2026-05-13", st.RoadmapDate)
	assert.Equal(t, WCAGVersion, st.WCAGVersion)
}

func TestBuildStatement_OrgDefaultsToHost(t *testing.T) {
	audit := &domain.Audit{SiteRoot: "https://www.example.com/start"}
	st := BuildStatement(audit, domain.StatementConfig{}, testNow)
	assert.Equal(t, "www.example.com", st.OrgName)
}

func TestBuildStatement_CleanAuditIsCompliant(t *testing.T) {
	audit := &domain.Audit{
		SiteRoot: "https://example.com/",
		Pages:    []domain.PageVisit{{URL: "https://example.com/", Status: domain.StatusLoaded}},
	}
	st := BuildStatement(audit, domain.StatementConfig{}, testNow)
	assert.True(t, st.Compliant())
	assert.Equal(t, 1, st.PagesScanned)
}
